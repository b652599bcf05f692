package pattern

import (
	"strings"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
)

// Conflict data. Clashes carry the "opposite" subtype qualifier in their
// identifiers because the opposing-palace form is the canonical one in the
// classical sources; runtime identifiers without a subtype are reconciled by
// the resolver's retry chain.

type conflictScores struct {
	priority int
	base     float64
	qiDelta  float64
}

var conflictScoring = map[Category]conflictScores{
	CategoryClash:        {priority: 15, base: 7.0, qiDelta: -12},
	CategoryPunishment:   {priority: 5, base: 7.5, qiDelta: -15},
	CategoryHarm:         {priority: 35, base: 5.5, qiDelta: -8},
	CategoryDestruction:  {priority: 45, base: 4.5, qiDelta: -6},
	CategoryStemConflict: {priority: 30, base: 5.0, qiDelta: -10},
}

var conflictMeanings = map[string]string{
	"year":  "friction with elders, lineage, or the wider clan",
	"month": "turbulence around career, parents, and formative years",
	"day":   "pressure on the self and the marriage palace",
	"hour":  "unrest touching children, subordinates, or later years",
}

type conflictEntry struct {
	parts     []string
	qualifier string
	zh        string
	pinyin    string
	domains   []Domain
	desc      string
}

func branchConflict(suffixZh, suffixPinyin string, domains []Domain, desc string, parts ...chart.Branch) conflictEntry {
	tokens := make([]string, len(parts))
	glyphs := make([]string, len(parts))
	for i, b := range parts {
		tokens[i] = string(b)
		glyphs[i] = b.Glyph()
	}
	return conflictEntry{
		parts:   tokens,
		zh:      strings.Join(glyphs, "") + suffixZh,
		pinyin:  strings.Join(tokens, " ") + " " + suffixPinyin,
		domains: domains,
		desc:    desc,
	}
}

var clashEntries = func() []conflictEntry {
	entries := []conflictEntry{
		branchConflict("相冲", "Xiang Chong", []Domain{DomainRelationship, DomainHealth}, "Opposition clash across the Zi-Wu axis", chart.BranchZi, chart.BranchWu),
		branchConflict("相冲", "Xiang Chong", []Domain{DomainFamily, DomainWealth}, "Opposition clash across the Chou-Wei axis", chart.BranchChou, chart.BranchWei),
		branchConflict("相冲", "Xiang Chong", []Domain{DomainTravel, DomainLegal}, "Opposition clash across the Yin-Shen axis", chart.BranchYin, chart.BranchShen),
		branchConflict("相冲", "Xiang Chong", []Domain{DomainRelationship, DomainCareer}, "Opposition clash across the Mao-You axis", chart.BranchMao, chart.BranchYou),
		branchConflict("相冲", "Xiang Chong", []Domain{DomainLegal, DomainCareer}, "Opposition clash across the Chen-Xu axis", chart.BranchChen, chart.BranchXu),
		branchConflict("相冲", "Xiang Chong", []Domain{DomainTravel, DomainHealth}, "Opposition clash across the Si-Hai axis", chart.BranchSi, chart.BranchHai),
	}
	for i := range entries {
		entries[i].qualifier = "opposite"
	}
	return entries
}()

var harmEntries = []conflictEntry{
	branchConflict("相害", "Xiang Hai", []Domain{DomainFamily, DomainRelationship}, "Harm undermining trust between Zi and Wei", chart.BranchZi, chart.BranchWei),
	branchConflict("相害", "Xiang Hai", []Domain{DomainHealth, DomainWealth}, "Harm draining vigor between Chou and Wu", chart.BranchChou, chart.BranchWu),
	branchConflict("相害", "Xiang Hai", []Domain{DomainLegal, DomainTravel}, "Harm breeding entanglement between Yin and Si", chart.BranchYin, chart.BranchSi),
	branchConflict("相害", "Xiang Hai", []Domain{DomainFamily, DomainCareer}, "Harm souring kinship between Mao and Chen", chart.BranchMao, chart.BranchChen),
	branchConflict("相害", "Xiang Hai", []Domain{DomainTravel, DomainHealth}, "Harm unsettling movement between Shen and Hai", chart.BranchShen, chart.BranchHai),
	branchConflict("相害", "Xiang Hai", []Domain{DomainRelationship, DomainLegal}, "Harm festering resentment between You and Xu", chart.BranchYou, chart.BranchXu),
}

var destructionEntries = []conflictEntry{
	branchConflict("相破", "Xiang Po", []Domain{DomainRelationship, DomainEducation}, "Destruction wearing down Zi and You", chart.BranchZi, chart.BranchYou),
	branchConflict("相破", "Xiang Po", []Domain{DomainCareer, DomainRelationship}, "Destruction wearing down Mao and Wu", chart.BranchMao, chart.BranchWu),
	branchConflict("相破", "Xiang Po", []Domain{DomainWealth, DomainFamily}, "Destruction wearing down Chen and Chou", chart.BranchChen, chart.BranchChou),
	branchConflict("相破", "Xiang Po", []Domain{DomainFamily, DomainLegal}, "Destruction wearing down Wei and Xu", chart.BranchWei, chart.BranchXu),
	branchConflict("相破", "Xiang Po", []Domain{DomainTravel, DomainFamily}, "Destruction wearing down Yin and Hai", chart.BranchYin, chart.BranchHai),
	branchConflict("相破", "Xiang Po", []Domain{DomainLegal, DomainCareer}, "Destruction wearing down Si and Shen", chart.BranchSi, chart.BranchShen),
}

var punishmentEntries = []conflictEntry{
	branchConflict("三刑", "San Xing", []Domain{DomainLegal, DomainHealth}, "Ungrateful punishment among Yin, Si, and Shen", chart.BranchYin, chart.BranchSi, chart.BranchShen),
	branchConflict("三刑", "San Xing", []Domain{DomainFamily, DomainWealth}, "Bullying punishment among Chou, Xu, and Wei", chart.BranchChou, chart.BranchXu, chart.BranchWei),
	branchConflict("相刑", "Xiang Xing", []Domain{DomainRelationship, DomainLegal}, "Rude punishment between Zi and Mao", chart.BranchZi, chart.BranchMao),
	branchConflict("自刑", "Zi Xing", []Domain{DomainCareer, DomainWealth}, "Self punishment of doubled Chen", chart.BranchChen, chart.BranchChen),
	branchConflict("自刑", "Zi Xing", []Domain{DomainHealth, DomainRelationship}, "Self punishment of doubled Wu", chart.BranchWu, chart.BranchWu),
	branchConflict("自刑", "Zi Xing", []Domain{DomainRelationship, DomainCareer}, "Self punishment of doubled You", chart.BranchYou, chart.BranchYou),
	branchConflict("自刑", "Zi Xing", []Domain{DomainHealth, DomainEducation}, "Self punishment of doubled Hai", chart.BranchHai, chart.BranchHai),
}

func stemConflict(domains []Domain, desc string, a, b chart.Stem) conflictEntry {
	return conflictEntry{
		parts:   []string{string(a), string(b)},
		zh:      a.Glyph() + b.Glyph() + "相冲",
		pinyin:  string(a) + " " + string(b) + " Xiang Chong",
		domains: domains,
		desc:    desc,
	}
}

var stemConflictEntries = []conflictEntry{
	stemConflict([]Domain{DomainCareer, DomainLegal}, "Stem conflict of Jia struck by Geng", chart.StemJia, chart.StemGeng),
	stemConflict([]Domain{DomainRelationship, DomainHealth}, "Stem conflict of Yi struck by Xin", chart.StemYi, chart.StemXin),
	stemConflict([]Domain{DomainCareer, DomainTravel}, "Stem conflict of Bing struck by Ren", chart.StemBing, chart.StemRen),
	stemConflict([]Domain{DomainRelationship, DomainWealth}, "Stem conflict of Ding struck by Gui", chart.StemDing, chart.StemGui),
}

func loadConflicts(r *Registry) error {
	groups := []struct {
		category Category
		entries  []conflictEntry
		kind     NodeKind
	}{
		{CategoryClash, clashEntries, NodeBranch},
		{CategoryHarm, harmEntries, NodeBranch},
		{CategoryDestruction, destructionEntries, NodeBranch},
		{CategoryPunishment, punishmentEntries, NodeBranch},
		{CategoryStemConflict, stemConflictEntries, NodeStem},
	}
	for _, g := range groups {
		for _, e := range g.entries {
			if err := r.Register(buildConflict(g.category, g.kind, e)); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildConflict(category Category, kind NodeKind, e conflictEntry) *Spec {
	scores := conflictScoring[category]

	filter := NodeFilter{Kinds: []NodeKind{kind}}
	if kind == NodeBranch {
		for _, p := range e.parts {
			if b, ok := chart.ParseBranch(p); ok {
				filter.Branches = append(filter.Branches, b)
			}
		}
	} else {
		for _, p := range e.parts {
			if s, ok := chart.ParseStem(p); ok {
				filter.Stems = append(filter.Stems, s)
			}
		}
	}

	return &Spec{
		ID:                  ComposeID(category.TypeToken(), e.parts, e.qualifier),
		Category:            category,
		Priority:            scores.priority,
		NameZh:              e.zh,
		NamePinyin:          e.pinyin,
		Filters:             []NodeFilter{filter},
		MinParticipants:     len(e.parts),
		MaxParticipants:     len(e.parts),
		Spatial:             &SpatialRule{MaxDistance: 3},
		BaseScoreCombined:   scores.base,
		DistanceMultipliers: defaultDistanceMultipliers,
		Qi:                  &QiEffect{Target: QiTargetTarget, Delta: scores.qiDelta, Percent: true},
		Badge:               BadgeInauspicious,
		Domains:             e.domains,
		PillarMeanings:      conflictMeanings,
		Events: &EventMapping{
			PrimaryDomains: e.domains,
			Negative:       negativeEvents(e.domains),
			Sentiments:     sentiments(e.domains, "negative"),
		},
		Description: e.desc,
		Source:      "San Ming Tong Hui",
	}
}
