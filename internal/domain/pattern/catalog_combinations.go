package pattern

import (
	"strings"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
)

// Grouped combination data. Each table row is expanded into a full Spec by
// buildCombination; scoring parameters are shared per category.

type combinationScores struct {
	priority    int
	combined    float64
	transformed float64
	maxDistance int
}

var combinationScoring = map[Category]combinationScores{
	CategoryThreeMeetings:   {priority: 10, combined: 7.5, transformed: 9.5, maxDistance: 3},
	CategoryThreeHarmony:    {priority: 20, combined: 7.0, transformed: 9.0, maxDistance: 3},
	CategorySixHarmony:      {priority: 30, combined: 5.5, transformed: 7.5, maxDistance: 2},
	CategoryHalfMeeting:     {priority: 40, combined: 4.5, transformed: 6.0, maxDistance: 2},
	CategoryHalfHarmony:     {priority: 50, combined: 4.0, transformed: 5.5, maxDistance: 2},
	CategoryArchedHarmony:   {priority: 60, combined: 3.0, transformed: 4.5, maxDistance: 2},
	CategoryStemCombination: {priority: 25, combined: 5.0, transformed: 7.0, maxDistance: 2},
}

var combinationZhSuffix = map[Category]string{
	CategoryThreeMeetings:   "三会",
	CategoryThreeHarmony:    "三合",
	CategorySixHarmony:      "六合",
	CategoryHalfMeeting:     "半会",
	CategoryHalfHarmony:     "半合",
	CategoryArchedHarmony:   "拱合",
	CategoryStemCombination: "合化",
}

var combinationPinyinSuffix = map[Category]string{
	CategoryThreeMeetings:   "San Hui",
	CategoryThreeHarmony:    "San He",
	CategorySixHarmony:      "Liu He",
	CategoryHalfMeeting:     "Ban Hui",
	CategoryHalfHarmony:     "Ban He",
	CategoryArchedHarmony:   "Gong He",
	CategoryStemCombination: "He Hua",
}

// combinationDomains assigns life domains by the transformation element.
func combinationDomains(result chart.Element) []Domain {
	switch result {
	case chart.ElementWood:
		return []Domain{DomainFamily, DomainHealth}
	case chart.ElementFire:
		return []Domain{DomainCareer, DomainRelationship}
	case chart.ElementEarth:
		return []Domain{DomainWealth, DomainFamily}
	case chart.ElementMetal:
		return []Domain{DomainCareer, DomainLegal}
	case chart.ElementWater:
		return []Domain{DomainEducation, DomainTravel}
	}
	return nil
}

var combinationMeanings = map[string]string{
	"year":  "harmonious backing from elders and lineage",
	"month": "supportive conditions in career and upbringing",
	"day":   "union strengthening the self and the marriage palace",
	"hour":  "blessings flowing toward children and later years",
}

type branchCombination struct {
	parts  []chart.Branch
	result chart.Element
	desc   string
}

var threeMeetingEntries = []branchCombination{
	{[]chart.Branch{chart.BranchYin, chart.BranchMao, chart.BranchChen}, chart.ElementWood, "Eastern directional meeting forming the Wood frame"},
	{[]chart.Branch{chart.BranchSi, chart.BranchWu, chart.BranchWei}, chart.ElementFire, "Southern directional meeting forming the Fire frame"},
	{[]chart.Branch{chart.BranchShen, chart.BranchYou, chart.BranchXu}, chart.ElementMetal, "Western directional meeting forming the Metal frame"},
	{[]chart.Branch{chart.BranchHai, chart.BranchZi, chart.BranchChou}, chart.ElementWater, "Northern directional meeting forming the Water frame"},
}

var threeHarmonyEntries = []branchCombination{
	{[]chart.Branch{chart.BranchShen, chart.BranchZi, chart.BranchChen}, chart.ElementWater, "Water triangle of birth, peak, and storage"},
	{[]chart.Branch{chart.BranchHai, chart.BranchMao, chart.BranchWei}, chart.ElementWood, "Wood triangle of birth, peak, and storage"},
	{[]chart.Branch{chart.BranchYin, chart.BranchWu, chart.BranchXu}, chart.ElementFire, "Fire triangle of birth, peak, and storage"},
	{[]chart.Branch{chart.BranchSi, chart.BranchYou, chart.BranchChou}, chart.ElementMetal, "Metal triangle of birth, peak, and storage"},
}

var sixHarmonyEntries = []branchCombination{
	{[]chart.Branch{chart.BranchZi, chart.BranchChou}, chart.ElementEarth, "Paired harmony binding Zi and Chou into Earth"},
	{[]chart.Branch{chart.BranchYin, chart.BranchHai}, chart.ElementWood, "Paired harmony binding Yin and Hai into Wood"},
	{[]chart.Branch{chart.BranchMao, chart.BranchXu}, chart.ElementFire, "Paired harmony binding Mao and Xu into Fire"},
	{[]chart.Branch{chart.BranchChen, chart.BranchYou}, chart.ElementMetal, "Paired harmony binding Chen and You into Metal"},
	{[]chart.Branch{chart.BranchSi, chart.BranchShen}, chart.ElementWater, "Paired harmony binding Si and Shen into Water"},
	{[]chart.Branch{chart.BranchWu, chart.BranchWei}, chart.ElementFire, "Paired harmony binding Wu and Wei into Fire"},
}

// halfMeetingEntries keep the seasonal anchor of their full meeting.
var halfMeetingEntries = []branchCombination{
	{[]chart.Branch{chart.BranchYin, chart.BranchMao}, chart.ElementWood, "Half meeting toward the Wood frame"},
	{[]chart.Branch{chart.BranchMao, chart.BranchChen}, chart.ElementWood, "Half meeting toward the Wood frame"},
	{[]chart.Branch{chart.BranchSi, chart.BranchWu}, chart.ElementFire, "Half meeting toward the Fire frame"},
	{[]chart.Branch{chart.BranchWu, chart.BranchWei}, chart.ElementFire, "Half meeting toward the Fire frame"},
	{[]chart.Branch{chart.BranchShen, chart.BranchYou}, chart.ElementMetal, "Half meeting toward the Metal frame"},
	{[]chart.Branch{chart.BranchYou, chart.BranchXu}, chart.ElementMetal, "Half meeting toward the Metal frame"},
	{[]chart.Branch{chart.BranchHai, chart.BranchZi}, chart.ElementWater, "Half meeting toward the Water frame"},
	{[]chart.Branch{chart.BranchZi, chart.BranchChou}, chart.ElementWater, "Half meeting toward the Water frame"},
}

// halfHarmonyEntries pair the trine cardinal with one flank.
var halfHarmonyEntries = []branchCombination{
	{[]chart.Branch{chart.BranchShen, chart.BranchZi}, chart.ElementWater, "Half harmony anchored on the Water peak"},
	{[]chart.Branch{chart.BranchZi, chart.BranchChen}, chart.ElementWater, "Half harmony anchored on the Water peak"},
	{[]chart.Branch{chart.BranchHai, chart.BranchMao}, chart.ElementWood, "Half harmony anchored on the Wood peak"},
	{[]chart.Branch{chart.BranchMao, chart.BranchWei}, chart.ElementWood, "Half harmony anchored on the Wood peak"},
	{[]chart.Branch{chart.BranchYin, chart.BranchWu}, chart.ElementFire, "Half harmony anchored on the Fire peak"},
	{[]chart.Branch{chart.BranchWu, chart.BranchXu}, chart.ElementFire, "Half harmony anchored on the Fire peak"},
	{[]chart.Branch{chart.BranchSi, chart.BranchYou}, chart.ElementMetal, "Half harmony anchored on the Metal peak"},
	{[]chart.Branch{chart.BranchYou, chart.BranchChou}, chart.ElementMetal, "Half harmony anchored on the Metal peak"},
}

// archedHarmonyEntries are trine flanks arching over an absent peak.
var archedHarmonyEntries = []branchCombination{
	{[]chart.Branch{chart.BranchShen, chart.BranchChen}, chart.ElementWater, "Flanks arching over the absent Zi peak"},
	{[]chart.Branch{chart.BranchHai, chart.BranchWei}, chart.ElementWood, "Flanks arching over the absent Mao peak"},
	{[]chart.Branch{chart.BranchYin, chart.BranchXu}, chart.ElementFire, "Flanks arching over the absent Wu peak"},
	{[]chart.Branch{chart.BranchSi, chart.BranchChou}, chart.ElementMetal, "Flanks arching over the absent You peak"},
}

type stemCombination struct {
	parts  []chart.Stem
	result chart.Element
	desc   string
}

var stemCombinationEntries = []stemCombination{
	{[]chart.Stem{chart.StemJia, chart.StemJi}, chart.ElementEarth, "Stem pairing of Jia and Ji transforming into Earth"},
	{[]chart.Stem{chart.StemYi, chart.StemGeng}, chart.ElementMetal, "Stem pairing of Yi and Geng transforming into Metal"},
	{[]chart.Stem{chart.StemBing, chart.StemXin}, chart.ElementWater, "Stem pairing of Bing and Xin transforming into Water"},
	{[]chart.Stem{chart.StemDing, chart.StemRen}, chart.ElementWood, "Stem pairing of Ding and Ren transforming into Wood"},
	{[]chart.Stem{chart.StemWu, chart.StemGui}, chart.ElementFire, "Stem pairing of Wu and Gui transforming into Fire"},
}

func loadCombinations(r *Registry) error {
	for _, e := range threeMeetingEntries {
		if err := r.Register(buildBranchCombination(CategoryThreeMeetings, e)); err != nil {
			return err
		}
	}
	for _, e := range threeHarmonyEntries {
		if err := r.Register(buildBranchCombination(CategoryThreeHarmony, e)); err != nil {
			return err
		}
	}
	for _, e := range sixHarmonyEntries {
		if err := r.Register(buildBranchCombination(CategorySixHarmony, e)); err != nil {
			return err
		}
	}
	for _, e := range halfMeetingEntries {
		if err := r.Register(buildBranchCombination(CategoryHalfMeeting, e)); err != nil {
			return err
		}
	}
	for _, e := range halfHarmonyEntries {
		if err := r.Register(buildBranchCombination(CategoryHalfHarmony, e)); err != nil {
			return err
		}
	}
	for _, e := range archedHarmonyEntries {
		if err := r.Register(buildBranchCombination(CategoryArchedHarmony, e)); err != nil {
			return err
		}
	}
	for _, e := range stemCombinationEntries {
		if err := r.Register(buildStemCombination(e)); err != nil {
			return err
		}
	}
	return nil
}

func buildBranchCombination(category Category, e branchCombination) *Spec {
	tokens := make([]string, len(e.parts))
	glyphs := make([]string, len(e.parts))
	for i, b := range e.parts {
		tokens[i] = string(b)
		glyphs[i] = b.Glyph()
	}

	scores := combinationScoring[category]
	domains := combinationDomains(e.result)

	// Incomplete frames only transform with elemental support from the
	// season or surrounding stems.
	requiresSupport := category == CategoryHalfMeeting ||
		category == CategoryHalfHarmony || category == CategoryArchedHarmony

	return &Spec{
		ID:         ComposeID(category.TypeToken(), tokens, string(e.result)),
		Category:   category,
		Priority:   scores.priority,
		NameZh:     strings.Join(glyphs, "") + combinationZhSuffix[category] + e.result.Glyph(),
		NamePinyin: strings.Join(tokens, " ") + " " + combinationPinyinSuffix[category],
		Filters: []NodeFilter{
			{Kinds: []NodeKind{NodeBranch}, Branches: e.parts},
		},
		MinParticipants: len(e.parts),
		MaxParticipants: len(e.parts),
		Spatial:         &SpatialRule{MaxDistance: scores.maxDistance},
		Transformation: &TransformationRule{
			ResultElement:   e.result,
			RequiresSupport: requiresSupport,
			SupportElements: []chart.Element{supportElement(e.result)},
			PolarityMatters: category == CategorySixHarmony,
			ScoreMultiplier: 1.3,
		},
		BaseScoreCombined:    scores.combined,
		BaseScoreTransformed: scores.transformed,
		DistanceMultipliers:  defaultDistanceMultipliers,
		Qi:                   &QiEffect{Target: QiTargetAll, Delta: 10, Percent: true},
		Badge:                BadgeAuspicious,
		Domains:              domains,
		PillarMeanings:       combinationMeanings,
		Events: &EventMapping{
			PrimaryDomains: domains,
			Positive:       positiveEvents(domains),
			Sentiments:     sentiments(domains, "positive"),
		},
		Description: e.desc,
		Source:      "San Ming Tong Hui",
	}
}

func buildStemCombination(e stemCombination) *Spec {
	tokens := make([]string, len(e.parts))
	glyphs := make([]string, len(e.parts))
	for i, s := range e.parts {
		tokens[i] = string(s)
		glyphs[i] = s.Glyph()
	}

	scores := combinationScoring[CategoryStemCombination]
	domains := combinationDomains(e.result)

	return &Spec{
		ID:         ComposeID(CategoryStemCombination.TypeToken(), tokens, string(e.result)),
		Category:   CategoryStemCombination,
		Priority:   scores.priority,
		NameZh:     strings.Join(glyphs, "") + combinationZhSuffix[CategoryStemCombination] + e.result.Glyph(),
		NamePinyin: strings.Join(tokens, " ") + " " + combinationPinyinSuffix[CategoryStemCombination],
		Filters: []NodeFilter{
			{Kinds: []NodeKind{NodeStem}, Stems: e.parts},
		},
		MinParticipants: len(e.parts),
		MaxParticipants: len(e.parts),
		Spatial:         &SpatialRule{MaxDistance: scores.maxDistance, RequireAdjacent: true},
		Transformation: &TransformationRule{
			ResultElement:   e.result,
			RequiresSupport: true,
			SupportElements: []chart.Element{supportElement(e.result)},
			PolarityMatters: true,
			ScoreMultiplier: 1.3,
		},
		BaseScoreCombined:    scores.combined,
		BaseScoreTransformed: scores.transformed,
		DistanceMultipliers:  defaultDistanceMultipliers,
		Qi:                   &QiEffect{Target: QiTargetAll, Delta: 8, Percent: true},
		Badge:                BadgeAuspicious,
		Domains:              domains,
		PillarMeanings:       combinationMeanings,
		Events: &EventMapping{
			PrimaryDomains: domains,
			Positive:       positiveEvents(domains),
			Sentiments:     sentiments(domains, "positive"),
		},
		Description: e.desc,
		Source:      "Yuan Hai Zi Ping",
	}
}

// supportElement is the element that feeds the transformation result in the
// generative cycle.
func supportElement(result chart.Element) chart.Element {
	for _, e := range chart.AllElements() {
		if e.Produces() == result {
			return e
		}
	}
	return ""
}
