package analysis

import (
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
)

// Special-star detection. Stars are keyed off the Day-Master stem and the
// Year Branch rather than interaction co-occurrence: a star is active when
// its target branch appears anywhere among the chart's branches, and its
// triggers list every interaction that touches that branch.

func detectSpecialStars(reg *pattern.Registry, req AnalysisRequest, sortedIDs []string) []SpecialStar {
	rules := pattern.DayMasterStars(req.DayMasterStem)
	if req.YearBranch.Valid() {
		rules = append(rules, pattern.YearBranchStars(req.YearBranch)...)
	}
	if len(rules) == 0 {
		return []SpecialStar{}
	}

	branches := chartBranches(req, sortedIDs)

	stars := make([]SpecialStar, 0, len(rules))
	for _, rule := range rules {
		if !branches[rule.Target] {
			continue
		}
		spec, ok := reg.Get(rule.SpecID)
		if !ok {
			continue
		}
		stars = append(stars, SpecialStar{
			PatternID:      spec.ID,
			NameZh:         spec.NameZh,
			NamePinyin:     spec.NamePinyin,
			Category:       spec.Category,
			TargetBranch:   rule.Target,
			Description:    spec.Description,
			PillarMeanings: spec.PillarMeanings,
			Triggers:       starTriggers(req, sortedIDs, rule.Target),
		})
	}
	return stars
}

// chartBranches collects every branch the chart exposes: interaction
// participants that parse as branches, plus the Year Branch itself.
func chartBranches(req AnalysisRequest, sortedIDs []string) map[chart.Branch]bool {
	branches := make(map[chart.Branch]bool)
	for _, id := range sortedIDs {
		if req.Interactions[id].IsPlaceholder() {
			continue
		}
		_, participants, _ := pattern.SplitID(id)
		for _, p := range participants {
			if b, ok := chart.ParseBranch(p); ok {
				branches[b] = true
			}
		}
	}
	if req.YearBranch.Valid() {
		branches[req.YearBranch] = true
	}
	return branches
}

// starTriggers lists the interactions referencing the target branch,
// deduplicated by (node, pillar).
func starTriggers(req AnalysisRequest, sortedIDs []string, target chart.Branch) []StarTrigger {
	triggers := make([]StarTrigger, 0, 2)
	seen := make(map[StarTrigger]bool)
	for _, id := range sortedIDs {
		interaction := req.Interactions[id]
		if interaction.IsPlaceholder() {
			continue
		}
		_, participants, _ := pattern.SplitID(id)
		for _, p := range participants {
			b, ok := chart.ParseBranch(p)
			if !ok || b != target {
				continue
			}
			trigger := StarTrigger{
				Node:   id,
				Pillar: chart.PrimaryPosition(interaction.Positions).PillarName(),
			}
			if !seen[trigger] {
				seen[trigger] = true
				triggers = append(triggers, trigger)
			}
			break
		}
	}
	return triggers
}
