package pattern

import "github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"

// Context reference tables for the star specs: which branch each star lands
// on for a given Day-Master stem or Year Branch.

// StarRule binds a star spec to its target branch for one chart context.
type StarRule struct {
	SpecID string
	Target chart.Branch
}

var noblemanTargets = map[chart.Stem][]chart.Branch{
	chart.StemJia:  {chart.BranchChou, chart.BranchWei},
	chart.StemWu:   {chart.BranchChou, chart.BranchWei},
	chart.StemGeng: {chart.BranchChou, chart.BranchWei},
	chart.StemYi:   {chart.BranchZi, chart.BranchShen},
	chart.StemJi:   {chart.BranchZi, chart.BranchShen},
	chart.StemBing: {chart.BranchHai, chart.BranchYou},
	chart.StemDing: {chart.BranchHai, chart.BranchYou},
	chart.StemRen:  {chart.BranchSi, chart.BranchMao},
	chart.StemGui:  {chart.BranchSi, chart.BranchMao},
	chart.StemXin:  {chart.BranchWu, chart.BranchYin},
}

// bladeTargets exist only for yang stems; the blade sits one step past the
// Day Master's prosperity branch.
var bladeTargets = map[chart.Stem]chart.Branch{
	chart.StemJia:  chart.BranchMao,
	chart.StemBing: chart.BranchWu,
	chart.StemWu:   chart.BranchWu,
	chart.StemGeng: chart.BranchYou,
	chart.StemRen:  chart.BranchZi,
}

var prosperityTargets = map[chart.Stem]chart.Branch{
	chart.StemJia:  chart.BranchYin,
	chart.StemYi:   chart.BranchMao,
	chart.StemBing: chart.BranchSi,
	chart.StemDing: chart.BranchWu,
	chart.StemWu:   chart.BranchSi,
	chart.StemJi:   chart.BranchWu,
	chart.StemGeng: chart.BranchShen,
	chart.StemXin:  chart.BranchYou,
	chart.StemRen:  chart.BranchHai,
	chart.StemGui:  chart.BranchZi,
}

var voidTargets = map[chart.Stem][]chart.Branch{
	chart.StemJia:  {chart.BranchXu, chart.BranchHai},
	chart.StemYi:   {chart.BranchShen, chart.BranchYou},
	chart.StemBing: {chart.BranchWu, chart.BranchWei},
	chart.StemDing: {chart.BranchChen, chart.BranchSi},
	chart.StemWu:   {chart.BranchYin, chart.BranchMao},
	chart.StemJi:   {chart.BranchZi, chart.BranchChou},
	chart.StemGeng: {chart.BranchXu, chart.BranchHai},
	chart.StemXin:  {chart.BranchShen, chart.BranchYou},
	chart.StemRen:  {chart.BranchWu, chart.BranchWei},
	chart.StemGui:  {chart.BranchChen, chart.BranchSi},
}

// trineRef groups year branches by their three-harmony frame for the stars
// keyed off the Year Branch.
type trineRef struct {
	members [3]chart.Branch
	romance chart.Branch
	travel  chart.Branch
	canopy  chart.Branch
}

var trineRefs = []trineRef{
	{[3]chart.Branch{chart.BranchShen, chart.BranchZi, chart.BranchChen}, chart.BranchYou, chart.BranchYin, chart.BranchChen},
	{[3]chart.Branch{chart.BranchYin, chart.BranchWu, chart.BranchXu}, chart.BranchMao, chart.BranchShen, chart.BranchXu},
	{[3]chart.Branch{chart.BranchSi, chart.BranchYou, chart.BranchChou}, chart.BranchWu, chart.BranchHai, chart.BranchChou},
	{[3]chart.Branch{chart.BranchHai, chart.BranchMao, chart.BranchWei}, chart.BranchZi, chart.BranchSi, chart.BranchWei},
}

// directionRef groups year branches by season direction for the lonely and
// widow stars.
type directionRef struct {
	members [3]chart.Branch
	lonely  chart.Branch
	widow   chart.Branch
}

var directionRefs = []directionRef{
	{[3]chart.Branch{chart.BranchHai, chart.BranchZi, chart.BranchChou}, chart.BranchYin, chart.BranchXu},
	{[3]chart.Branch{chart.BranchYin, chart.BranchMao, chart.BranchChen}, chart.BranchSi, chart.BranchChou},
	{[3]chart.Branch{chart.BranchSi, chart.BranchWu, chart.BranchWei}, chart.BranchShen, chart.BranchChen},
	{[3]chart.Branch{chart.BranchShen, chart.BranchYou, chart.BranchXu}, chart.BranchHai, chart.BranchWei},
}

// DayMasterStars returns the star rules anchored on the Day-Master stem:
// nobleman, prosperity, blade, and void.
func DayMasterStars(stem chart.Stem) []StarRule {
	var rules []StarRule
	for _, target := range noblemanTargets[stem] {
		rules = append(rules, StarRule{SpecID: CategoryNoblemanStar.TypeToken(), Target: target})
	}
	if target, ok := prosperityTargets[stem]; ok {
		rules = append(rules, StarRule{SpecID: CategoryProsperityStar.TypeToken(), Target: target})
	}
	if target, ok := bladeTargets[stem]; ok {
		rules = append(rules, StarRule{SpecID: CategoryBladeStar.TypeToken(), Target: target})
	}
	for _, target := range voidTargets[stem] {
		rules = append(rules, StarRule{SpecID: CategoryVoidStar.TypeToken(), Target: target})
	}
	return rules
}

// YearBranchStars returns the star rules anchored on the Year Branch:
// romance, travel horse, canopy, lonely, and widow.
func YearBranchStars(year chart.Branch) []StarRule {
	var rules []StarRule
	for _, ref := range trineRefs {
		if !containsBranch(ref.members, year) {
			continue
		}
		rules = append(rules,
			StarRule{SpecID: CategoryRomanceStar.TypeToken(), Target: ref.romance},
			StarRule{SpecID: CategoryTravelStar.TypeToken(), Target: ref.travel},
			StarRule{SpecID: CategoryCanopyStar.TypeToken(), Target: ref.canopy},
		)
		break
	}
	for _, ref := range directionRefs {
		if !containsBranch(ref.members, year) {
			continue
		}
		rules = append(rules,
			StarRule{SpecID: CategoryLonelyStar.TypeToken(), Target: ref.lonely},
			StarRule{SpecID: CategoryWidowStar.TypeToken(), Target: ref.widow},
		)
		break
	}
	return rules
}

func containsBranch(members [3]chart.Branch, b chart.Branch) bool {
	return members[0] == b || members[1] == b || members[2] == b
}
