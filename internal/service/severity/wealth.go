package severity

import (
	"fmt"
	"math"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/values"
)

// WealthAssessment is the wealth-domain deep dive: compound severity scaled
// by the wealth element's seasonal condition.
type WealthAssessment struct {
	Severity       values.SeverityResult `json:"severity"`
	WealthElement  chart.Element         `json:"wealth_element"`
	Recommendation string                `json:"recommendation"`
}

var wealthRecommendations = map[values.Level]string{
	values.LevelMinor:    "Wealth flows are stable; routine budgeting suffices this cycle.",
	values.LevelModerate: "Review commitments and defer optional outlays until the pressured period passes.",
	values.LevelMajor:    "Avoid new leverage and speculative positions; consolidate what is already earned.",
	values.LevelCritical: "Treat this cycle as capital preservation only: no major purchases, contracts, or guarantees.",
}

// CalculateWealthSeverity compounds the wealth-domain results and scales them
// by the seasonal multiplier of the Day Master's wealth element.
func CalculateWealthSeverity(
	results []values.SeverityResult,
	dayMaster chart.Element,
	states map[chart.Element]chart.SeasonalState,
) WealthAssessment {
	compound := CalculateCompoundSeverity(results, pattern.DomainWealth)

	wealthElement := dayMaster.WealthElement()
	multiplier := states[wealthElement].Multiplier()

	raw := compound.Raw * multiplier
	normalized := math.Min(normalizeCap, compound.Normalized*multiplier)

	factors := make(map[string]float64, len(compound.Factors)+1)
	for k, v := range compound.Factors {
		factors[k] = v
	}
	factors["wealth_seasonal"] = multiplier

	scaled := values.NewSeverityResult(raw, normalized, factors,
		fmt.Sprintf("%s, scaled by the %s wealth element's seasonal state", compound.Explanation, wealthElement))

	return WealthAssessment{
		Severity:       scaled,
		WealthElement:  wealthElement,
		Recommendation: wealthRecommendations[scaled.Level],
	}
}
