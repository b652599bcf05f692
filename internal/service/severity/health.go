package severity

import (
	"sort"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/values"
)

// HealthAssessment is the health-domain deep dive: the compound severity plus
// the single most vulnerable element and its organ system.
type HealthAssessment struct {
	Severity          values.SeverityResult     `json:"severity"`
	VulnerableElement chart.Element             `json:"vulnerable_element"`
	OrganSystem       string                    `json:"organ_system"`
	Vulnerability     map[chart.Element]float64 `json:"vulnerability"`
	Recommendation    string                    `json:"recommendation"`
}

var healthRecommendations = map[chart.Element]string{
	chart.ElementWood:  "Ease the liver and gallbladder: regular sleep, leafy foods, and an outlet for frustration before it knots.",
	chart.ElementFire:  "Guard the heart and small intestine: temper stimulants, cool overwork, and keep joy from tipping into agitation.",
	chart.ElementEarth: "Steady the spleen and stomach: warm regular meals, less damp and sweet, fewer circling worries.",
	chart.ElementMetal: "Protect the lungs and large intestine: clean air, measured breath work, and room for grief to pass through.",
	chart.ElementWater: "Conserve the kidneys and bladder: rest deeply, stay warm below the waist, and spend fear carefully.",
}

// CalculateHealthSeverity compounds the health-domain results and ranks the
// affected elements by seasonal vulnerability. Ties break toward the element
// with the lower post-interaction score, then canonical element order.
func CalculateHealthSeverity(
	results []values.SeverityResult,
	affected []chart.Element,
	states map[chart.Element]chart.SeasonalState,
	postScores map[chart.Element]float64,
) HealthAssessment {
	compound := CalculateCompoundSeverity(results, pattern.DomainHealth)

	vulnerability := make(map[chart.Element]float64, len(affected))
	for _, e := range affected {
		vulnerability[e] = states[e].Multiplier()
	}

	ranked := make([]chart.Element, len(affected))
	copy(ranked, affected)
	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := vulnerability[ranked[i]], vulnerability[ranked[j]]
		if vi != vj {
			return vi > vj
		}
		pi, pj := postScores[ranked[i]], postScores[ranked[j]]
		if pi != pj {
			return pi < pj
		}
		return ranked[i] < ranked[j]
	})

	assessment := HealthAssessment{
		Severity:      compound,
		Vulnerability: vulnerability,
	}
	if len(ranked) > 0 {
		weakest := ranked[0]
		assessment.VulnerableElement = weakest
		assessment.OrganSystem = weakest.OrganSystem()
		assessment.Recommendation = healthRecommendations[weakest]
	}
	return assessment
}
