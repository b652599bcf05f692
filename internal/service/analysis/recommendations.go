package analysis

import (
	"fmt"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/values"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/service/severity"
)

// Recommendations are fixed templates filled with computed values, emitted
// per domain once its compound severity crosses the configured threshold.

func buildRecommendations(
	domains map[pattern.Domain]*DomainAnalysis,
	domainResults map[pattern.Domain][]values.SeverityResult,
	health *severity.HealthAssessment,
	req AnalysisRequest,
	thresholds Thresholds,
) []Recommendation {
	recommendations := make([]Recommendation, 0, 4)

	if health != nil {
		if da := domains[pattern.DomainHealth]; da != nil && da.Severity.Normalized >= thresholds.Health {
			recommendations = append(recommendations, Recommendation{
				Domain:      pattern.DomainHealth,
				Priority:    da.Severity.Level,
				Title:       fmt.Sprintf("Guard the %s", health.OrganSystem),
				Description: health.Recommendation,
			})
		}
	}

	if da := domains[pattern.DomainWealth]; da != nil && da.Severity.Normalized >= thresholds.Wealth {
		wealth := severity.CalculateWealthSeverity(
			domainResults[pattern.DomainWealth], req.DayMasterElement, req.SeasonalStates)
		recommendations = append(recommendations, Recommendation{
			Domain:      pattern.DomainWealth,
			Priority:    wealth.Severity.Level,
			Title:       fmt.Sprintf("Wealth pressure on the %s element", wealth.WealthElement),
			Description: wealth.Recommendation,
		})
	}

	if da := domains[pattern.DomainCareer]; da != nil && da.Severity.Normalized >= thresholds.Career {
		recommendations = append(recommendations, Recommendation{
			Domain:   pattern.DomainCareer,
			Priority: da.Severity.Level,
			Title:    "Career patterns under strain",
			Description: fmt.Sprintf(
				"%d career pattern(s) compound to %s severity; favor consolidation over new ventures this cycle.",
				da.PatternCount, da.Severity.Level),
		})
	}

	if da := domains[pattern.DomainRelationship]; da != nil && da.Severity.Normalized >= thresholds.Relationship {
		recommendations = append(recommendations, Recommendation{
			Domain:   pattern.DomainRelationship,
			Priority: da.Severity.Level,
			Title:    "Relationship patterns under strain",
			Description: fmt.Sprintf(
				"%d relationship pattern(s) compound to %s severity; address frictions directly before they harden.",
				da.PatternCount, da.Severity.Level),
		})
	}

	return recommendations
}
