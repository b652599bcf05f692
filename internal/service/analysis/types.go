package analysis

import (
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/values"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/service/severity"
)

// AnalysisRequest is the input contract from the chart computation
// collaborator. Interactions map free-form identifiers to tolerantly decoded
// records; PostElementScore is accepted for forward compatibility and used
// only as a health tie-break today.
type AnalysisRequest struct {
	Interactions     map[string]chart.Interaction           `json:"interactions"`
	SeasonalStates   map[chart.Element]chart.SeasonalState  `json:"seasonal_states"`
	DayMasterStem    chart.Stem                             `json:"daymaster_stem"`
	DayMasterElement chart.Element                          `json:"daymaster_element"`
	PostElementScore map[chart.Element]float64              `json:"post_element_score,omitempty"`
	YearBranch       chart.Branch                           `json:"year_branch,omitempty"`
}

// EnhancedPatternMatch is one scored interaction, flattened for the
// presentation collaborator. Fallback marks entries scored under the generic
// null pattern.
type EnhancedPatternMatch struct {
	InteractionID   string            `json:"interaction_id"`
	PatternID       string            `json:"pattern_id"`
	Category        pattern.Category  `json:"category"`
	NameZh          string            `json:"name_zh"`
	NamePinyin      string            `json:"name_pinyin"`
	Badge           pattern.Badge     `json:"badge"`
	Element         string            `json:"element,omitempty"`
	Distance        int               `json:"distance"`
	Pillar          string            `json:"pillar"`
	PillarMeaning   string            `json:"pillar_meaning,omitempty"`
	Transformed     bool              `json:"transformed"`
	RawScore        float64           `json:"raw_score"`
	NormalizedScore float64           `json:"normalized_score"`
	Level           values.Level      `json:"level"`
	Explanation     string            `json:"explanation"`
	Domains         []pattern.Domain  `json:"domains,omitempty"`
	Events          []EventPrediction `json:"events"`
	Fallback        bool              `json:"fallback,omitempty"`
}

// EventPrediction is one predicted life event for a matched pattern.
type EventPrediction struct {
	Domain      pattern.Domain `json:"domain,omitempty"`
	EventType   string         `json:"event_type"`
	Positive    bool           `json:"positive"`
	Probability float64        `json:"probability"`
}

// DomainContributor references one pattern feeding a domain's compound score.
type DomainContributor struct {
	PatternID       string       `json:"pattern_id"`
	NormalizedScore float64      `json:"normalized_score"`
	Level           values.Level `json:"level"`
}

// DomainAnalysis is the compound summary for one life domain.
type DomainAnalysis struct {
	PatternCount int                   `json:"pattern_count"`
	Severity     values.SeverityResult `json:"severity"`
	TopPatterns  []DomainContributor   `json:"top_patterns"`
}

// StarTrigger is one concrete chart location activating a special star.
type StarTrigger struct {
	Node   string `json:"node"`
	Pillar string `json:"pillar"`
}

// SpecialStar is a context-dependent single-branch pattern found active in
// the chart.
type SpecialStar struct {
	PatternID      string            `json:"pattern_id"`
	NameZh         string            `json:"name_zh"`
	NamePinyin     string            `json:"name_pinyin"`
	Category       pattern.Category  `json:"category"`
	TargetBranch   chart.Branch      `json:"target_branch"`
	Description    string            `json:"description,omitempty"`
	PillarMeanings map[string]string `json:"pillar_meanings,omitempty"`
	Triggers       []StarTrigger     `json:"triggers"`
}

// Recommendation is one fixed-template advisory filled with computed values.
type Recommendation struct {
	Domain      pattern.Domain `json:"domain"`
	Priority    values.Level   `json:"priority"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
}

// AnalysisResult is the full analyzer output.
type AnalysisResult struct {
	AnalysisID       string                             `json:"analysis_id"`
	EnhancedPatterns []EnhancedPatternMatch             `json:"enhanced_patterns"`
	PatternCount     int                                `json:"pattern_count"`
	DomainAnalysis   map[pattern.Domain]*DomainAnalysis `json:"domain_analysis"`
	AffectedElements []chart.Element                    `json:"affected_elements"`
	SpecialStars     []SpecialStar                      `json:"special_stars"`
	HealthEnhanced   *severity.HealthAssessment         `json:"health_enhanced,omitempty"`
	Recommendations  []Recommendation                   `json:"recommendations"`
}

// Thresholds are the compound normalized scores above which a domain emits a
// recommendation.
type Thresholds struct {
	Health       float64 `json:"health"`
	Wealth       float64 `json:"wealth"`
	Career       float64 `json:"career"`
	Relationship float64 `json:"relationship"`
}

// DefaultThresholds returns the stock recommendation trigger levels.
func DefaultThresholds() Thresholds {
	return Thresholds{Health: 50, Wealth: 40, Career: 50, Relationship: 40}
}
