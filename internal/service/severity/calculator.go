// Package severity computes pattern severity scores: pure functions over a
// matched pattern's context, with compound aggregation per life domain and
// specialized health and wealth assessments.
package severity

import (
	"fmt"
	"math"
	"strings"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/values"
)

// Input carries everything one severity calculation needs. PatternElement may
// be empty when the interaction did not report one.
type Input struct {
	PatternID        string
	Category         pattern.Category
	Distance         int
	SeasonalState    chart.SeasonalState
	Pillar           chart.PillarPosition
	DayMasterElement chart.Element
	PatternElement   chart.Element
	Transformed      bool
}

// CalculatePatternSeverity scores a single matched pattern. The raw score is
// the product of six contextual multipliers scaled by 10; normalization maps
// a raw 30 to the 100 cap.
func CalculatePatternSeverity(in Input) values.SeverityResult {
	categoryWeight := CategoryWeight(in.Category)
	distance := DistanceMultiplier(in.Distance)
	seasonal := in.SeasonalState.Multiplier()
	pillar := in.Pillar.Weight()
	dayMaster := dayMasterRelevance(in.DayMasterElement, in.PatternElement)

	transformation := 1.0
	if in.Transformed {
		transformation = transformationBonus
	}

	raw := categoryWeight * distance * seasonal * pillar * dayMaster * transformation * baseScale
	normalized := math.Min(normalizeCap, raw/rawFullScale*100)

	factors := map[string]float64{
		"category_weight": categoryWeight,
		"distance":        distance,
		"seasonal":        seasonal,
		"pillar":          pillar,
		"day_master":      dayMaster,
		"transformation":  transformation,
	}

	explanation := buildExplanation(in, values.LevelForScore(normalized), seasonal, dayMaster)

	return values.NewSeverityResult(raw, normalized, factors, explanation)
}

// CalculateCompoundSeverity aggregates co-occurring patterns within one life
// domain. Raw scores sum and gain 25% extra weight per additional pattern:
// simultaneous interactions matter more than linearly. An empty input yields
// a defined zero result, never an error.
func CalculateCompoundSeverity(results []values.SeverityResult, domain pattern.Domain) values.SeverityResult {
	if len(results) == 0 {
		return values.NewSeverityResult(0, 0, nil, "No patterns detected")
	}

	var total float64
	for _, r := range results {
		total += r.Raw
	}

	compounding := 1 + compoundGrowth*float64(len(results)-1)
	raw := total * compounding
	normalized := math.Min(normalizeCap, raw/compoundScale*100)

	factors := map[string]float64{
		"pattern_count": float64(len(results)),
		"compounding":   compounding,
	}

	explanation := fmt.Sprintf("%d pattern(s) compound in the %s domain", len(results), domain)

	return values.NewSeverityResult(raw, normalized, factors, explanation)
}

// dayMasterRelevance weighs how directly the pattern's element touches the
// Day Master: 1.5 for the Day Master's own element, 1.2 for its immediate
// downstream elements, 1.0 otherwise.
func dayMasterRelevance(dayMaster, patternElement chart.Element) float64 {
	if !dayMaster.Valid() || !patternElement.Valid() {
		return 1.0
	}
	if dayMaster == patternElement {
		return 1.5
	}
	if dayMaster.AdjacentTo(patternElement) {
		return 1.2
	}
	return 1.0
}

var levelPhrases = map[values.Level]string{
	values.LevelMinor:    "has a minor influence on the chart",
	values.LevelModerate: "creates moderate disruption",
	values.LevelMajor:    "creates major disruption requiring attention",
	values.LevelCritical: "poses a critical threat to chart stability",
}

func buildExplanation(in Input, level values.Level, seasonal, dayMaster float64) string {
	token := in.PatternID
	if idx := strings.Index(token, "~"); idx >= 0 {
		token = token[:idx]
	}

	var b strings.Builder
	b.WriteString(token)
	b.WriteByte(' ')
	b.WriteString(levelPhrases[level])

	if seasonal > 1.2 {
		fmt.Fprintf(&b, ", amplified by %s seasonal state", in.SeasonalState)
	}
	if dayMaster > 1.2 {
		b.WriteString(", directly relevant to the Day Master")
	}
	switch in.Pillar.PillarName() {
	case "day":
		b.WriteString(", affecting personal matters")
	case "month":
		b.WriteString(", affecting career matters")
	}

	return b.String()
}
