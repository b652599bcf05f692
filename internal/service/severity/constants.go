package severity

import "github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"

// Scoring tables. Weights follow the classical severity convention: the
// gravest conflicts (punishment, clash) and the complete directional meeting
// anchor the scale, partial combinations trail it.

const (
	// defaultCategoryWeight applies to categories absent from the table,
	// including categories the upstream engine invents after this catalog
	// was authored.
	defaultCategoryWeight = 0.5

	// defaultDistanceMultiplier applies beyond the tabled distances: far
	// apart participants interact weakly, they are not an error.
	defaultDistanceMultiplier = 0.4

	transformationBonus = 1.3

	baseScale      = 10.0
	normalizeCap   = 100.0
	rawFullScale   = 30.0
	compoundScale  = 50.0
	compoundGrowth = 0.25
)

var categoryWeights = map[pattern.Category]float64{
	pattern.CategoryThreeMeetings:   1.0,
	pattern.CategoryThreeHarmony:    0.9,
	pattern.CategorySixHarmony:      0.7,
	pattern.CategoryHalfMeeting:     0.6,
	pattern.CategoryHalfHarmony:     0.5,
	pattern.CategoryArchedHarmony:   0.3,
	pattern.CategoryStemCombination: 0.6,

	pattern.CategoryPunishment:   1.0,
	pattern.CategoryClash:        0.9,
	pattern.CategoryHarm:         0.7,
	pattern.CategoryStemConflict: 0.6,
	pattern.CategoryDestruction:  0.5,

	pattern.CategoryBladeStar:      0.6,
	pattern.CategoryVoidStar:       0.5,
	pattern.CategoryLonelyStar:     0.4,
	pattern.CategoryWidowStar:      0.4,
	pattern.CategoryNoblemanStar:   0.4,
	pattern.CategoryRomanceStar:    0.4,
	pattern.CategoryTravelStar:     0.4,
	pattern.CategoryProsperityStar: 0.4,
	pattern.CategoryCanopyStar:     0.4,
}

var distanceMultipliers = map[int]float64{
	0: 1.0,
	1: 0.85,
	2: 0.70,
	3: 0.55,
	4: 0.45,
}

// CategoryWeight returns the severity weight for a category, 0.5 when the
// category is unknown.
func CategoryWeight(c pattern.Category) float64 {
	if w, ok := categoryWeights[c]; ok {
		return w
	}
	return defaultCategoryWeight
}

// DistanceMultiplier returns the weight for a participant distance; anything
// past the table is treated as weaker, never as an error.
func DistanceMultiplier(distance int) float64 {
	if m, ok := distanceMultipliers[distance]; ok {
		return m
	}
	return defaultDistanceMultiplier
}
