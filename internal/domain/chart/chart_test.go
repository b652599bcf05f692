package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementCycles(t *testing.T) {
	// The sheng cycle visits all five elements before returning home.
	seen := map[Element]bool{}
	e := ElementWood
	for range AllElements() {
		seen[e] = true
		e = e.Produces()
	}
	assert.Equal(t, ElementWood, e)
	assert.Len(t, seen, 5)

	assert.Equal(t, ElementEarth, ElementWood.Controls())
	assert.Equal(t, ElementWood.Controls(), ElementWood.WealthElement())
}

func TestElementAdjacency(t *testing.T) {
	tests := []struct {
		name     string
		from, to Element
		adjacent bool
	}{
		{"wood feeds fire", ElementWood, ElementFire, true},
		{"wood controls earth", ElementWood, ElementEarth, true},
		{"wood to metal is not adjacent", ElementWood, ElementMetal, false},
		{"adjacency is directional", ElementFire, ElementWood, false},
		{"water feeds wood", ElementWater, ElementWood, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.adjacent, tt.from.AdjacentTo(tt.to))
		})
	}
}

func TestSeasonalMultipliersAscend(t *testing.T) {
	states := AllSeasonalStates()
	for i := 1; i < len(states); i++ {
		assert.Greater(t, states[i].Multiplier(), states[i-1].Multiplier(),
			"%s must amplify more than %s", states[i], states[i-1])
	}

	assert.Equal(t, 1.0, SeasonalState("").Multiplier())
	assert.Equal(t, 1.0, SeasonalState("Unheard").Multiplier())
}

func TestPrimaryPosition(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		pillar    string
		weight    float64
	}{
		{"empty defaults to day", nil, "day", 1.5},
		{"single year", []int{3}, "year", 1.0},
		{"minimum wins", []int{3, 2}, "month", 1.2},
		{"hour beats day", []int{1, 0}, "hour", 1.0},
		{"extended slots weigh like year", []int{5}, "year", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PrimaryPosition(tt.positions)
			assert.Equal(t, tt.pillar, p.PillarName())
			assert.Equal(t, tt.weight, p.Weight())
		})
	}
}

func TestParseTokens(t *testing.T) {
	s, ok := ParseStem("jia")
	assert.True(t, ok)
	assert.Equal(t, StemJia, s)

	b, ok := ParseBranch(" zi ")
	assert.True(t, ok)
	assert.Equal(t, BranchZi, b)

	_, ok = ParseStem("Zi")
	assert.False(t, ok, "Zi is a branch, not a stem")

	e, ok := ParseElement("WATER")
	assert.True(t, ok)
	assert.Equal(t, ElementWater, e)

	_, ok = ParseElement("aether")
	assert.False(t, ok)
}

func TestStemBranchElements(t *testing.T) {
	assert.Equal(t, ElementWood, StemJia.Element())
	assert.Equal(t, ElementWater, BranchZi.Element())
	assert.True(t, StemJia.Yang())
	assert.False(t, StemYi.Yang())
	assert.Equal(t, "子", BranchZi.Glyph())
	assert.Equal(t, "甲", StemJia.Glyph())
}
