package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/values"
)

func TestCalculatePatternSeverity(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		validate func(*testing.T, values.SeverityResult)
	}{
		{
			// 0.9 x 0.85 x 1.4 x 1.5 x 1.5 x 1.0 x 10 = 24.0975 raw.
			name: "trapped day-pillar clash on the day master scores critical",
			input: Input{
				PatternID:        "CLASH~Zi-Wu~opposite",
				Category:         pattern.CategoryClash,
				Distance:         1,
				SeasonalState:    chart.StateTrapped,
				Pillar:           chart.PositionDay,
				DayMasterElement: chart.ElementFire,
				PatternElement:   chart.ElementFire,
			},
			validate: func(t *testing.T, r values.SeverityResult) {
				assert.InDelta(t, 24.0975, r.Raw, 0.0001)
				assert.InDelta(t, 80.325, r.Normalized, 0.001)
				assert.Equal(t, values.LevelCritical, r.Level)
				assert.Contains(t, r.Explanation, "CLASH")
				assert.Contains(t, r.Explanation, "amplified by Trapped seasonal state")
				assert.Contains(t, r.Explanation, "affecting personal matters")
			},
		},
		{
			name: "unknown category falls back to the default weight",
			input: Input{
				PatternID:     "NOVEL~Zi-Wu~",
				Category:      "",
				Distance:      1,
				SeasonalState: chart.StateResting,
				Pillar:        chart.PositionYear,
			},
			validate: func(t *testing.T, r values.SeverityResult) {
				assert.Equal(t, 0.5, r.Factors["category_weight"])
				assert.InDelta(t, 0.5*0.85*1.0*1.0*1.0*1.0*10, r.Raw, 0.0001)
				assert.Equal(t, values.LevelMinor, r.Level)
			},
		},
		{
			name: "transformation bonus applies",
			input: Input{
				PatternID:      "SIX_HARMONY~Zi-Chou~Earth",
				Category:       pattern.CategorySixHarmony,
				Distance:       0,
				SeasonalState:  chart.StateResting,
				Pillar:         chart.PositionMonth,
				PatternElement: chart.ElementEarth,
				Transformed:    true,
			},
			validate: func(t *testing.T, r values.SeverityResult) {
				assert.Equal(t, 1.3, r.Factors["transformation"])
				assert.Contains(t, r.Explanation, "affecting career matters")
			},
		},
		{
			name: "far distance dampens the score",
			input: Input{
				PatternID:     "HARM~Zi-Wei~",
				Category:      pattern.CategoryHarm,
				Distance:      4,
				SeasonalState: chart.StateResting,
				Pillar:        chart.PositionYear,
			},
			validate: func(t *testing.T, r values.SeverityResult) {
				assert.Equal(t, 0.45, r.Factors["distance"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CalculatePatternSeverity(tt.input))
		})
	}
}

func TestSeverityMonotonicInSeasonalState(t *testing.T) {
	base := Input{
		PatternID:        "CLASH~Zi-Wu~opposite",
		Category:         pattern.CategoryClash,
		Distance:         1,
		Pillar:           chart.PositionDay,
		DayMasterElement: chart.ElementFire,
		PatternElement:   chart.ElementFire,
	}

	var previous float64
	for i, state := range chart.AllSeasonalStates() {
		base.SeasonalState = state
		r := CalculatePatternSeverity(base)
		if i > 0 {
			assert.Greater(t, r.Raw, previous,
				"%s must score strictly above the preceding state", state)
		}
		previous = r.Raw
	}
}

func TestDayMasterRelevance(t *testing.T) {
	tests := []struct {
		name            string
		dayMaster       chart.Element
		patternElement  chart.Element
		expectedFactor  float64
	}{
		{"same element", chart.ElementWood, chart.ElementWood, 1.5},
		{"produced element", chart.ElementWood, chart.ElementFire, 1.2},
		{"controlled element", chart.ElementWood, chart.ElementEarth, 1.2},
		{"unrelated element", chart.ElementWood, chart.ElementMetal, 1.0},
		{"missing pattern element", chart.ElementWood, "", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CalculatePatternSeverity(Input{
				PatternID:        "CLASH~Zi-Wu~opposite",
				Category:         pattern.CategoryClash,
				Distance:         1,
				SeasonalState:    chart.StateResting,
				Pillar:           chart.PositionYear,
				DayMasterElement: tt.dayMaster,
				PatternElement:   tt.patternElement,
			})
			assert.Equal(t, tt.expectedFactor, r.Factors["day_master"])
		})
	}
}

func TestCalculateCompoundSeverity(t *testing.T) {
	t.Run("empty input yields a defined zero result", func(t *testing.T) {
		r := CalculateCompoundSeverity(nil, pattern.DomainHealth)
		assert.Zero(t, r.Raw)
		assert.Zero(t, r.Normalized)
		assert.Equal(t, values.LevelMinor, r.Level)
		assert.Equal(t, "No patterns detected", r.Explanation)
	})

	t.Run("normalized score grows with pattern count", func(t *testing.T) {
		single := values.NewSeverityResult(10, 33.3, nil, "x")

		var previous float64
		for n := 1; n <= 5; n++ {
			results := make([]values.SeverityResult, n)
			for i := range results {
				results[i] = single
			}
			r := CalculateCompoundSeverity(results, pattern.DomainCareer)
			assert.GreaterOrEqual(t, r.Normalized, previous)
			if n >= 2 {
				assert.Greater(t, r.Normalized, single.Normalized,
					"co-occurring patterns must outweigh any single contributor")
			}
			previous = r.Normalized
		}
	})

	t.Run("compounding factor adds a quarter per extra pattern", func(t *testing.T) {
		results := []values.SeverityResult{
			values.NewSeverityResult(10, 20, nil, "a"),
			values.NewSeverityResult(10, 20, nil, "b"),
			values.NewSeverityResult(10, 20, nil, "c"),
		}
		r := CalculateCompoundSeverity(results, pattern.DomainWealth)
		assert.InDelta(t, 30*1.5, r.Raw, 0.0001)
		assert.InDelta(t, 45*100/50.0, r.Normalized, 0.0001)
		assert.Equal(t, 1.5, r.Factors["compounding"])
	})
}

func TestCalculateHealthSeverity(t *testing.T) {
	results := []values.SeverityResult{values.NewSeverityResult(20, 40, nil, "x")}
	states := map[chart.Element]chart.SeasonalState{
		chart.ElementWood: chart.StateDead,
		chart.ElementFire: chart.StateTrapped,
	}

	t.Run("ranks by seasonal vulnerability", func(t *testing.T) {
		a := CalculateHealthSeverity(results,
			[]chart.Element{chart.ElementFire, chart.ElementWood}, states, nil)
		assert.Equal(t, chart.ElementWood, a.VulnerableElement)
		assert.Equal(t, "liver and gallbladder", a.OrganSystem)
		assert.NotEmpty(t, a.Recommendation)
		assert.Equal(t, 1.8, a.Vulnerability[chart.ElementWood])
	})

	t.Run("ties break toward the lower post-interaction score", func(t *testing.T) {
		tied := map[chart.Element]chart.SeasonalState{
			chart.ElementWood: chart.StateTrapped,
			chart.ElementFire: chart.StateTrapped,
		}
		post := map[chart.Element]float64{
			chart.ElementWood: 30,
			chart.ElementFire: 10,
		}
		a := CalculateHealthSeverity(results,
			[]chart.Element{chart.ElementWood, chart.ElementFire}, tied, post)
		assert.Equal(t, chart.ElementFire, a.VulnerableElement)
	})

	t.Run("no affected elements leaves the deep dive unkeyed", func(t *testing.T) {
		a := CalculateHealthSeverity(results, nil, states, nil)
		assert.Empty(t, a.VulnerableElement)
		assert.Empty(t, a.Recommendation)
	})
}

func TestCalculateWealthSeverity(t *testing.T) {
	results := []values.SeverityResult{values.NewSeverityResult(10, 20, nil, "x")}
	states := map[chart.Element]chart.SeasonalState{
		chart.ElementEarth: chart.StateDead,
	}

	// Wood's wealth element is Earth; Dead Earth scales by 1.8.
	a := CalculateWealthSeverity(results, chart.ElementWood, states)
	require.Equal(t, chart.ElementEarth, a.WealthElement)
	assert.InDelta(t, 18, a.Severity.Raw, 0.0001)
	assert.InDelta(t, 36, a.Severity.Normalized, 0.0001)
	assert.Equal(t, values.LevelModerate, a.Severity.Level)
	assert.Equal(t, 1.8, a.Severity.Factors["wealth_seasonal"])
	assert.Contains(t, a.Severity.Explanation, "Earth wealth element")
	assert.NotEmpty(t, a.Recommendation)
}
