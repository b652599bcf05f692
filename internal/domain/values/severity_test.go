package values

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected Level
	}{
		{0, LevelMinor},
		{29.9, LevelMinor},
		{30, LevelModerate},
		{49.9, LevelModerate},
		{50, LevelMajor},
		{69.9, LevelMajor},
		{70, LevelCritical},
		{100, LevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelForScore(tt.score), "score %.1f", tt.score)
	}
}

func TestLevelRankOrdering(t *testing.T) {
	levels := []Level{LevelMinor, LevelModerate, LevelMajor, LevelCritical}
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i].Rank(), levels[i-1].Rank())
	}
	assert.Equal(t, -1, Level("unknown").Rank())
}

func TestNewSeverityResultSanitizes(t *testing.T) {
	r := NewSeverityResult(math.NaN(), math.Inf(1), map[string]float64{"bad": math.NaN()}, "degraded")
	assert.Zero(t, r.Raw)
	assert.Zero(t, r.Normalized)
	assert.Equal(t, LevelMinor, r.Level)
	assert.Zero(t, r.Factors["bad"])
}

func TestNewSeverityResultCopiesFactors(t *testing.T) {
	factors := map[string]float64{"seasonal": 1.4}
	r := NewSeverityResult(10, 33, factors, "x")

	factors["seasonal"] = 99
	assert.Equal(t, 1.4, r.Factors["seasonal"])
	assert.Equal(t, LevelModerate, r.Level)
}
