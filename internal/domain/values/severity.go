// Package values holds the immutable value objects produced by the scoring
// engine.
package values

import (
	"fmt"
	"math"
)

// Level is the ordinal severity band derived from a normalized score.
type Level string

const (
	LevelMinor    Level = "minor"
	LevelModerate Level = "moderate"
	LevelMajor    Level = "major"
	LevelCritical Level = "critical"
)

// LevelForScore maps a normalized 0-100 score onto its band.
func LevelForScore(normalized float64) Level {
	switch {
	case normalized >= 70:
		return LevelCritical
	case normalized >= 50:
		return LevelMajor
	case normalized >= 30:
		return LevelModerate
	default:
		return LevelMinor
	}
}

// Rank orders levels: minor < moderate < major < critical.
func (l Level) Rank() int {
	switch l {
	case LevelMinor:
		return 0
	case LevelModerate:
		return 1
	case LevelMajor:
		return 2
	case LevelCritical:
		return 3
	}
	return -1
}

// SeverityResult is one scored outcome: the raw factor product, the 0-100
// normalized score, the derived band, the named multiplicative factors that
// produced it, and a readable explanation. Produced fresh per calculation and
// never mutated.
type SeverityResult struct {
	Raw         float64            `json:"raw_score"`
	Normalized  float64            `json:"normalized_score"`
	Level       Level              `json:"level"`
	Factors     map[string]float64 `json:"factors,omitempty"`
	Explanation string             `json:"explanation"`
}

// NewSeverityResult builds an immutable severity result. The factors map is
// copied; NaN and infinite scores collapse to zero so a degraded upstream
// value can never poison aggregation.
func NewSeverityResult(raw, normalized float64, factors map[string]float64, explanation string) SeverityResult {
	raw = sanitize(raw)
	normalized = sanitize(normalized)

	var copied map[string]float64
	if len(factors) > 0 {
		copied = make(map[string]float64, len(factors))
		for k, v := range factors {
			copied[k] = sanitize(v)
		}
	}

	return SeverityResult{
		Raw:         raw,
		Normalized:  normalized,
		Level:       LevelForScore(normalized),
		Factors:     copied,
		Explanation: explanation,
	}
}

// String returns a short diagnostic form.
func (s SeverityResult) String() string {
	return fmt.Sprintf("SeverityResult{Raw: %.2f, Normalized: %.1f, Level: %s}", s.Raw, s.Normalized, s.Level)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
