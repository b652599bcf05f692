package chart

import "strings"

// SeasonalState classifies an element's vigor in the chart's season. The
// further a state sits from elemental vigor, the more a matched pattern is
// amplified.
type SeasonalState string

const (
	StateProsperous    SeasonalState = "Prosperous"
	StateStrengthening SeasonalState = "Strengthening"
	StateResting       SeasonalState = "Resting"
	StateTrapped       SeasonalState = "Trapped"
	StateDead          SeasonalState = "Dead"
)

var seasonalMultipliers = map[SeasonalState]float64{
	StateProsperous:    0.6,
	StateStrengthening: 0.8,
	StateResting:       1.0,
	StateTrapped:       1.4,
	StateDead:          1.8,
}

// AllSeasonalStates returns the states ordered from vigorous to dead.
func AllSeasonalStates() []SeasonalState {
	return []SeasonalState{
		StateProsperous, StateStrengthening, StateResting, StateTrapped, StateDead,
	}
}

// ParseSeasonalState resolves a free-form state token, case-insensitively.
func ParseSeasonalState(s string) (SeasonalState, bool) {
	for _, st := range AllSeasonalStates() {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

// Multiplier returns the severity multiplier for the state. Unlisted states
// (including the zero value) weigh 1.0.
func (s SeasonalState) Multiplier() float64 {
	if m, ok := seasonalMultipliers[s]; ok {
		return m
	}
	return 1.0
}
