package chart

// PillarPosition indexes a slot in the computed chart. Slots 0-3 are the four
// natal pillars; slots 4-8 are extended comparison pillars (luck cycle, annual,
// and similar overlays) that weigh like the year pillar.
type PillarPosition int

const (
	PositionHour  PillarPosition = 0
	PositionDay   PillarPosition = 1
	PositionMonth PillarPosition = 2
	PositionYear  PillarPosition = 3
)

var pillarWeights = map[string]float64{
	"year":  1.0,
	"month": 1.2,
	"day":   1.5,
	"hour":  1.0,
}

// PillarName returns the slot's pillar name. Extended positions fall back to
// "year".
func (p PillarPosition) PillarName() string {
	switch p {
	case PositionHour:
		return "hour"
	case PositionDay:
		return "day"
	case PositionMonth:
		return "month"
	case PositionYear:
		return "year"
	}
	if p >= 4 && p <= 8 {
		return "year"
	}
	return ""
}

// Weight returns the position's severity weight, 1.0 for anything unmapped.
func (p PillarPosition) Weight() float64 {
	if w, ok := pillarWeights[p.PillarName()]; ok {
		return w
	}
	return 1.0
}

// PrimaryPosition picks the dominant slot from an interaction's participant
// positions: the minimum listed position. An empty list defaults to the day
// pillar.
func PrimaryPosition(positions []int) PillarPosition {
	if len(positions) == 0 {
		return PositionDay
	}
	min := positions[0]
	for _, p := range positions[1:] {
		if p < min {
			min = p
		}
	}
	return PillarPosition(min)
}
