package chart

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Interaction is one detected relationship among chart positions, exactly as
// the upstream engine reports it. The identifier that keys it in the
// interactions map is parsed elsewhere; this record only carries the
// per-interaction payload.
//
// The upstream engine is free to evolve: distances arrive as integers, numeric
// strings, or "distance_<N>" tokens, and some map entries are bare string
// placeholders instead of records. Decoding never fails on any of that; bad
// values degrade to defaults and placeholders are flagged for the analyzer to
// skip.
type Interaction struct {
	Element     string `json:"element,omitempty"`
	Distance    int    `json:"distance"`
	Transformed bool   `json:"transformed"`
	Positions   []int  `json:"positions,omitempty"`

	placeholder bool
}

// IsPlaceholder reports whether the map entry was a bare string rather than a
// record. Placeholders carry no analyzable payload.
func (i Interaction) IsPlaceholder() bool {
	return i.placeholder
}

// DefaultDistance is assumed whenever the upstream value is absent or
// unparsable.
const DefaultDistance = 1

// ParseDistance normalizes a raw distance value: a JSON number, a numeric
// string, or a "distance_<N>" token. Anything else yields DefaultDistance.
func ParseDistance(raw json.RawMessage) int {
	if len(raw) == 0 || string(raw) == "null" {
		return DefaultDistance
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return DefaultDistance
	}
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "distance_")
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return DefaultDistance
}

// UnmarshalJSON decodes an interaction record tolerantly.
func (i *Interaction) UnmarshalJSON(data []byte) error {
	var placeholder string
	if err := json.Unmarshal(data, &placeholder); err == nil {
		*i = Interaction{placeholder: true}
		return nil
	}

	var aux struct {
		Element     string          `json:"element"`
		Distance    json.RawMessage `json:"distance"`
		Transformed bool            `json:"transformed"`
		Positions   []int           `json:"positions"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		// Unrecognized shapes degrade to a placeholder rather than failing
		// the whole request.
		*i = Interaction{placeholder: true}
		return nil
	}

	*i = Interaction{
		Element:     aux.Element,
		Distance:    ParseDistance(aux.Distance),
		Transformed: aux.Transformed,
		Positions:   aux.Positions,
	}
	return nil
}
