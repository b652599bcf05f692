package pattern

import (
	"strings"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
)

// NodeKind distinguishes which chart node positions a filter applies to.
type NodeKind string

const (
	NodeStem   NodeKind = "stem"
	NodeBranch NodeKind = "branch"
)

// NodeFilter selects chart nodes by branch, stem, or element value. A filter
// with several value lists matches a node satisfying any of them.
type NodeFilter struct {
	Kinds    []NodeKind      `json:"kinds"`
	Branches []chart.Branch  `json:"branches,omitempty"`
	Stems    []chart.Stem    `json:"stems,omitempty"`
	Elements []chart.Element `json:"elements,omitempty"`
}

// SpatialRule constrains where participants may sit relative to each other.
type SpatialRule struct {
	MaxDistance     int  `json:"max_distance"`
	RequireAdjacent bool `json:"require_adjacent"`
	SamePillar      bool `json:"same_pillar"`
}

// TemporalRule gates a pattern on the chart's seasonal context.
type TemporalRule struct {
	AllowedStates  []chart.SeasonalState `json:"allowed_states,omitempty"`
	ExcludedStates []chart.SeasonalState `json:"excluded_states,omitempty"`
}

// TransformationRule describes what a combination turns into when it
// completes.
type TransformationRule struct {
	ResultElement   chart.Element   `json:"result_element"`
	RequiresSupport bool            `json:"requires_support"`
	SupportElements []chart.Element `json:"support_elements,omitempty"`
	PolarityMatters bool            `json:"polarity_matters"`
	ScoreMultiplier float64         `json:"score_multiplier,omitempty"`
}

// QiTarget selects which participants a qi effect lands on.
type QiTarget string

const (
	QiTargetSource QiTarget = "source"
	QiTargetTarget QiTarget = "target"
	QiTargetAll    QiTarget = "all"
)

// QiEffect is a declared elemental-strength adjustment.
type QiEffect struct {
	Target  QiTarget `json:"target"`
	Delta   float64  `json:"delta"`
	Percent bool     `json:"percent"`
}

// DomainEvent pairs a life domain with a canonical event type from the static
// taxonomy.
type DomainEvent struct {
	Domain    Domain `json:"domain"`
	EventType string `json:"event_type"`
}

// DomainSentiment records whether a pattern leans positive or negative for a
// domain.
type DomainSentiment struct {
	Domain    Domain `json:"domain"`
	Sentiment string `json:"sentiment"`
}

// EventMapping drives event prediction for a matched pattern.
type EventMapping struct {
	PrimaryDomains []Domain          `json:"primary_domains"`
	Positive       []DomainEvent     `json:"positive,omitempty"`
	Negative       []DomainEvent     `json:"negative,omitempty"`
	Sentiments     []DomainSentiment `json:"sentiments,omitempty"`
}

// Spec is one immutable declarative pattern rule. Specs are authored at load
// time and never mutated afterwards; every accessor that exposes a slice
// returns the authored value, which callers must treat as read-only.
type Spec struct {
	ID       string   `json:"id" validate:"required"`
	Category Category `json:"category" validate:"required"`

	// Priority orders evaluation, lower first. Informational: no scheduler
	// enforces it today.
	Priority int `json:"priority"`

	NameZh     string `json:"name_zh"`
	NamePinyin string `json:"name_pinyin"`

	Filters         []NodeFilter `json:"filters,omitempty"`
	MinParticipants int          `json:"min_participants" validate:"min=1"`
	MaxParticipants int          `json:"max_participants" validate:"gtefield=MinParticipants"`

	Spatial        *SpatialRule        `json:"spatial,omitempty"`
	Temporal       *TemporalRule       `json:"temporal,omitempty"`
	Transformation *TransformationRule `json:"transformation,omitempty"`

	BaseScoreCombined    float64 `json:"base_score_combined" validate:"min=0"`
	BaseScoreTransformed float64 `json:"base_score_transformed,omitempty" validate:"min=0"`

	// DistanceMultipliers index by participant distance; distances past the
	// end reuse the last entry.
	DistanceMultipliers []float64 `json:"distance_multipliers,omitempty"`

	Qi *QiEffect `json:"qi,omitempty"`

	Badge   Badge    `json:"badge"`
	Domains []Domain `json:"domains,omitempty"`

	// PillarMeanings narrates the pattern per pillar name (year, month, day,
	// hour).
	PillarMeanings map[string]string `json:"pillar_meanings,omitempty"`

	Events *EventMapping `json:"events,omitempty"`

	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Participants returns the participant tokens encoded in the spec ID.
func (s *Spec) Participants() []string {
	_, parts, _ := SplitID(s.ID)
	return parts
}

// Qualifier returns the optional element-or-subtype token encoded in the
// spec ID.
func (s *Spec) Qualifier() string {
	_, _, qualifier := SplitID(s.ID)
	return qualifier
}

// DistanceMultiplier returns the authored multiplier for a participant
// distance, reusing the last entry for larger distances and 1.0 when none are
// authored.
func (s *Spec) DistanceMultiplier(distance int) float64 {
	if len(s.DistanceMultipliers) == 0 {
		return 1.0
	}
	if distance < 0 {
		distance = 0
	}
	if distance >= len(s.DistanceMultipliers) {
		return s.DistanceMultipliers[len(s.DistanceMultipliers)-1]
	}
	return s.DistanceMultipliers[distance]
}

// MeaningForPillar returns the narrative meaning authored for a pillar name,
// empty when the spec declares none.
func (s *Spec) MeaningForPillar(pillar string) string {
	return s.PillarMeanings[pillar]
}

// SplitID decomposes an identifier of the shape
// TYPE~p1-p2[-p3]~[qualifier] into its type token, participant list, and
// optional qualifier. A missing or dangling qualifier segment yields an empty
// qualifier; an identifier without participants yields an empty list.
func SplitID(id string) (token string, participants []string, qualifier string) {
	segments := strings.Split(id, "~")
	token = segments[0]
	if len(segments) > 1 && segments[1] != "" {
		participants = strings.Split(segments[1], "-")
	}
	if len(segments) > 2 {
		qualifier = segments[2]
	}
	return token, participants, qualifier
}

// ComposeID builds an identifier from its parts, omitting the qualifier
// segment when empty.
func ComposeID(token string, participants []string, qualifier string) string {
	id := token
	if len(participants) > 0 {
		id += "~" + strings.Join(participants, "-")
	}
	if qualifier != "" {
		id += "~" + qualifier
	}
	return id
}
