package pattern

// The static catalog. Entries are authored in the compact tables of the
// catalog_*.go files and expanded into full Specs here. Loading is idempotent:
// re-registering an existing identifier is a no-op, so hosts may call
// LoadCatalog against the same registry more than once.

// EventTypes lists the canonical positive and negative event types for one
// life domain. This is static reference data, not user input.
type EventTypes struct {
	Positive []string
	Negative []string
}

var eventTaxonomy = map[Domain]EventTypes{
	DomainHealth: {
		Positive: []string{"recovery", "vitality improvement"},
		Negative: []string{"illness", "injury", "chronic flare-up"},
	},
	DomainWealth: {
		Positive: []string{"windfall", "investment gain", "income increase"},
		Negative: []string{"financial loss", "unexpected expense", "investment setback"},
	},
	DomainCareer: {
		Positive: []string{"promotion", "recognition", "new opportunity"},
		Negative: []string{"demotion", "workplace conflict", "project failure"},
	},
	DomainRelationship: {
		Positive: []string{"new romance", "marriage", "reconciliation"},
		Negative: []string{"separation", "betrayal", "partner dispute"},
	},
	DomainEducation: {
		Positive: []string{"examination success", "academic achievement"},
		Negative: []string{"examination setback", "study disruption"},
	},
	DomainFamily: {
		Positive: []string{"family celebration", "new family member"},
		Negative: []string{"family discord", "elder health concern"},
	},
	DomainLegal: {
		Positive: []string{"favorable ruling"},
		Negative: []string{"lawsuit", "contract dispute", "regulatory trouble"},
	},
	DomainTravel: {
		Positive: []string{"beneficial relocation", "journey opportunity"},
		Negative: []string{"travel disruption", "accident away from home"},
	},
}

// EventTaxonomy returns the canonical event types for a domain.
func EventTaxonomy(d Domain) EventTypes {
	return eventTaxonomy[d]
}

// defaultDistanceMultipliers is the authored distance falloff shared by every
// multi-participant pattern.
var defaultDistanceMultipliers = []float64{1.0, 0.85, 0.70, 0.55, 0.45}

// LoadCatalog registers the full static catalog into the given registry.
func LoadCatalog(r *Registry) error {
	if err := loadCombinations(r); err != nil {
		return err
	}
	if err := loadConflicts(r); err != nil {
		return err
	}
	return loadStars(r)
}

// positiveEvents expands a domain list into one authored positive event per
// domain.
func positiveEvents(domains []Domain) []DomainEvent {
	events := make([]DomainEvent, 0, len(domains))
	for _, d := range domains {
		types := eventTaxonomy[d]
		if len(types.Positive) == 0 {
			continue
		}
		events = append(events, DomainEvent{Domain: d, EventType: types.Positive[0]})
	}
	return events
}

// negativeEvents expands a domain list into one authored negative event per
// domain.
func negativeEvents(domains []Domain) []DomainEvent {
	events := make([]DomainEvent, 0, len(domains))
	for _, d := range domains {
		types := eventTaxonomy[d]
		if len(types.Negative) == 0 {
			continue
		}
		events = append(events, DomainEvent{Domain: d, EventType: types.Negative[0]})
	}
	return events
}

func sentiments(domains []Domain, sentiment string) []DomainSentiment {
	out := make([]DomainSentiment, 0, len(domains))
	for _, d := range domains {
		out = append(out, DomainSentiment{Domain: d, Sentiment: sentiment})
	}
	return out
}
