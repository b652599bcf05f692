package analysis

import (
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
)

const (
	minEventProbability  = 0.4
	eventProbabilitySpan = 0.5
	maxEventPredictions  = 5
)

// Generic event types for null-pattern interactions, where no authored
// mapping exists.
const (
	genericPositiveEvent = "general improvement"
	genericNegativeEvent = "general obstacle"
)

// eventProbability scales a normalized severity onto the 0.4-0.9 probability
// band: the stronger the pattern scores, the likelier its events.
func eventProbability(normalized float64) float64 {
	p := minEventProbability + normalized/100*eventProbabilitySpan
	if p < minEventProbability {
		return minEventProbability
	}
	if p > minEventProbability+eventProbabilitySpan {
		return minEventProbability + eventProbabilitySpan
	}
	return p
}

// predictEvents generates 1-5 event predictions for a match: the authored
// event mapping when the spec carries one, otherwise a single generic guess
// keyed by whether the category is combination-like.
func predictEvents(spec *pattern.Spec, category pattern.Category, normalized float64) []EventPrediction {
	probability := eventProbability(normalized)

	if spec != nil && spec.Events != nil {
		predictions := authoredEvents(spec, probability)
		if len(predictions) > 0 {
			return predictions
		}
	}

	if category.IsCombination() {
		return []EventPrediction{{
			EventType:   genericPositiveEvent,
			Positive:    true,
			Probability: probability,
		}}
	}
	return []EventPrediction{{
		EventType:   genericNegativeEvent,
		Positive:    false,
		Probability: probability,
	}}
}

// authoredEvents expands a spec's event mapping. Auspicious patterns predict
// their positive events, inauspicious ones their negative events; neutral and
// contextual patterns predict both sides.
func authoredEvents(spec *pattern.Spec, probability float64) []EventPrediction {
	var predictions []EventPrediction

	appendSide := func(events []pattern.DomainEvent, positive bool) {
		for _, e := range events {
			if len(predictions) >= maxEventPredictions {
				return
			}
			predictions = append(predictions, EventPrediction{
				Domain:      e.Domain,
				EventType:   e.EventType,
				Positive:    positive,
				Probability: probability,
			})
		}
	}

	switch spec.Badge {
	case pattern.BadgeAuspicious:
		appendSide(spec.Events.Positive, true)
	case pattern.BadgeInauspicious:
		appendSide(spec.Events.Negative, false)
	default:
		appendSide(spec.Events.Positive, true)
		appendSide(spec.Events.Negative, false)
	}

	return predictions
}
