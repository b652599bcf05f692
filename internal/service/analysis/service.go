// Package analysis orchestrates one chart analysis: it reconciles runtime
// interaction identifiers against the pattern catalog, scores each match,
// aggregates per life domain, detects special stars, and emits
// recommendations. Malformed interaction data never fails a call; it degrades
// to generic classification.
package analysis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/chart"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/values"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/metrics"
	"github.com/wuxinglabs/bazi-pattern-engine/internal/service/severity"
)

const topPatternsPerDomain = 3

// Service analyzes chart interactions against an immutable pattern registry.
// The registry is injected at construction and never mutated, so one Service
// is safe for concurrent use.
type Service struct {
	registry   *pattern.Registry
	logger     *zap.Logger
	metrics    *metrics.Registry
	tracer     trace.Tracer
	thresholds Thresholds
}

// NewService creates an analysis service. A nil registry falls back to the
// process-wide default catalog, a nil logger to a no-op logger, and zero
// thresholds to the stock trigger levels. Metrics may be nil.
func NewService(registry *pattern.Registry, logger *zap.Logger, m *metrics.Registry, thresholds Thresholds) *Service {
	if registry == nil {
		registry = pattern.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if thresholds == (Thresholds{}) {
		thresholds = DefaultThresholds()
	}
	return &Service{
		registry:   registry,
		logger:     logger,
		metrics:    m,
		tracer:     otel.Tracer("bazi.engine.analysis"),
		thresholds: thresholds,
	}
}

// AnalyzeInteractions runs one full analysis. The error is always nil for
// data problems; the context is used for tracing only. Output is
// deterministic for identical inputs.
func (s *Service) AnalyzeInteractions(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	ctx, span := s.tracer.Start(ctx, "analysis.AnalyzeInteractions")
	defer span.End()
	start := time.Now()

	sortedIDs := make([]string, 0, len(req.Interactions))
	for id := range req.Interactions {
		sortedIDs = append(sortedIDs, id)
	}
	sort.Strings(sortedIDs)

	result := &AnalysisResult{
		AnalysisID:       analysisID(req, sortedIDs),
		EnhancedPatterns: make([]EnhancedPatternMatch, 0, len(sortedIDs)),
		DomainAnalysis:   make(map[pattern.Domain]*DomainAnalysis),
		AffectedElements: []chart.Element{},
		Recommendations:  []Recommendation{},
	}

	domainResults := make(map[pattern.Domain][]values.SeverityResult)
	domainContributors := make(map[pattern.Domain][]DomainContributor)
	affected := make(map[chart.Element]bool)

	for _, id := range sortedIDs {
		interaction := req.Interactions[id]
		if interaction.IsPlaceholder() {
			continue
		}
		if s.metrics != nil {
			s.metrics.InteractionsProcessed.Add(ctx, 1)
		}

		token, participants, qualifier := pattern.SplitID(id)
		category, recognized := pattern.CategoryForToken(token)
		if !recognized {
			if s.metrics != nil {
				s.metrics.UnrecognizedTypes.Add(ctx, 1)
			}
			s.logger.Debug("skipping unrecognized interaction type",
				zap.String("interaction_id", id), zap.String("token", token))
			continue
		}

		spec, matched := resolveSpec(s.registry, category, token, participants, qualifier)

		element, _ := chart.ParseElement(interaction.Element)
		pillar := chart.PrimaryPosition(interaction.Positions)

		// The null pattern scores with the default category weight.
		severityCategory := category
		if !matched {
			severityCategory = ""
		}

		scored := severity.CalculatePatternSeverity(severity.Input{
			PatternID:        id,
			Category:         severityCategory,
			Distance:         interaction.Distance,
			SeasonalState:    req.SeasonalStates[element],
			Pillar:           pillar,
			DayMasterElement: req.DayMasterElement,
			PatternElement:   element,
			Transformed:      interaction.Transformed,
		})
		if s.metrics != nil {
			s.metrics.SeverityNormalized.Record(ctx, scored.Normalized)
		}

		enhanced := EnhancedPatternMatch{
			InteractionID:   id,
			Category:        category,
			Element:         interaction.Element,
			Distance:        interaction.Distance,
			Pillar:          pillar.PillarName(),
			Transformed:     interaction.Transformed,
			RawScore:        scored.Raw,
			NormalizedScore: scored.Normalized,
			Level:           scored.Level,
			Explanation:     scored.Explanation,
		}
		if matched {
			enhanced.PatternID = spec.ID
			enhanced.NameZh = spec.NameZh
			enhanced.NamePinyin = spec.NamePinyin
			enhanced.Badge = spec.Badge
			enhanced.Domains = spec.Domains
			enhanced.PillarMeaning = spec.MeaningForPillar(pillar.PillarName())
			if s.metrics != nil {
				s.metrics.PatternsMatched.Add(ctx, 1)
			}
		} else {
			enhanced.PatternID = id
			enhanced.NameZh = token
			enhanced.NamePinyin = token
			enhanced.Badge = pattern.BadgeNeutral
			enhanced.Fallback = true
			if s.metrics != nil {
				s.metrics.FallbackClassifications.Add(ctx, 1)
			}
			s.logger.Debug("interaction degraded to generic classification",
				zap.String("interaction_id", id), zap.String("category", string(category)))
		}
		enhanced.Events = predictEvents(spec, category, scored.Normalized)

		for _, d := range enhanced.Domains {
			domainResults[d] = append(domainResults[d], scored)
			domainContributors[d] = append(domainContributors[d], DomainContributor{
				PatternID:       enhanced.PatternID,
				NormalizedScore: scored.Normalized,
				Level:           scored.Level,
			})
		}
		if element.Valid() {
			affected[element] = true
		}
		if matched && interaction.Transformed && spec.Transformation != nil {
			affected[spec.Transformation.ResultElement] = true
		}

		result.EnhancedPatterns = append(result.EnhancedPatterns, enhanced)
	}

	result.PatternCount = len(result.EnhancedPatterns)
	result.AffectedElements = sortedElements(affected)

	for _, d := range sortedDomains(domainResults) {
		result.DomainAnalysis[d] = &DomainAnalysis{
			PatternCount: len(domainResults[d]),
			Severity:     severity.CalculateCompoundSeverity(domainResults[d], d),
			TopPatterns:  topContributors(domainContributors[d]),
		}
	}

	result.SpecialStars = detectSpecialStars(s.registry, req, sortedIDs)

	if healthResults := domainResults[pattern.DomainHealth]; len(healthResults) > 0 && len(result.AffectedElements) > 0 {
		assessment := severity.CalculateHealthSeverity(
			healthResults, result.AffectedElements, req.SeasonalStates, req.PostElementScore)
		result.HealthEnhanced = &assessment
	}

	result.Recommendations = buildRecommendations(
		result.DomainAnalysis, domainResults, result.HealthEnhanced, req, s.thresholds)

	if s.metrics != nil {
		s.metrics.AnalysisDuration.Record(ctx, float64(time.Since(start).Microseconds())/1000)
	}
	span.SetAttributes(
		attribute.Int("analysis.pattern_count", result.PatternCount),
		attribute.Int("analysis.domain_count", len(result.DomainAnalysis)),
		attribute.Int("analysis.star_count", len(result.SpecialStars)),
	)
	s.logger.Debug("analysis complete",
		zap.String("analysis_id", result.AnalysisID),
		zap.Int("pattern_count", result.PatternCount),
		zap.Int("domains", len(result.DomainAnalysis)),
		zap.Int("special_stars", len(result.SpecialStars)))

	return result, nil
}

// topContributors ranks a domain's contributors by normalized score, highest
// first, tie-broken by pattern id, and keeps the strongest three.
func topContributors(contributors []DomainContributor) []DomainContributor {
	ranked := make([]DomainContributor, len(contributors))
	copy(ranked, contributors)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].NormalizedScore != ranked[j].NormalizedScore {
			return ranked[i].NormalizedScore > ranked[j].NormalizedScore
		}
		return ranked[i].PatternID < ranked[j].PatternID
	})
	if len(ranked) > topPatternsPerDomain {
		ranked = ranked[:topPatternsPerDomain]
	}
	return ranked
}

func sortedElements[V any](m map[chart.Element]V) []chart.Element {
	elements := make([]chart.Element, 0, len(m))
	for e := range m {
		elements = append(elements, e)
	}
	sort.Slice(elements, func(i, j int) bool { return elements[i] < elements[j] })
	return elements
}

func sortedDomains[V any](m map[pattern.Domain]V) []pattern.Domain {
	domains := make([]pattern.Domain, 0, len(m))
	for d := range m {
		domains = append(domains, d)
	}
	sort.Slice(domains, func(i, j int) bool { return domains[i] < domains[j] })
	return domains
}

// analysisNamespace scopes the deterministic analysis identifiers.
var analysisNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("bazi-pattern-engine/analysis"))

// analysisID derives a stable UUID from the request contents, so repeated
// analyses of the same chart correlate downstream without breaking the
// engine's determinism.
func analysisID(req AnalysisRequest, sortedIDs []string) string {
	var b strings.Builder
	b.WriteString(string(req.DayMasterStem))
	b.WriteByte('|')
	b.WriteString(string(req.DayMasterElement))
	b.WriteByte('|')
	b.WriteString(string(req.YearBranch))

	for _, e := range sortedElements(req.SeasonalStates) {
		fmt.Fprintf(&b, "|%s=%s", e, req.SeasonalStates[e])
	}
	for _, e := range sortedElements(req.PostElementScore) {
		fmt.Fprintf(&b, "|%s=%s", e, strconv.FormatFloat(req.PostElementScore[e], 'g', -1, 64))
	}
	for _, id := range sortedIDs {
		i := req.Interactions[id]
		fmt.Fprintf(&b, "|%s:%s,%d,%t,%v", id, i.Element, i.Distance, i.Transformed, i.Positions)
	}

	return uuid.NewSHA1(analysisNamespace, []byte(b.String())).String()
}
