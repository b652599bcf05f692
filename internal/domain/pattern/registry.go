package pattern

import (
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/errors"
)

// Registry indexes pattern specs by identifier, by canonical participant key,
// and by category. It is built once during catalog load and treated as
// read-only afterwards; construction needs external synchronization, reads do
// not.
type Registry struct {
	byID        map[string]*Spec
	byCanonical map[string]*Spec
	byCategory  map[Category][]*Spec
	order       []*Spec

	validate *validator.Validate
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:        make(map[string]*Spec),
		byCanonical: make(map[string]*Spec),
		byCategory:  make(map[Category][]*Spec),
		validate:    validator.New(),
	}
}

// canonicalKey builds the order-independent lookup key: category, participants
// sorted lexicographically (case folded), and the folded qualifier. Computed
// once at registration and once per lookup, which removes any need to try
// participant permutations.
func canonicalKey(category Category, participants []string, qualifier string) string {
	folded := make([]string, len(participants))
	for i, p := range participants {
		folded[i] = strings.ToLower(strings.TrimSpace(p))
	}
	sort.Strings(folded)

	var b strings.Builder
	b.WriteString(string(category))
	b.WriteByte('|')
	b.WriteString(strings.Join(folded, "-"))
	b.WriteByte('|')
	b.WriteString(strings.ToLower(qualifier))
	return b.String()
}

// Register validates and inserts a spec. Registering an identifier that is
// already present is a silent no-op so the static catalog can be bulk-loaded
// repeatedly.
func (r *Registry) Register(spec *Spec) error {
	if err := r.validate.Struct(spec); err != nil {
		return errors.NewValidationError("INVALID_PATTERN_SPEC", "pattern spec failed validation").WithCause(err)
	}
	r.insert(spec)
	return nil
}

// RegisterUnchecked inserts a spec without validation. Used for
// machine-generated entries already validated at authoring time.
func (r *Registry) RegisterUnchecked(spec *Spec) {
	r.insert(spec)
}

func (r *Registry) insert(spec *Spec) {
	if _, exists := r.byID[spec.ID]; exists {
		return
	}
	r.byID[spec.ID] = spec

	_, participants, qualifier := SplitID(spec.ID)
	key := canonicalKey(spec.Category, participants, qualifier)
	if _, exists := r.byCanonical[key]; !exists {
		r.byCanonical[key] = spec
	}

	r.byCategory[spec.Category] = append(r.byCategory[spec.Category], spec)
	r.order = append(r.order, spec)
}

// Get returns the spec registered under the literal identifier.
func (r *Registry) Get(id string) (*Spec, bool) {
	spec, ok := r.byID[id]
	return spec, ok
}

// Resolve finds a spec by category, participants in any order, and optional
// qualifier.
func (r *Registry) Resolve(category Category, participants []string, qualifier string) (*Spec, bool) {
	spec, ok := r.byCanonical[canonicalKey(category, participants, qualifier)]
	return spec, ok
}

// GetByCategory returns the category's specs in registration order.
func (r *Registry) GetByCategory(category Category) []*Spec {
	return r.byCategory[category]
}

// GetAll returns every spec in registration order.
func (r *Registry) GetAll() []*Spec {
	return r.order
}

// Size returns the number of registered specs.
func (r *Registry) Size() int {
	return len(r.byID)
}

// ProcessingOrder returns the specs sorted ascending by priority; ties keep
// registration order.
func (r *Registry) ProcessingOrder() []*Spec {
	ordered := make([]*Spec, len(r.order))
	copy(ordered, r.order)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})
	return ordered
}

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide registry loaded with the full static
// catalog, building it on first use. Prefer constructing a Registry explicitly
// and injecting it; Default exists for hosts that want the build-once
// convenience.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		r := NewRegistry()
		if err := LoadCatalog(r); err != nil {
			// The static catalog is authored alongside this code; a load
			// failure is a programming error, not a runtime condition.
			panic(err)
		}
		defaultRegistry = r
	}
	return defaultRegistry
}

// ResetDefault discards the process-wide registry so tests can isolate
// catalog state.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = nil
}
