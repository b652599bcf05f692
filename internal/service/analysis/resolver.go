package analysis

import (
	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/pattern"
)

// Identifier resolution. Runtime identifiers arrive with participants in
// whatever order the upstream engine produced them; the registry's canonical
// key already absorbs ordering, so the retry chain here only covers qualifier
// drift between the runtime and the authored catalog.

// resolveSpec attempts pattern resolution for a recognized category:
// as-given first, then the category-specific qualifier retries, then the bare
// star identifier for context stars.
func resolveSpec(reg *pattern.Registry, category pattern.Category, token string, participants []string, qualifier string) (*pattern.Spec, bool) {
	if spec, ok := reg.Resolve(category, participants, qualifier); ok {
		return spec, true
	}

	switch category {
	case pattern.CategoryClash:
		for _, q := range []string{"opposite", "same"} {
			if q == qualifier {
				continue
			}
			if spec, ok := reg.Resolve(category, participants, q); ok {
				return spec, true
			}
		}
	case pattern.CategoryHarm, pattern.CategoryStemConflict:
		if qualifier != "" {
			if spec, ok := reg.Resolve(category, participants, ""); ok {
				return spec, true
			}
		}
	}

	// Star specs are registered under the bare type token: one spec per
	// star, the target branch is contextual.
	if category.IsStar() {
		if spec, ok := reg.Get(token); ok {
			return spec, true
		}
	}

	return nil, false
}
