// Package pattern holds the declarative catalog of recognized interaction
// patterns, the indexed registry they load into, and the dependency-graph
// primitive for prerequisite ordering.
package pattern

// Category is the closed set of recognized pattern kinds. Grouped
// combinations, conflicts, and context-dependent stars each form a family;
// adding a category must force every consuming switch to be revisited, so all
// dispatch over categories happens through typed constants rather than raw
// strings.
type Category string

const (
	// Grouped combinations.
	CategoryThreeMeetings   Category = "three_meetings"
	CategoryThreeHarmony    Category = "three_harmony"
	CategorySixHarmony      Category = "six_harmony"
	CategoryHalfMeeting     Category = "half_meeting"
	CategoryHalfHarmony     Category = "half_harmony"
	CategoryArchedHarmony   Category = "arched_harmony"
	CategoryStemCombination Category = "stem_combination"

	// Conflicts.
	CategoryClash        Category = "clash"
	CategoryPunishment   Category = "punishment"
	CategoryHarm         Category = "harm"
	CategoryDestruction  Category = "destruction"
	CategoryStemConflict Category = "stem_conflict"

	// Context-dependent stars.
	CategoryVoidStar       Category = "void_star"
	CategoryNoblemanStar   Category = "nobleman_star"
	CategoryRomanceStar    Category = "romance_star"
	CategoryTravelStar     Category = "travel_star"
	CategoryBladeStar      Category = "blade_star"
	CategoryProsperityStar Category = "prosperity_star"
	CategoryCanopyStar     Category = "canopy_star"
	CategoryLonelyStar     Category = "lonely_star"
	CategoryWidowStar      Category = "widow_star"
)

// AllCategories returns every category, combinations first, then conflicts,
// then stars.
func AllCategories() []Category {
	return []Category{
		CategoryThreeMeetings, CategoryThreeHarmony, CategorySixHarmony,
		CategoryHalfMeeting, CategoryHalfHarmony, CategoryArchedHarmony,
		CategoryStemCombination,
		CategoryClash, CategoryPunishment, CategoryHarm,
		CategoryDestruction, CategoryStemConflict,
		CategoryVoidStar, CategoryNoblemanStar, CategoryRomanceStar,
		CategoryTravelStar, CategoryBladeStar, CategoryProsperityStar,
		CategoryCanopyStar, CategoryLonelyStar, CategoryWidowStar,
	}
}

// IsCombination reports whether the category is a grouped combination.
func (c Category) IsCombination() bool {
	switch c {
	case CategoryThreeMeetings, CategoryThreeHarmony, CategorySixHarmony,
		CategoryHalfMeeting, CategoryHalfHarmony, CategoryArchedHarmony,
		CategoryStemCombination:
		return true
	}
	return false
}

// IsConflict reports whether the category is a conflict.
func (c Category) IsConflict() bool {
	switch c {
	case CategoryClash, CategoryPunishment, CategoryHarm,
		CategoryDestruction, CategoryStemConflict:
		return true
	}
	return false
}

// IsStar reports whether the category is a context-dependent star.
func (c Category) IsStar() bool {
	return !c.IsCombination() && !c.IsConflict() && c != ""
}

// typeTokens maps runtime interaction type tokens onto categories. Tokens the
// upstream engine invents later simply stay unmapped; callers skip them.
var typeTokens = map[string]Category{
	"THREE_MEETINGS":   CategoryThreeMeetings,
	"THREE_HARMONY":    CategoryThreeHarmony,
	"SIX_HARMONY":      CategorySixHarmony,
	"HALF_MEETING":     CategoryHalfMeeting,
	"HALF_HARMONY":     CategoryHalfHarmony,
	"ARCHED_HARMONY":   CategoryArchedHarmony,
	"STEM_COMBINATION": CategoryStemCombination,
	"CLASH":            CategoryClash,
	"PUNISHMENT":       CategoryPunishment,
	"HARM":             CategoryHarm,
	"DESTRUCTION":      CategoryDestruction,
	"STEM_CONFLICT":    CategoryStemConflict,
	"STAR_VOID":        CategoryVoidStar,
	"STAR_NOBLEMAN":    CategoryNoblemanStar,
	"STAR_ROMANCE":     CategoryRomanceStar,
	"STAR_TRAVEL":      CategoryTravelStar,
	"STAR_BLADE":       CategoryBladeStar,
	"STAR_PROSPERITY":  CategoryProsperityStar,
	"STAR_CANOPY":      CategoryCanopyStar,
	"STAR_LONELY":      CategoryLonelyStar,
	"STAR_WIDOW":       CategoryWidowStar,
}

// categoryTokens is the reverse mapping, used when composing identifiers.
var categoryTokens = func() map[Category]string {
	m := make(map[Category]string, len(typeTokens))
	for token, c := range typeTokens {
		m[c] = token
	}
	return m
}()

// CategoryForToken resolves a runtime type token. The second return is false
// for tokens this catalog does not recognize.
func CategoryForToken(token string) (Category, bool) {
	c, ok := typeTokens[token]
	return c, ok
}

// TypeToken returns the identifier token for a category.
func (c Category) TypeToken() string {
	return categoryTokens[c]
}

// Badge tags a pattern for downstream UI classification only; it carries no
// scoring weight.
type Badge string

const (
	BadgeAuspicious   Badge = "auspicious"
	BadgeInauspicious Badge = "inauspicious"
	BadgeNeutral      Badge = "neutral"
	BadgeContextual   Badge = "contextual"
)

// Domain is a life-impact category used to aggregate severities.
type Domain string

const (
	DomainHealth       Domain = "health"
	DomainWealth       Domain = "wealth"
	DomainCareer       Domain = "career"
	DomainRelationship Domain = "relationship"
	DomainEducation    Domain = "education"
	DomainFamily       Domain = "family"
	DomainLegal        Domain = "legal"
	DomainTravel       Domain = "travel"
)

// AllDomains returns the fixed domain set.
func AllDomains() []Domain {
	return []Domain{
		DomainHealth, DomainWealth, DomainCareer, DomainRelationship,
		DomainEducation, DomainFamily, DomainLegal, DomainTravel,
	}
}
