package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, LoadCatalog(r))
	return r
}

func TestLoadCatalogCoverage(t *testing.T) {
	r := loadedRegistry(t)

	expected := len(threeMeetingEntries) + len(threeHarmonyEntries) +
		len(sixHarmonyEntries) + len(halfMeetingEntries) + len(halfHarmonyEntries) +
		len(archedHarmonyEntries) + len(stemCombinationEntries) +
		len(clashEntries) + len(harmEntries) + len(destructionEntries) +
		len(punishmentEntries) + len(stemConflictEntries) +
		len(starEntries)
	assert.Equal(t, expected, r.Size())

	assert.Len(t, r.GetByCategory(CategoryClash), 6)
	assert.Len(t, r.GetByCategory(CategoryHarm), 6)
	assert.Len(t, r.GetByCategory(CategoryDestruction), 6)
	assert.Len(t, r.GetByCategory(CategoryPunishment), 7)
	assert.Len(t, r.GetByCategory(CategoryStemConflict), 4)
	assert.Len(t, r.GetByCategory(CategorySixHarmony), 6)
	assert.Len(t, r.GetByCategory(CategoryThreeMeetings), 4)
	assert.Len(t, r.GetByCategory(CategoryThreeHarmony), 4)
	assert.Len(t, r.GetByCategory(CategoryStemCombination), 5)
}

func TestLoadCatalogIsIdempotent(t *testing.T) {
	r := loadedRegistry(t)
	size := r.Size()

	require.NoError(t, LoadCatalog(r))
	assert.Equal(t, size, r.Size())
}

func TestCatalogTransformedScoresDominate(t *testing.T) {
	r := loadedRegistry(t)

	for _, spec := range r.GetAll() {
		if spec.Transformation == nil {
			continue
		}
		assert.GreaterOrEqual(t, spec.BaseScoreTransformed, spec.BaseScoreCombined,
			"%s: a completed transformation can never score below the bare combination", spec.ID)
	}
}

func TestCatalogResolvesReorderedIdentifiers(t *testing.T) {
	r := loadedRegistry(t)

	canonical, ok := r.Get("THREE_MEETINGS~Yin-Mao-Chen~Wood")
	require.True(t, ok)

	reordered, ok := r.Resolve(CategoryThreeMeetings, []string{"Chen", "Yin", "Mao"}, "Wood")
	require.True(t, ok)
	assert.Same(t, canonical, reordered)
}

func TestCatalogClashEntries(t *testing.T) {
	r := loadedRegistry(t)

	spec, ok := r.Get("CLASH~Zi-Wu~opposite")
	require.True(t, ok)
	assert.Equal(t, CategoryClash, spec.Category)
	assert.Equal(t, BadgeInauspicious, spec.Badge)
	assert.Equal(t, "子午相冲", spec.NameZh)
	assert.NotEmpty(t, spec.Events.Negative)
	assert.NotEmpty(t, spec.MeaningForPillar("day"))
}

func TestCatalogStarSpecs(t *testing.T) {
	r := loadedRegistry(t)

	starCategories := []Category{
		CategoryVoidStar, CategoryNoblemanStar, CategoryRomanceStar,
		CategoryTravelStar, CategoryBladeStar, CategoryProsperityStar,
		CategoryCanopyStar, CategoryLonelyStar, CategoryWidowStar,
	}
	for _, c := range starCategories {
		spec, ok := r.Get(c.TypeToken())
		require.True(t, ok, "star %s must register under its bare type token", c)
		assert.Equal(t, 1, spec.MinParticipants)
		assert.Equal(t, 1, spec.MaxParticipants)
		assert.NotEmpty(t, spec.NameZh)
	}
}

func TestEventTaxonomyCoversAllDomains(t *testing.T) {
	for _, d := range AllDomains() {
		types := EventTaxonomy(d)
		assert.NotEmpty(t, types.Positive, "domain %s has no positive events", d)
		assert.NotEmpty(t, types.Negative, "domain %s has no negative events", d)
	}
}

func TestProcessingOrderStartsWithPunishments(t *testing.T) {
	r := loadedRegistry(t)

	ordered := r.ProcessingOrder()
	require.NotEmpty(t, ordered)
	assert.Equal(t, CategoryPunishment, ordered[0].Category,
		"punishments carry the lowest priority value in the catalog")
}
