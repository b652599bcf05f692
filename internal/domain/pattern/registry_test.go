package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/errors"
)

func newTestSpec(id string, category Category, priority int) *Spec {
	_, participants, _ := SplitID(id)
	return &Spec{
		ID:                id,
		Category:          category,
		Priority:          priority,
		MinParticipants:   max(1, len(participants)),
		MaxParticipants:   max(1, len(participants)),
		BaseScoreCombined: 5.0,
	}
}

func TestRegistryPermutationInvariance(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newTestSpec("CLASH~Zi-Wu~opposite", CategoryClash, 15)))
	require.NoError(t, r.Register(newTestSpec("THREE_MEETINGS~Yin-Mao-Chen~Wood", CategoryThreeMeetings, 8)))

	tests := []struct {
		name         string
		category     Category
		participants []string
		qualifier    string
		expectedID   string
	}{
		{"two participants as registered", CategoryClash, []string{"Zi", "Wu"}, "opposite", "CLASH~Zi-Wu~opposite"},
		{"two participants reversed", CategoryClash, []string{"Wu", "Zi"}, "opposite", "CLASH~Zi-Wu~opposite"},
		{"case folded lookup", CategoryClash, []string{"wu", "zi"}, "OPPOSITE", "CLASH~Zi-Wu~opposite"},
		{"three participants rotated", CategoryThreeMeetings, []string{"Chen", "Yin", "Mao"}, "Wood", "THREE_MEETINGS~Yin-Mao-Chen~Wood"},
		{"three participants reversed", CategoryThreeMeetings, []string{"Chen", "Mao", "Yin"}, "Wood", "THREE_MEETINGS~Yin-Mao-Chen~Wood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := r.Resolve(tt.category, tt.participants, tt.qualifier)
			require.True(t, ok)
			assert.Equal(t, tt.expectedID, spec.ID)
		})
	}

	_, ok := r.Resolve(CategoryClash, []string{"Zi", "Wu"}, "same")
	assert.False(t, ok, "qualifier is part of the canonical key")
	_, ok = r.Resolve(CategoryHarm, []string{"Zi", "Wu"}, "opposite")
	assert.False(t, ok, "category is part of the canonical key")
}

func TestRegistryDuplicateRegistrationIsNoOp(t *testing.T) {
	r := NewRegistry()

	first := newTestSpec("CLASH~Zi-Wu~opposite", CategoryClash, 15)
	require.NoError(t, r.Register(first))

	second := newTestSpec("CLASH~Zi-Wu~opposite", CategoryClash, 15)
	second.BaseScoreCombined = 99
	require.NoError(t, r.Register(second))

	assert.Equal(t, 1, r.Size())
	got, ok := r.Get("CLASH~Zi-Wu~opposite")
	require.True(t, ok)
	assert.Equal(t, 5.0, got.BaseScoreCombined, "the first registration wins")
}

func TestRegistryValidation(t *testing.T) {
	r := NewRegistry()

	missingID := newTestSpec("", CategoryClash, 1)
	err := r.Register(missingID)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	inverted := newTestSpec("CLASH~Zi-Wu~opposite", CategoryClash, 1)
	inverted.MinParticipants = 3
	inverted.MaxParticipants = 2
	err = r.Register(inverted)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	assert.Equal(t, 0, r.Size())
}

func TestRegistryProcessingOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newTestSpec("HARM~Zi-Wei~", CategoryHarm, 35)))
	require.NoError(t, r.Register(newTestSpec("CLASH~Zi-Wu~opposite", CategoryClash, 15)))
	require.NoError(t, r.Register(newTestSpec("CLASH~Mao-You~opposite", CategoryClash, 15)))
	require.NoError(t, r.Register(newTestSpec("PUNISHMENT~Zi-Mao~", CategoryPunishment, 5)))

	ordered := r.ProcessingOrder()
	ids := make([]string, len(ordered))
	for i, s := range ordered {
		ids[i] = s.ID
	}

	assert.Equal(t, []string{
		"PUNISHMENT~Zi-Mao~",
		"CLASH~Zi-Wu~opposite",
		"CLASH~Mao-You~opposite",
		"HARM~Zi-Wei~",
	}, ids, "priority ascending, registration order breaking ties")
}

func TestDefaultRegistrySingleton(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	first := Default()
	second := Default()
	assert.Same(t, first, second)
	assert.Greater(t, first.Size(), 0)
}
