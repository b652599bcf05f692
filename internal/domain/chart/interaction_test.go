package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionUnmarshalTolerance(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, Interaction)
	}{
		{
			name:  "full record",
			input: `{"element":"Fire","distance":2,"transformed":true,"positions":[1,2]}`,
			validate: func(t *testing.T, i Interaction) {
				assert.False(t, i.IsPlaceholder())
				assert.Equal(t, "Fire", i.Element)
				assert.Equal(t, 2, i.Distance)
				assert.True(t, i.Transformed)
				assert.Equal(t, []int{1, 2}, i.Positions)
			},
		},
		{
			name:  "distance as numeric string",
			input: `{"distance":"2"}`,
			validate: func(t *testing.T, i Interaction) {
				assert.Equal(t, 2, i.Distance)
			},
		},
		{
			name:  "distance token form",
			input: `{"distance":"distance_3"}`,
			validate: func(t *testing.T, i Interaction) {
				assert.Equal(t, 3, i.Distance)
			},
		},
		{
			name:  "garbage distance falls back to default",
			input: `{"distance":"garbage"}`,
			validate: func(t *testing.T, i Interaction) {
				assert.Equal(t, DefaultDistance, i.Distance)
			},
		},
		{
			name:  "absent distance falls back to default",
			input: `{"element":"Wood"}`,
			validate: func(t *testing.T, i Interaction) {
				assert.Equal(t, DefaultDistance, i.Distance)
			},
		},
		{
			name:  "bare string is a placeholder",
			input: `"upstream placeholder"`,
			validate: func(t *testing.T, i Interaction) {
				assert.True(t, i.IsPlaceholder())
			},
		},
		{
			name:  "unrecognized shape degrades to placeholder",
			input: `[1,2,3]`,
			validate: func(t *testing.T, i Interaction) {
				assert.True(t, i.IsPlaceholder())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i Interaction
			require.NoError(t, json.Unmarshal([]byte(tt.input), &i))
			tt.validate(t, i)
		})
	}
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{"json number", `4`, 4},
		{"numeric string", `"2"`, 2},
		{"token", `"distance_3"`, 3},
		{"padded token", `" distance_1 "`, 1},
		{"garbage", `"garbage"`, DefaultDistance},
		{"null", `null`, DefaultDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDistance(json.RawMessage(tt.raw)))
		})
	}
}
