package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFlattensBag(t *testing.T) {
	raw := map[string]any{
		"name": "Dog",
		"properties": map[string]any{
			"type": "Animal",
			"legs": float64(4),
		},
	}

	rec := Normalize(raw)

	assert.Equal(t, "Dog", rec.Name())
	assert.Equal(t, "Animal", rec["type"])
	assert.Equal(t, float64(4), rec["legs"])
	_, hasBag := rec["properties"]
	assert.False(t, hasBag, "property bag must not survive normalization")
}

func TestNormalizeBagTitleWins(t *testing.T) {
	raw := map[string]any{
		"name": "dog",
		"properties": map[string]any{
			"title": "Dog",
			"type":  "Animal",
		},
	}

	rec := Normalize(raw)

	assert.Equal(t, "Dog", rec.Name())
	_, hasTitle := rec["title"]
	assert.False(t, hasTitle, "reserved title property must be removed")
}

func TestNormalizeFallsBackToTopLevelName(t *testing.T) {
	raw := map[string]any{
		"name":       "Cat",
		"properties": map[string]any{"type": "Animal"},
	}

	assert.Equal(t, "Cat", Normalize(raw).Name())
}

func TestNormalizeMissingNameAndTitle(t *testing.T) {
	rec := Normalize(map[string]any{
		"properties": map[string]any{"type": "Animal"},
	})

	// Not an error: an empty canonical name is the documented degenerate case.
	assert.Equal(t, "", rec.Name())
	assert.Equal(t, "Animal", rec["type"])
}

func TestNormalizeNoBag(t *testing.T) {
	rec := Normalize(map[string]any{"name": "Animal"})
	assert.Equal(t, "Animal", rec.Name())
	assert.Len(t, rec, 1)
}

func TestNormalizePreservesOtherFields(t *testing.T) {
	raw := map[string]any{
		"name":      "Animal",
		"uuid":      "abc-123",
		"namespace": "biology",
	}

	rec := Normalize(raw)
	assert.Equal(t, "abc-123", rec["uuid"])
	assert.Equal(t, "biology", rec["namespace"])
}

func TestCollection(t *testing.T) {
	ids, ok := Collection([]any{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, ids)

	ids, ok = Collection([]string{"x"})
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, ids)

	ids, ok = Collection([]any{})
	require.True(t, ok)
	assert.Empty(t, ids)

	_, ok = Collection("scalar")
	assert.False(t, ok)

	_, ok = Collection(float64(3))
	assert.False(t, ok)
}

func TestDisplayForm(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string passes through", "hello", "hello"},
		{"whole float renders without fraction", float64(4), "4"},
		{"fractional float round trips", 4.5, "4.5"},
		{"bool", true, "true"},
		{"nil renders empty", nil, ""},
		{"int", 7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayForm(tt.value))
		})
	}
}
