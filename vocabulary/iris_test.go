package vocabulary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageIRI(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		pageName string
		expected string
	}{
		{
			name:     "plain name",
			baseURL:  "https://x/#/page/",
			pageName: "Animal",
			expected: "https://x/#/page/Animal",
		},
		{
			name:     "name with space",
			baseURL:  "https://x/#/page/",
			pageName: "My Page",
			expected: "https://x/#/page/My%20Page",
		},
		{
			name:     "name with slash",
			baseURL:  "https://x/#/page/",
			pageName: "a/b",
			expected: "https://x/#/page/a%2Fb",
		},
		{
			name:     "name with unicode",
			baseURL:  "https://x/#/page/",
			pageName: "café",
			expected: "https://x/#/page/caf%C3%A9",
		},
		{
			name:     "empty name yields bare base URL",
			baseURL:  "https://x/#/page/",
			pageName: "",
			expected: "https://x/#/page/",
		},
		{
			name:     "reserved characters escaped",
			baseURL:  "https://x/#/page/",
			pageName: "a&b=c?d",
			expected: "https://x/#/page/a%26b%3Dc%3Fd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageIRI(tt.baseURL, tt.pageName))
		})
	}
}

func TestEncodeComponentRoundTrip(t *testing.T) {
	names := []string{
		"Animal",
		"My Page",
		"a/b c&d=e?f#g",
		"café ☕",
		"100%",
		"",
	}

	for _, name := range names {
		encoded := EncodeComponent(name)
		decoded, err := DecodeComponent(encoded)
		require.NoError(t, err)
		assert.Equal(t, name, decoded, "round trip for %q", name)
	}
}

func TestEncodeComponentNoPlus(t *testing.T) {
	// Spaces must encode as %20, never "+", so decoding the IRI suffix with
	// any standard component decoder recovers the page name.
	assert.False(t, strings.Contains(EncodeComponent("a b c"), "+"))
	assert.Equal(t, "a%20b%20c", EncodeComponent("a b c"))
}

func TestBuiltinOverrides(t *testing.T) {
	builtins := BuiltinOverrides()

	assert.Equal(t, RdfsLabel, builtins[NameKey])
	assert.Equal(t, OwlSameAs, builtins[AliasKey])
	assert.Len(t, builtins, 2)

	// Each call returns a fresh map so callers can layer entries on top
	// without mutating the built-in set.
	builtins["extra"] = "https://example.org/extra"
	assert.Len(t, BuiltinOverrides(), 2)
}
