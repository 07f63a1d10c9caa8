package triplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/graphexport/config"
	"github.com/c360/graphexport/page"
	"github.com/c360/graphexport/vocabulary"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.BaseURL = "https://x/#/page/"
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestBuildCatalogBuiltinsOnly(t *testing.T) {
	catalog := BuildCatalog(vocabulary.BuiltinOverrides(), nil, "url")

	assert.Equal(t, vocabulary.RdfsLabel, catalog["name"])
	assert.Equal(t, vocabulary.OwlSameAs, catalog["alias"])
	assert.Len(t, catalog, 2)
}

func TestBuildCatalogLayersPropertyPages(t *testing.T) {
	pages := []page.Record{
		{"name": "color", "url": "https://schema.org/color"},
		{"name": "weight", "url": "https://schema.org/weight"},
	}

	catalog := BuildCatalog(vocabulary.BuiltinOverrides(), pages, "url")

	assert.Equal(t, "https://schema.org/color", catalog["color"])
	assert.Equal(t, "https://schema.org/weight", catalog["weight"])
	assert.Equal(t, vocabulary.RdfsLabel, catalog["name"])
}

func TestBuildCatalogKeysAreLowercased(t *testing.T) {
	pages := []page.Record{
		{"name": "Color", "url": "https://schema.org/color"},
	}

	catalog := BuildCatalog(nil, pages, "url")
	assert.Equal(t, "https://schema.org/color", catalog["color"])
	_, hasUpper := catalog["Color"]
	assert.False(t, hasUpper)
}

func TestBuildCatalogPropertyPageShadowsBuiltin(t *testing.T) {
	// Last-write-wins is defined behavior, not an error.
	pages := []page.Record{
		{"name": "alias", "url": "https://schema.org/sameAs"},
	}

	catalog := BuildCatalog(vocabulary.BuiltinOverrides(), pages, "url")
	assert.Equal(t, "https://schema.org/sameAs", catalog["alias"])
}

func TestBuildCatalogSkipsUnusableRecords(t *testing.T) {
	pages := []page.Record{
		{"name": "color"},                         // no override attribute
		{"name": "size", "url": ""},               // empty override
		{"url": "https://schema.org/anon"},        // no canonical name
		{"name": "shape", "url": float64(7)},      // non-string override
		{"name": "mass", "url": "https://x/mass"}, // usable
	}

	catalog := BuildCatalog(nil, pages, "url")
	assert.Equal(t, PropertyCatalog{"mass": "https://x/mass"}, catalog)
}

func TestBuildCatalogHonorsOverrideAttribute(t *testing.T) {
	pages := []page.Record{
		{"name": "color", "uri": "https://schema.org/color", "url": "https://wrong.example/"},
	}

	catalog := BuildCatalog(nil, pages, "uri")
	assert.Equal(t, "https://schema.org/color", catalog["color"])
}

func TestBuildCatalogIdempotent(t *testing.T) {
	builtins := vocabulary.BuiltinOverrides()
	pages := []page.Record{
		{"name": "color", "url": "https://schema.org/color"},
		{"name": "alias", "url": "https://schema.org/sameAs"},
	}

	first := BuildCatalog(builtins, pages, "url")
	second := BuildCatalog(builtins, pages, "url")
	assert.Equal(t, first, second)
}

func TestPredicateIRICatalogWins(t *testing.T) {
	cfg := testConfig(t)
	catalog := PropertyCatalog{"color": "https://schema.org/color"}

	assert.Equal(t, "https://schema.org/color", PredicateIRI("color", catalog, cfg))
}

func TestPredicateIRIFallbackGenerates(t *testing.T) {
	cfg := testConfig(t)

	assert.Equal(t, "https://x/#/page/legs", PredicateIRI("legs", PropertyCatalog{}, cfg))
}

func TestPredicateIRICatalogWinsEvenWhenCoinciding(t *testing.T) {
	// A catalog entry that happens to equal the generated fallback must still
	// come from the catalog, never the generator.
	cfg := testConfig(t)
	catalog := PropertyCatalog{"legs": "https://x/#/page/legs"}

	assert.Equal(t, "https://x/#/page/legs", PredicateIRI("legs", catalog, cfg))
}
