package triplify

import (
	"strings"

	"github.com/c360/graphexport/config"
	"github.com/c360/graphexport/page"
	"github.com/c360/graphexport/vocabulary"
)

// PropertyCatalog maps a property key to its explicit override IRI.
// Built exactly once per run, before any Triplify call, and threaded as a
// read-only parameter through every predicate resolution.
type PropertyCatalog map[string]string

// BuildCatalog aggregates built-in overrides with discovered property pages.
//
// Built-ins are inserted first. Each property-page record then contributes an
// entry keyed by its canonical name (lower-cased to the built-in key
// representation), mapping to the record's value under the configured
// override attribute. Later entries overwrite earlier ones, so a
// graph-defined property page can shadow a built-in; that is defined
// behavior, not an error. Records without a usable override value
// contribute nothing.
//
// Idempotent: identical inputs always yield an identical catalog.
func BuildCatalog(builtins map[string]string, propertyPages []page.Record, overrideAttr string) PropertyCatalog {
	catalog := make(PropertyCatalog, len(builtins)+len(propertyPages))

	for key, iri := range builtins {
		catalog[key] = iri
	}

	for _, rec := range propertyPages {
		key := strings.ToLower(rec.Name())
		if key == "" {
			continue
		}
		override, ok := rec[overrideAttr].(string)
		if !ok || override == "" {
			continue
		}
		catalog[key] = override
	}

	return catalog
}

// PredicateIRI resolves a property key to a predicate IRI. A catalog hit
// always wins; the fallback is the generated page IRI for the key itself,
// so every predicate has an IRI even for properties no page describes.
func PredicateIRI(key string, catalog PropertyCatalog, cfg *config.Config) string {
	if iri, ok := catalog[key]; ok {
		return iri
	}
	return vocabulary.PageIRI(cfg.BaseURL, key)
}
