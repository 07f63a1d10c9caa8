// Package vocabulary provides IRI construction and the built-in property
// vocabulary for the export pipeline.
//
// # IRI Construction
//
// PageIRI is the single source of truth for page URIs: every subject, every
// predicate fallback, and every page-reference object goes through it. The
// result is always base-url + percent-encoded(page-name), so decoding the
// suffix recovers the original page name.
//
// # Built-in Overrides
//
// A small fixed set of property keys map to standard W3C vocabulary IRIs
// instead of generated page URIs: the canonical-name key maps to rdfs:label
// and the alias key maps to owl:sameAs. Property pages discovered in the
// graph are layered on top of these built-ins by the catalog builder; a
// graph-defined property page with a coinciding key overrides the built-in,
// which is accepted as defined behavior.
package vocabulary
