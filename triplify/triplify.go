// Package triplify implements the core entity-to-triple transformation:
// predicate resolution against the property catalog and the per-record
// triplifier.
//
// The central design decision lives here: attribute cardinality determines
// reference-vs-literal candidacy, not an explicit schema. A collection-valued
// attribute always holds page references (one triple per element, each object
// a resolved page IRI); a scalar-valued attribute holds a literal or an
// already-resolved IRI string, kept raw. The final reference/literal
// classification is deferred to term typing in the export package.
package triplify

import (
	"sort"

	"github.com/c360/graphexport/config"
	"github.com/c360/graphexport/page"
	"github.com/c360/graphexport/vocabulary"
)

// Triple is one subject-predicate-object statement. Subject and Predicate
// are IRIs; Object is the untyped value, classified later.
type Triple struct {
	Subject   string
	Predicate string
	Object    any
}

// Triplify produces the triples for one normalized record.
//
// The subject is the record's page IRI, identical for every triple. Every
// attribute is iterated, the canonical-name attribute included, so each named
// page yields a canonical-name triple whose object is the raw name. Attribute
// keys are visited in sorted order for deterministic output text; triples are
// semantically an unordered set.
//
// Collection values emit one triple per element with the element's page IRI
// as object; empty collections emit nothing for that attribute. Scalar values
// emit exactly one triple with the raw scalar as object.
func Triplify(rec page.Record, cfg *config.Config, catalog PropertyCatalog) []Triple {
	subject := vocabulary.PageIRI(cfg.BaseURL, rec.Name())

	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var triples []Triple
	for _, key := range keys {
		predicate := PredicateIRI(key, catalog, cfg)

		if ids, ok := page.Collection(rec[key]); ok {
			for _, id := range ids {
				triples = append(triples, Triple{
					Subject:   subject,
					Predicate: predicate,
					Object:    vocabulary.PageIRI(cfg.BaseURL, id),
				})
			}
			continue
		}

		triples = append(triples, Triple{
			Subject:   subject,
			Predicate: predicate,
			Object:    rec[key],
		})
	}

	return triples
}
