// Package graphexport exports a graph-structured knowledge base (pages with
// typed properties, some referencing other pages) as RDF, so the graph's
// classes, properties, and class instances become machine-readable linked
// data.
//
// # Pipeline
//
// Data flows strictly one way:
//
//	queries → raw records → normalized records → triples → typed quads → serialized text
//
// The graphstore package binds the query collaborator; page normalizes raw
// records; triplify builds the property catalog and turns each record into
// triples; export selects the four page groups, types each triple component
// as a reference or literal term, and drives the RDF serialization
// collaborator (github.com/geoknoesis/rdf-go).
//
// # Design decisions
//
// Attribute cardinality determines reference-vs-literal candidacy: any
// multi-valued attribute is assumed to hold page references, any
// single-valued attribute a literal or pre-resolved IRI string. The final
// classification is a prefix heuristic on "http", isolated in one typing
// function.
//
// The property catalog is an explicit value built once per run and threaded
// as a parameter; there is no ambient catalog state. The run is
// single-threaded and single-pass: any failure is terminal, nothing is
// retried.
package graphexport
