package export

import (
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/c360/graphexport/page"
	"github.com/c360/graphexport/triplify"
)

// typeTerm classifies one triple component as a reference or literal term.
//
// The heuristic is purely prefix-based: a string equal to or starting with
// "http" becomes an IRI term holding that exact string; everything else
// becomes a plain literal of its display form. This is intentionally coarse:
// a literal that happens to start with "http" is misclassified as a
// reference, and an IRI with a different scheme is misclassified as a
// literal. The heuristic is kept for compatibility and isolated here so a
// scheme-aware classifier can replace it without touching the triplifier.
func typeTerm(v any) rdf.Term {
	s := page.DisplayForm(v)
	if strings.HasPrefix(s, "http") {
		return rdf.IRI{Value: s}
	}
	return rdf.Literal{Lexical: s}
}

// quadOf converts one triple into a typed quad in the default graph.
//
// All three components go through typeTerm independently. The serializer's
// quad type requires an IRI in predicate position, so a predicate the
// heuristic classifies as a literal is still carried under its lexical form.
func quadOf(t triplify.Triple) rdf.Quad {
	var p rdf.IRI
	if iri, ok := typeTerm(t.Predicate).(rdf.IRI); ok {
		p = iri
	} else {
		p = rdf.IRI{Value: t.Predicate}
	}

	return rdf.Quad{
		S: typeTerm(t.Subject),
		P: p,
		O: typeTerm(t.Object),
		G: nil, // default graph
	}
}
