// Package page provides the normalized page record consumed by the
// triplifier. Normalization flattens a raw record's nested property bag and
// guarantees exactly one canonical name attribute.
package page

import (
	"github.com/c360/graphexport/vocabulary"
)

// Record is a flat attribute map for one page. Values are scalars
// (string, number, bool) or collections of page-name identifiers.
// Records are read fresh from the graph store, normalized once, triplified,
// and discarded; they are never cached or revisited.
type Record map[string]any

// Normalize flattens a raw page record into a Record.
//
// The nested property bag (under the reserved "properties" key) is merged
// into the top level. A reserved "title" property inside the bag is removed,
// and the canonical "name" attribute is set to the bag's title if present,
// falling back to the record's existing top-level name. No other fields are
// altered.
//
// Pure transformation; no error conditions. A raw record with neither a bag
// title nor a top-level name yields an empty canonical name, which later
// resolves to a degenerate IRI (the bare base URL).
func Normalize(raw map[string]any) Record {
	rec := make(Record, len(raw))

	name, _ := raw[vocabulary.NameKey].(string)

	for k, v := range raw {
		if k == vocabulary.PropertyBagKey {
			continue
		}
		rec[k] = v
	}

	if bag, ok := raw[vocabulary.PropertyBagKey].(map[string]any); ok {
		for k, v := range bag {
			if k == vocabulary.TitleKey {
				if title, ok := v.(string); ok {
					name = title
				}
				continue
			}
			rec[k] = v
		}
	}

	rec[vocabulary.NameKey] = name
	return rec
}

// Name returns the canonical name attribute. For normalized records this is
// always present; an empty string marks the documented degenerate case.
func (r Record) Name() string {
	name, _ := r[vocabulary.NameKey].(string)
	return name
}

// Collection returns the value under key as a slice of identifier strings,
// with ok reporting whether the value is a collection at all. Non-string
// elements are included in display form by the triplifier's caller, so they
// are stringified here via Identifier.
func Collection(v any) ([]string, bool) {
	switch vals := v.(type) {
	case []string:
		return vals, true
	case []any:
		ids := make([]string, 0, len(vals))
		for _, el := range vals {
			ids = append(ids, Identifier(el))
		}
		return ids, true
	default:
		return nil, false
	}
}

// Identifier returns the identifier form of a collection element.
func Identifier(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return displayForm(v)
}
