package vocabulary

import (
	"net/url"
	"strings"
)

// Reserved attribute keys used by the normalizer and catalog builder.
const (
	// NameKey is the canonical-name attribute every normalized record carries.
	NameKey = "name"

	// TitleKey is the reserved in-bag title property removed during
	// normalization; its value becomes the canonical name.
	TitleKey = "title"

	// PropertyBagKey is the nested property bag on raw page records.
	PropertyBagKey = "properties"

	// AliasKey is the alias property mapped to owl:sameAs by default.
	AliasKey = "alias"

	// TypeKey is the property naming a page's class.
	TypeKey = "type"

	// DefaultOverrideAttribute is the attribute on a property page that
	// holds its explicit override IRI.
	DefaultOverrideAttribute = "url"
)

// PageIRI returns the IRI for a page name: baseURL + percent-encoded(name).
//
// This is the single source of truth for URI construction. Deterministic,
// pure, and total for any name, including the empty string (which yields the
// bare base URL, the documented degenerate case for records that normalize
// to an empty canonical name).
//
// Example:
//
//	PageIRI("https://x/#/page/", "My Page")  // "https://x/#/page/My%20Page"
func PageIRI(baseURL, name string) string {
	return baseURL + EncodeComponent(name)
}

// EncodeComponent percent-encodes a string as a URI component. All characters
// unsafe in a path or query segment are escaped; spaces become %20, not "+".
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// DecodeComponent reverses EncodeComponent.
func DecodeComponent(s string) (string, error) {
	return url.QueryUnescape(s)
}

// BuiltinOverrides returns the fixed built-in property override set.
// The catalog builder inserts these before any graph-discovered property
// pages, so discovered entries with a coinciding key win (last-write-wins).
func BuiltinOverrides() map[string]string {
	return map[string]string{
		NameKey:  RdfsLabel,
		AliasKey: OwlSameAs,
	}
}
