// Package graphstore binds the graph storage/query collaborator: a handle
// that accepts a declarative query and returns pulled page records. The query
// language itself is opaque to this module; queries are carried as strings
// from configuration to the store unmodified.
package graphstore

import (
	"context"
)

// Client is the graph store handle. Query runs one declarative query and
// returns the pulled raw page records (attribute maps, possibly nested).
// A query failure is fatal for the run; no retries are attempted.
type Client interface {
	Query(ctx context.Context, query string) ([]map[string]any, error)
	Close() error
}
