package export

import (
	"context"
	"strings"

	"github.com/c360/graphexport/config"
	"github.com/c360/graphexport/errors"
	"github.com/c360/graphexport/graphstore"
	"github.com/c360/graphexport/page"
)

// Selector retrieves one group of raw page records from the graph store.
// The four concrete selectors are independent; each carries its own query
// from configuration.
type Selector interface {
	Name() string
	Select(ctx context.Context, store graphstore.Client, cfg *config.Config) ([]map[string]any, error)
}

// querySelector runs a single configured query verbatim.
type querySelector struct {
	name  string
	query func(*config.Config) string
}

func (s *querySelector) Name() string { return s.name }

func (s *querySelector) Select(ctx context.Context, store graphstore.Client, cfg *config.Config) ([]map[string]any, error) {
	records, err := store.Query(ctx, s.query(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "export", "Select", s.name+" query")
	}
	return records, nil
}

// ClassSelector selects pages explicitly marked as classes.
func ClassSelector() Selector {
	return &querySelector{
		name:  "classes",
		query: func(cfg *config.Config) string { return cfg.Queries.Classes },
	}
}

// PropertySelector selects pages explicitly marked as properties. Its output
// also feeds the property catalog, so the orchestrator runs it first.
func PropertySelector() Selector {
	return &querySelector{
		name:  "properties",
		query: func(cfg *config.Config) string { return cfg.Queries.Properties },
	}
}

// InstanceSelector selects pages whose type attribute names a page that is
// itself tagged as a class. The two-hop derivation lives entirely in the
// configured query.
func InstanceSelector() Selector {
	return &querySelector{
		name:  "instances",
		query: func(cfg *config.Config) string { return cfg.Queries.Instances },
	}
}

// additionalSelector matches configured page names against all pages.
// Names are lower-cased on both sides; this is the only selector that
// case-normalizes.
type additionalSelector struct{}

// AdditionalSelector selects the configured additional pages by exact
// (case-normalized) name match.
func AdditionalSelector() Selector { return &additionalSelector{} }

func (s *additionalSelector) Name() string { return "additional" }

func (s *additionalSelector) Select(ctx context.Context, store graphstore.Client, cfg *config.Config) ([]map[string]any, error) {
	wanted := cfg.AdditionalPageSet()
	if len(wanted) == 0 {
		return nil, nil
	}

	records, err := store.Query(ctx, cfg.Queries.AllPages)
	if err != nil {
		return nil, errors.Wrap(err, "export", "Select", "all-pages query")
	}

	var matched []map[string]any
	for _, raw := range records {
		name := page.Normalize(raw).Name()
		if wanted[strings.ToLower(name)] {
			matched = append(matched, raw)
		}
	}
	return matched, nil
}
