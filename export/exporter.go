// Package export composes the selectors, the property catalog, the
// triplifier, and term typing into the single-pass export run, and drives the
// RDF serialization collaborator.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/google/uuid"

	"github.com/c360/graphexport/config"
	"github.com/c360/graphexport/errors"
	"github.com/c360/graphexport/graphstore"
	"github.com/c360/graphexport/metric"
	"github.com/c360/graphexport/page"
	"github.com/c360/graphexport/triplify"
	"github.com/c360/graphexport/vocabulary"
)

// Exporter orchestrates one export run. Construct with New; Run and
// Serialize are single-pass and synchronous; a failing query aborts the run.
type Exporter struct {
	store   graphstore.Client
	cfg     *config.Config
	metrics *metric.Registry
	logger  *slog.Logger
	runID   string
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) { e.logger = logger }
}

// WithMetrics sets the metrics registry. Defaults to a fresh registry.
func WithMetrics(m *metric.Registry) Option {
	return func(e *Exporter) { e.metrics = m }
}

// New creates an Exporter for the given store and validated config.
func New(store graphstore.Client, cfg *config.Config, opts ...Option) *Exporter {
	e := &Exporter{
		store: store,
		cfg:   cfg,
		runID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.metrics == nil {
		e.metrics = metric.NewRegistry()
	}
	e.logger = e.logger.With("run_id", e.runID)
	return e
}

// Metrics returns the run's metrics registry.
func (e *Exporter) Metrics() *metric.Registry { return e.metrics }

// Run executes the export and returns the typed quads in emission order.
//
// Order of operations: the property selector runs first and its normalized
// records feed the catalog, built exactly once before any triplification.
// The remaining selectors then run, and all four groups are triplified in a
// fixed order (additional, classes, properties, instances) for deterministic
// output.
func (e *Exporter) Run(ctx context.Context) ([]rdf.Quad, error) {
	propertyRecords, err := e.selectAndNormalize(ctx, PropertySelector())
	if err != nil {
		return nil, err
	}

	catalog := triplify.BuildCatalog(vocabulary.BuiltinOverrides(), propertyRecords, e.cfg.OverrideAttribute)
	e.logger.Debug("property catalog built",
		"entries", len(catalog), "property_pages", len(propertyRecords))

	additional, err := e.selectAndNormalize(ctx, AdditionalSelector())
	if err != nil {
		return nil, err
	}
	classes, err := e.selectAndNormalize(ctx, ClassSelector())
	if err != nil {
		return nil, err
	}
	instances, err := e.selectAndNormalize(ctx, InstanceSelector())
	if err != nil {
		return nil, err
	}

	groups := []struct {
		name    string
		records []page.Record
	}{
		{"additional", additional},
		{"classes", classes},
		{"properties", propertyRecords},
		{"instances", instances},
	}

	var quads []rdf.Quad
	for _, group := range groups {
		count := 0
		for _, rec := range group.records {
			for _, t := range triplify.Triplify(rec, e.cfg, catalog) {
				quads = append(quads, quadOf(t))
				count++
			}
		}
		e.metrics.Metrics.TriplesEmitted.WithLabelValues(group.name).Add(float64(count))
		e.logger.Info("group triplified",
			"selector", group.name, "pages", len(group.records), "triples", count)
	}

	e.metrics.Metrics.QuadsWritten.Add(float64(len(quads)))
	return quads, nil
}

// Serialize runs the export and writes the serialized payload to w using the
// configured format and prefix table.
func (e *Exporter) Serialize(ctx context.Context, w io.Writer) error {
	quads, err := e.Run(ctx)
	if err != nil {
		return err
	}

	format, err := rdf.ResolveAnyFormat(e.cfg.Format)
	if err != nil {
		e.metrics.Metrics.ErrorsTotal.WithLabelValues("export").Inc()
		return fmt.Errorf("%w: %v", errors.ErrUnsupportedFormat, err)
	}

	opts := rdf.AnyFormatOptions{
		Turtle: &rdf.TurtleEncodeOptions{Prefixes: e.cfg.Prefixes},
		TriG:   &rdf.TriGEncodeOptions{Prefixes: e.cfg.Prefixes},
	}

	if err := rdf.SerializeAnyWithFormat(ctx, w, format, quads, opts); err != nil {
		e.metrics.Metrics.ErrorsTotal.WithLabelValues("export").Inc()
		return fmt.Errorf("%w: %v", errors.ErrSerializationFailed, err)
	}

	e.logger.Info("export serialized", "format", e.cfg.Format, "quads", len(quads))
	return nil
}

// selectAndNormalize runs one selector and normalizes its records.
func (e *Exporter) selectAndNormalize(ctx context.Context, sel Selector) ([]page.Record, error) {
	start := time.Now()
	raw, err := sel.Select(ctx, e.store, e.cfg)
	e.metrics.Metrics.QueryDuration.WithLabelValues(sel.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		e.metrics.Metrics.ErrorsTotal.WithLabelValues("graphstore").Inc()
		return nil, err
	}

	records := make([]page.Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, page.Normalize(r))
	}
	e.metrics.Metrics.PagesSelected.WithLabelValues(sel.Name()).Add(float64(len(records)))
	return records, nil
}
