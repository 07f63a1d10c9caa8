// Package config provides the immutable run configuration for the export
// pipeline: base URL, output format, prefix table, override attribute, the
// additional-page set, the selection queries, and the graph API connection.
//
// A Config is constructed once at startup (LoadFile or DefaultConfig followed
// by Validate) and never mutated afterward.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360/graphexport/errors"
	"github.com/c360/graphexport/vocabulary"
)

// Supported output format identifiers, matching the serialization library.
var supportedFormats = map[string]bool{
	"turtle":   true,
	"ntriples": true,
	"nquads":   true,
	"trig":     true,
	"rdfxml":   true,
	"jsonld":   true,
}

// Queries holds the declarative selection queries run against the graph.
// The query language is an opaque collaborator contract; these strings are
// passed through to the graph store unmodified.
type Queries struct {
	// Classes selects pages explicitly marked as classes.
	Classes string `yaml:"classes" json:"classes"`

	// Properties selects pages explicitly marked as properties. Its results
	// also feed the property catalog, so it runs before all other selectors.
	Properties string `yaml:"properties" json:"properties"`

	// Instances selects pages whose type attribute names a page that is
	// itself tagged as a class (the two-hop derivation).
	Instances string `yaml:"instances" json:"instances"`

	// AllPages selects every page; the additional-pages selector filters
	// its results by name.
	AllPages string `yaml:"all_pages" json:"all_pages"`
}

// APIConfig holds the graph store connection settings.
type APIConfig struct {
	// Endpoint is the HTTP API URL of the knowledge base.
	Endpoint string `yaml:"endpoint" json:"endpoint"`

	// Token is the bearer token for the API. Usually supplied via the
	// GRAPH_API_TOKEN environment variable rather than the config file.
	Token string `yaml:"token" json:"token"`

	// Timeout bounds each query request.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// RequestsPerSecond rate-limits query calls. Zero means unlimited.
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
}

// Config is the complete run configuration. All fields except BaseURL have
// defaults applied by Validate.
type Config struct {
	// BaseURL is the required prefix for all generated page IRIs.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// Format is the output serialization format identifier.
	Format string `yaml:"format" json:"format"`

	// Prefixes maps short names to namespace IRIs; used only to compact
	// the output text.
	Prefixes map[string]string `yaml:"prefixes" json:"prefixes"`

	// OverrideAttribute is the property-page attribute holding an explicit
	// override IRI.
	OverrideAttribute string `yaml:"override_attribute" json:"override_attribute"`

	// AdditionalPages are page names always included in the export,
	// matched case-insensitively.
	AdditionalPages []string `yaml:"additional_pages" json:"additional_pages,omitempty"`

	// Queries are the selection queries.
	Queries Queries `yaml:"queries" json:"queries"`

	// API is the graph store connection.
	API APIConfig `yaml:"api" json:"api"`
}

// DefaultConfig returns a Config with every defaulted field populated.
// BaseURL is left empty and must be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		Format: "turtle",
		Prefixes: map[string]string{
			"rdf":    vocabulary.RdfNamespace,
			"rdfs":   vocabulary.RdfsNamespace,
			"owl":    vocabulary.OwlNamespace,
			"schema": vocabulary.SchemaNamespace,
		},
		OverrideAttribute: vocabulary.DefaultOverrideAttribute,
		Queries:           defaultQueries(),
		API: APIConfig{
			Endpoint:          "http://127.0.0.1:12315/api",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 10,
		},
	}
}

func defaultQueries() Queries {
	return Queries{
		Classes: `[:find (pull ?p [*])
 :where [?p :page/properties ?props]
        [(get ?props :type) ?t] [(= ?t "Class")]]`,
		Properties: `[:find (pull ?p [*])
 :where [?p :page/properties ?props]
        [(get ?props :type) ?t] [(= ?t "Property")]]`,
		Instances: `[:find (pull ?i [*])
 :where [?c :page/properties ?cp]
        [(get ?cp :type) ?ct] [(= ?ct "Class")]
        [?c :page/name ?cn]
        [?i :page/properties ?ip]
        [(get ?ip :type) ?it] [(= ?it ?cn)]]`,
		AllPages: `[:find (pull ?p [*]) :where [?p :page/name _]]`,
	}
}

// LoadFile reads and parses a YAML config file, layering it over defaults.
// The result is validated.
func LoadFile(path string) (*Config, error) {
	cfg, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseFile reads and parses a YAML config file over defaults without
// validating, so callers can apply overrides before Validate.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config", "ParseFile", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithClass(err, errors.ErrorInvalid, "config", "ParseFile", "parsing yaml")
	}
	return cfg, nil
}

// Load parses YAML config bytes, layering them over defaults, and validates
// the result.
func Load(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithClass(err, errors.ErrorInvalid, "config", "Load", "parsing yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields, applies defaults for absent ones, and
// cross-checks the result against the embedded config schema.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("%w: base_url is required", errors.ErrMissingConfig)
	}

	c.applyDefaults()

	if !supportedFormats[c.Format] {
		return fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, c.Format)
	}

	for short, ns := range c.Prefixes {
		if ns == "" {
			return fmt.Errorf("%w: prefix %q has empty namespace", errors.ErrInvalidConfig, short)
		}
	}

	if c.API.Timeout < 0 {
		return fmt.Errorf("%w: api.timeout must not be negative", errors.ErrInvalidConfig)
	}
	if c.API.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: api.requests_per_second must not be negative", errors.ErrInvalidConfig)
	}

	return c.validateSchema()
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Prefixes == nil {
		c.Prefixes = def.Prefixes
	}
	if c.OverrideAttribute == "" {
		c.OverrideAttribute = def.OverrideAttribute
	}
	if c.Queries.Classes == "" {
		c.Queries.Classes = def.Queries.Classes
	}
	if c.Queries.Properties == "" {
		c.Queries.Properties = def.Queries.Properties
	}
	if c.Queries.Instances == "" {
		c.Queries.Instances = def.Queries.Instances
	}
	if c.Queries.AllPages == "" {
		c.Queries.AllPages = def.Queries.AllPages
	}
	if c.API.Endpoint == "" {
		c.API.Endpoint = def.API.Endpoint
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = def.API.Timeout
	}
	if c.API.RequestsPerSecond == 0 {
		c.API.RequestsPerSecond = def.API.RequestsPerSecond
	}
}

// AdditionalPageSet returns the additional page names lower-cased into a set.
// Lower-casing applies only to the additional-pages selector; the other
// selectors match whatever their queries return.
func (c *Config) AdditionalPageSet() map[string]bool {
	set := make(map[string]bool, len(c.AdditionalPages))
	for _, name := range c.AdditionalPages {
		set[strings.ToLower(name)] = true
	}
	return set
}
