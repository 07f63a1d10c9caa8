// Command graphexport exports a knowledge-base graph as RDF.
//
// Usage:
//
//	graphexport [flags] OUTPUT_FILE
//
// The single positional argument is the output file path. A wrong argument
// count exits with status 2 and a usage message; runtime failures exit with
// status 1. On success the serialized payload is written to the path and the
// path is logged.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/c360/graphexport/config"
	"github.com/c360/graphexport/errors"
	"github.com/c360/graphexport/export"
	"github.com/c360/graphexport/graphstore"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("graphexport", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to YAML config file")
	format := flags.String("format", "", "output format override (turtle, ntriples, nquads, trig, rdfxml, jsonld)")
	baseURL := flags.String("base-url", "", "base URL override for generated page IRIs")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: graphexport [flags] OUTPUT_FILE\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	outPath, err := outputPath(flags.Args())
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		flags.Usage()
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	slog.SetDefault(logger)

	// Best-effort: the graph API token usually lives in .env
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath, *format, *baseURL)
	if err != nil {
		logger.Error("configuration failed", "error", err)
		return exitFailure
	}

	store := graphstore.NewHTTPClient(cfg.API)
	defer store.Close()

	exporter := export.New(store, cfg, export.WithLogger(logger))

	// Serialize to memory first so the output file is all-or-nothing on the
	// happy path.
	var buf bytes.Buffer
	if err := exporter.Serialize(context.Background(), &buf); err != nil {
		logger.Error("export failed", "error", err, "class", errors.Classify(err).String())
		return exitFailure
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		logger.Error("writing output failed", "error", err, "path", outPath)
		return exitFailure
	}

	logger.Info("export written", "path", outPath, "bytes", buf.Len())
	return 0
}

// outputPath validates the positional arguments: exactly one, the output
// file path.
func outputPath(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected exactly 1 argument, got %d", errors.ErrUsage, len(args))
	}
	return args[0], nil
}

// loadConfig loads the YAML config (or defaults when no path is given) and
// applies CLI overrides before validation.
func loadConfig(path, format, baseURL string) (*config.Config, error) {
	var cfg *config.Config
	if path != "" {
		parsed, err := config.ParseFile(path)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	} else {
		cfg = config.DefaultConfig()
	}

	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if format != "" {
		cfg.Format = format
	}
	if token := os.Getenv("GRAPH_API_TOKEN"); token != "" {
		cfg.API.Token = token
	}
	if endpoint := os.Getenv("GRAPH_API_ENDPOINT"); endpoint != "" {
		cfg.API.Endpoint = endpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
