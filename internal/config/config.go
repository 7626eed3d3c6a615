// Package config provides configuration management functionality.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/gharib85/qibo/internal/ansatz"
	"github.com/gharib85/qibo/internal/dataset"
)

// Config holds application configuration
type Config struct {
	Layers  int
	Variant ansatz.Variant
	Dataset dataset.Kind

	// Seed for the initial parameter draw; 0 derives one from the clock.
	Seed int64
	// TraceOut, when set, is the CSV path the cost trace is exported to.
	TraceOut string
	// DigitsPath, when set, overrides the embedded digit vectors with an
	// external CSV export.
	DigitsPath string

	LogLevel  string
	LogPretty bool
}

// Load parses flags and environment variables. The two mode selectors
// keep the reference tool's integer surface (0/1) and are mapped to typed
// variants here; anything else is a usage error.
func Load(args []string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	fs := flag.NewFlagSet("qae", flag.ContinueOnError)
	layers := fs.Int("layers", 3, "number of ansatz layers")
	autoencoder := fs.Int("autoencoder", 0, "autoencoder mode: 0 = feature-enhanced, 1 = plain")
	example := fs.Int("example", 0, "dataset: 0 = ising ground states, 1 = handwritten digits")
	seed := fs.Int64("seed", 0, "seed for the initial parameter draw (0 = clock-derived)")
	traceOut := fs.String("trace-out", "", "optional CSV path for the cost trace")
	digitsPath := fs.String("digits", "", "optional CSV path overriding the embedded digit vectors")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *layers < 1 {
		return nil, fmt.Errorf("layer count must be at least 1, got %d", *layers)
	}

	var variant ansatz.Variant
	switch *autoencoder {
	case 0:
		variant = ansatz.FeatureEnhanced
	case 1:
		variant = ansatz.Plain
	default:
		return nil, fmt.Errorf("the autoencoder selector must be 0 (feature-enhanced) or 1 (plain), got %d", *autoencoder)
	}

	var kind dataset.Kind
	switch *example {
	case 0:
		kind = dataset.Ising
	case 1:
		kind = dataset.Digits
	default:
		return nil, fmt.Errorf("the example selector must be 0 (ising) or 1 (digits), got %d", *example)
	}

	return &Config{
		Layers:     *layers,
		Variant:    variant,
		Dataset:    kind,
		Seed:       *seed,
		TraceOut:   *traceOut,
		DigitsPath: *digitsPath,
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogPretty:  getEnv("LOG_PRETTY", "true") == "true",
	}, nil
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
