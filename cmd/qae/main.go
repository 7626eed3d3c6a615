package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gharib85/qibo/internal/ansatz"
	"github.com/gharib85/qibo/internal/config"
	"github.com/gharib85/qibo/internal/dataset"
	"github.com/gharib85/qibo/internal/hamiltonian"
	"github.com/gharib85/qibo/internal/training"
	"github.com/gharib85/qibo/pkg/logger"
)

// Fixed problem size of the autoencoder example: six qubits, the last
// two of which are the trash register.
const (
	nqubits   = 6
	ncompress = 2
)

func main() {
	// Initialize logger
	log := logger.New(logger.Config{
		Level:  "info",
		Pretty: true,
	})

	// Load configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	}).With().Str("run_id", uuid.NewString()).Logger()

	log.Info().
		Str("ansatz", cfg.Variant.String()).
		Str("dataset", cfg.Dataset.String()).
		Int("layers", cfg.Layers).
		Msg("Starting quantum autoencoder training")

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Training run failed")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	encoder, err := hamiltonian.Encoder(nqubits, ncompress)
	if err != nil {
		return fmt.Errorf("building encoder observable: %w", err)
	}

	var provider dataset.Provider
	switch cfg.Dataset {
	case dataset.Ising:
		provider = dataset.NewIsingProvider()
	case dataset.Digits:
		provider = &dataset.DigitsProvider{Path: cfg.DigitsPath}
	default:
		return fmt.Errorf("unknown dataset kind %v", cfg.Dataset)
	}

	samples, err := provider.Load()
	if err != nil {
		return fmt.Errorf("loading %s dataset: %w", cfg.Dataset, err)
	}
	log.Info().Int("samples", len(samples)).Msg("Dataset ready")

	template, err := ansatz.NewSixQubit(cfg.Layers, cfg.Variant)
	if err != nil {
		return fmt.Errorf("building ansatz template: %w", err)
	}

	trainer := &training.Trainer{
		Ansatz:  template,
		Encoder: encoder,
		Samples: samples,
		Seed:    cfg.Seed,
		Log:     log,
	}

	result, err := trainer.Train()
	if err != nil {
		return err
	}

	fmt.Printf("Final parameters: %v\n", result.Params)
	fmt.Printf("Final cost function: %v\n", result.Cost)

	if cfg.TraceOut != "" {
		if err := exportTrace(cfg.TraceOut, result.Trace); err != nil {
			return err
		}
		log.Info().Str("path", cfg.TraceOut).Int("evaluations", len(result.Trace)).Msg("Cost trace exported")
	}
	return nil
}

func exportTrace(path string, trace []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer f.Close()

	if err := training.WriteTrace(f, trace); err != nil {
		return fmt.Errorf("exporting cost trace: %w", err)
	}
	return nil
}
