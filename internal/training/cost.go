// Package training evaluates the autoencoder cost and drives the
// classical minimizer over it.
package training

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/gharib85/qibo/internal/ansatz"
	"github.com/gharib85/qibo/internal/dataset"
	"github.com/gharib85/qibo/internal/hamiltonian"
)

// progressInterval is how many cost evaluations pass between progress
// reports.
const progressInterval = 50

// Evaluator computes the average encoder expectation over the reference
// set for one parameter vector. The evaluation counter and cost trace are
// explicit fields owned by the evaluator, not ambient state.
type Evaluator struct {
	ansatz  *ansatz.Ansatz
	encoder *hamiltonian.Observable
	samples []dataset.Sample
	log     zerolog.Logger

	out           io.Writer
	progressEvery int

	evaluations int
	trace       []float64
}

// NewEvaluator creates an evaluator over the given template, observable
// and reference set. Progress lines go to stdout every 50 evaluations.
func NewEvaluator(a *ansatz.Ansatz, encoder *hamiltonian.Observable, samples []dataset.Sample, log zerolog.Logger) *Evaluator {
	return &Evaluator{
		ansatz:        a,
		encoder:       encoder,
		samples:       samples,
		log:           log,
		out:           os.Stdout,
		progressEvery: progressInterval,
	}
}

// Evaluate runs the ansatz on every reference state and returns the
// average encoder expectation, a value in [0, trash] for normalized
// inputs. The cost is appended to the trace and the counter advanced.
func (e *Evaluator) Evaluate(theta []float64) (float64, error) {
	if len(e.samples) == 0 {
		return 0, fmt.Errorf("no reference samples to evaluate against")
	}

	var total float64
	for i, sample := range e.samples {
		circuit, err := e.ansatz.Build(theta, sample.Feature)
		if err != nil {
			return 0, fmt.Errorf("building circuit for sample %d: %w", i, err)
		}

		final, err := circuit.Execute(sample.State)
		if err != nil {
			return 0, fmt.Errorf("executing circuit on sample %d: %w", i, err)
		}

		expectation, err := e.encoder.Expectation(final)
		if err != nil {
			return 0, fmt.Errorf("scoring sample %d: %w", i, err)
		}
		total += expectation
	}

	cost := total / float64(len(e.samples))
	e.trace = append(e.trace, cost)

	if e.evaluations%e.progressEvery == 0 {
		fmt.Fprintf(e.out, "%d %v\n", e.evaluations, cost)
		e.log.Info().
			Int("evaluation", e.evaluations).
			Float64("cost", cost).
			Msg("cost evaluated")
	}
	e.evaluations++

	return cost, nil
}

// Evaluations returns how many times Evaluate has run.
func (e *Evaluator) Evaluations() int {
	return e.evaluations
}

// Trace returns the append-only sequence of cost values, one per
// evaluation.
func (e *Evaluator) Trace() []float64 {
	return e.trace
}
