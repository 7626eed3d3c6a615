package training

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/gharib85/qibo/internal/ansatz"
	"github.com/gharib85/qibo/internal/dataset"
	"github.com/gharib85/qibo/internal/hamiltonian"
)

// defaultMaxIterations caps the BFGS run, mirroring the reference
// experiment's 5e4 iteration budget.
const defaultMaxIterations = 50000

// Trainer minimizes the autoencoder cost with BFGS from a random
// starting point.
type Trainer struct {
	Ansatz  *ansatz.Ansatz
	Encoder *hamiltonian.Observable
	Samples []dataset.Sample

	// Seed for the initial parameter draw; 0 derives one from the clock.
	Seed int64
	// MaxIterations overrides the default 50000 iteration cap when > 0.
	MaxIterations int

	Log zerolog.Logger
}

// Result holds the outcome of one training run.
type Result struct {
	Params      []float64
	Cost        float64
	Evaluations int
	Trace       []float64
	Status      optimize.Status
}

// acceptableStatuses are the optimizer terminations treated as a
// completed run. Hitting the iteration cap is expected with a 5e4 budget.
var acceptableStatuses = map[optimize.Status]bool{
	optimize.Success:             true,
	optimize.GradientThreshold:   true,
	optimize.FunctionConvergence: true,
	optimize.IterationLimit:      true,
}

// Train draws an initial parameter vector uniformly from [0, 2*pi), runs
// the minimizer and returns the optimized parameters with the final cost.
func (t *Trainer) Train() (*Result, error) {
	if len(t.Samples) == 0 {
		return nil, fmt.Errorf("no training samples")
	}

	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	nparams := t.Ansatz.ParamCount()
	initial := make([]float64, nparams)
	for i := range initial {
		initial[i] = rng.Float64() * 2 * math.Pi
	}

	maxIterations := t.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}

	t.Log.Info().
		Str("ansatz", t.Ansatz.Variant.String()).
		Int("layers", t.Ansatz.Layers).
		Int("parameters", nparams).
		Int("samples", len(t.Samples)).
		Int64("seed", seed).
		Msg("starting optimization")

	evaluator := NewEvaluator(t.Ansatz, t.Encoder, t.Samples, t.Log)

	// optimize.Problem cannot carry errors out of the objective; remember
	// the first one and surface it after Minimize returns.
	var evalErr error
	objective := func(x []float64) float64 {
		cost, err := evaluator.Evaluate(x)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return math.Inf(1)
		}
		return cost
	}

	problem := optimize.Problem{
		Func: objective,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, objective, x, nil)
		},
	}

	settings := &optimize.Settings{MajorIterations: maxIterations}
	result, err := optimize.Minimize(problem, initial, settings, &optimize.BFGS{})
	if evalErr != nil {
		return nil, fmt.Errorf("cost evaluation failed: %w", evalErr)
	}
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}
	if !acceptableStatuses[result.Status] {
		return nil, fmt.Errorf("optimization terminated with status %v", result.Status)
	}

	t.Log.Info().
		Float64("cost", result.F).
		Int("evaluations", evaluator.Evaluations()).
		Str("status", result.Status.String()).
		Msg("optimization finished")

	return &Result{
		Params:      result.X,
		Cost:        result.F,
		Evaluations: evaluator.Evaluations(),
		Trace:       evaluator.Trace(),
		Status:      result.Status,
	}, nil
}
