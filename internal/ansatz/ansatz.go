// Package ansatz builds the layered variational circuits used by the
// quantum autoencoder: alternating single-qubit RY sweeps and fixed CZ
// entangling layers, closed by a rotation sweep over the trash qubits.
package ansatz

import (
	"fmt"

	"github.com/gharib85/qibo/internal/quantum"
)

// Variant selects how rotation angles consume parameters.
type Variant int

const (
	// Plain consumes one parameter per rotation; the input feature is
	// ignored.
	Plain Variant = iota
	// FeatureEnhanced consumes two parameters per rotation and sets the
	// angle to theta[i]*x + theta[i+1] for input feature x.
	FeatureEnhanced
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Plain:
		return "plain"
	case FeatureEnhanced:
		return "feature-enhanced"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Ansatz is a fixed-topology circuit template. Building it with a
// parameter vector (and, for the feature-enhanced variant, a scalar
// feature) yields a runnable circuit.
type Ansatz struct {
	Qubits  int
	Trash   int
	Layers  int
	Variant Variant

	// Ordered CZ pairs applied after the first and second rotation sweep
	// of every layer.
	EntanglerA [][2]int
	EntanglerB [][2]int
}

// NewSixQubit creates the 6-qubit, 2-trash-qubit autoencoder template
// with the standard entangler wiring.
func NewSixQubit(layers int, variant Variant) (*Ansatz, error) {
	if layers < 1 {
		return nil, fmt.Errorf("layer count must be at least 1, got %d", layers)
	}
	if variant != Plain && variant != FeatureEnhanced {
		return nil, fmt.Errorf("unknown ansatz variant %d", int(variant))
	}
	return &Ansatz{
		Qubits:     6,
		Trash:      2,
		Layers:     layers,
		Variant:    variant,
		EntanglerA: SixQubitEntanglerA,
		EntanglerB: SixQubitEntanglerB,
	}, nil
}

// ParamCount returns the exact parameter vector length the template
// consumes: 2*n*L + k rotations' worth for the plain variant, doubled for
// the feature-enhanced one.
func (a *Ansatz) ParamCount() int {
	rotations := 2*a.Qubits*a.Layers + a.Trash
	if a.Variant == FeatureEnhanced {
		return 2 * rotations
	}
	return rotations
}

// Build emits the circuit for a parameter vector. Parameters are consumed
// strictly sequentially and must be exhausted exactly; a length mismatch
// is an error. The feature argument is ignored by the plain variant.
// Identical inputs produce bit-identical circuits.
func (a *Ansatz) Build(theta []float64, feature float64) (*quantum.Circuit, error) {
	if len(theta) != a.ParamCount() {
		return nil, fmt.Errorf("ansatz %s with %d layers needs %d parameters, got %d",
			a.Variant, a.Layers, a.ParamCount(), len(theta))
	}

	circuit := quantum.NewCircuit(a.Qubits)
	index := 0

	angle := func() float64 {
		if a.Variant == FeatureEnhanced {
			v := theta[index]*feature + theta[index+1]
			index += 2
			return v
		}
		v := theta[index]
		index++
		return v
	}

	for l := 0; l < a.Layers; l++ {
		for q := 0; q < a.Qubits; q++ {
			circuit.AddRY(q, angle())
		}
		for _, pair := range a.EntanglerA {
			circuit.AddCZ(pair[0], pair[1])
		}
		for q := 0; q < a.Qubits; q++ {
			circuit.AddRY(q, angle())
		}
		for _, pair := range a.EntanglerB {
			circuit.AddCZ(pair[0], pair[1])
		}
	}
	for q := a.Qubits - a.Trash; q < a.Qubits; q++ {
		circuit.AddRY(q, angle())
	}

	if index != len(theta) {
		return nil, fmt.Errorf("ansatz consumed %d of %d parameters", index, len(theta))
	}
	return circuit, nil
}
