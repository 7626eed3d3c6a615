// Package dataset provides the reference input states the autoencoder is
// trained against: transverse field Ising ground states and handwritten
// digit amplitude vectors.
package dataset

import "github.com/gharib85/qibo/internal/quantum"

// Kind selects the dataset family.
type Kind int

const (
	// Ising trains against ground states of the transverse field Ising
	// model at sampled coupling strengths.
	Ising Kind = iota
	// Digits trains against L2-normalized handwritten digit vectors from
	// two classes.
	Digits
)

// String returns the dataset name.
func (k Kind) String() string {
	switch k {
	case Ising:
		return "ising"
	case Digits:
		return "digits"
	default:
		return "unknown"
	}
}

// Sample is one reference input: a normalized state and the scalar
// feature the feature-enhanced ansatz feeds into its rotation angles.
type Sample struct {
	State   *quantum.State
	Feature float64
}

// Provider produces the full reference set for one dataset family.
type Provider interface {
	Load() ([]Sample, error)
}

// linspace returns m evenly spaced values over [start, end] inclusive.
func linspace(start, end float64, m int) []float64 {
	out := make([]float64, m)
	if m == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(m-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
