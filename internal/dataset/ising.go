package dataset

import (
	"fmt"

	"github.com/gharib85/qibo/internal/hamiltonian"
)

// Default coupling sweep used by the Ising example: 20 values evenly
// spaced over [0.5, 1.0].
const (
	defaultCouplingMin   = 0.5
	defaultCouplingMax   = 1.0
	defaultCouplingCount = 20
)

// IsingProvider produces ground states of the negated transverse field
// Ising model at each sampled coupling strength. The coupling doubles as
// the per-sample feature value.
type IsingProvider struct {
	Qubits    int
	Couplings []float64
}

// NewIsingProvider creates the default 6-qubit provider with the standard
// coupling sweep.
func NewIsingProvider() *IsingProvider {
	return &IsingProvider{
		Qubits:    6,
		Couplings: linspace(defaultCouplingMin, defaultCouplingMax, defaultCouplingCount),
	}
}

// Load diagonalizes -1 * TFIM(n, h) for every coupling h and returns the
// ground states.
func (p *IsingProvider) Load() ([]Sample, error) {
	if len(p.Couplings) == 0 {
		return nil, fmt.Errorf("no coupling values configured")
	}

	samples := make([]Sample, 0, len(p.Couplings))
	for _, coupling := range p.Couplings {
		tfim, err := hamiltonian.TFIM(p.Qubits, coupling)
		if err != nil {
			return nil, fmt.Errorf("building TFIM at coupling %g: %w", coupling, err)
		}

		ground, _, err := hamiltonian.GroundState(tfim.Scaled(-1))
		if err != nil {
			return nil, fmt.Errorf("diagonalizing at coupling %g: %w", coupling, err)
		}

		samples = append(samples, Sample{State: ground, Feature: coupling})
	}
	return samples, nil
}
