package hamiltonian

import (
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/mat"

	"github.com/gharib85/qibo/internal/quantum"
)

// imagTolerance bounds the imaginary residue accepted when taking the
// expectation value of a Hermitian observable. Anything larger means the
// observable or the state is broken, not floating-point noise.
const imagTolerance = 1e-9

// Observable is a real symmetric operator over a qubit register. All
// operators used here (Pauli-Z sums, the encoder penalty, the transverse
// field Ising model) are real in the computational basis.
type Observable struct {
	matrix *mat.SymDense
	qubits int
}

// NewObservable wraps a real symmetric matrix as an observable. The
// dimension must be a power of two.
func NewObservable(m *mat.SymDense) (*Observable, error) {
	dim := m.SymmetricDim()
	if dim == 0 || bits.OnesCount(uint(dim)) != 1 {
		return nil, fmt.Errorf("observable dimension %d is not a power of two", dim)
	}
	return &Observable{matrix: m, qubits: bits.TrailingZeros(uint(dim))}, nil
}

// Qubits returns the register size the observable acts on.
func (o *Observable) Qubits() int {
	return o.qubits
}

// Dim returns the matrix dimension 2^n.
func (o *Observable) Dim() int {
	return o.matrix.SymmetricDim()
}

// At returns the matrix element (i, j).
func (o *Observable) At(i, j int) float64 {
	return o.matrix.At(i, j)
}

// Scaled returns a new observable equal to c times this one.
func (o *Observable) Scaled(c float64) *Observable {
	dim := o.Dim()
	m := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			m.SetSym(i, j, c*o.matrix.At(i, j))
		}
	}
	return &Observable{matrix: m, qubits: o.qubits}
}

// Expectation computes <psi|H|psi> for a normalized state. The result of a
// Hermitian observable is real up to rounding; an imaginary residue beyond
// tolerance is reported as an error rather than silently discarded.
func (o *Observable) Expectation(s *quantum.State) (float64, error) {
	dim := o.Dim()
	if len(s.Amplitudes) != dim {
		return 0, fmt.Errorf("state dimension %d does not match observable dimension %d", len(s.Amplitudes), dim)
	}

	var re, im float64
	for i := 0; i < dim; i++ {
		var wRe, wIm float64
		for j := 0; j < dim; j++ {
			h := o.matrix.At(i, j)
			if h == 0 {
				continue
			}
			wRe += h * real(s.Amplitudes[j])
			wIm += h * imag(s.Amplitudes[j])
		}
		ai := s.Amplitudes[i]
		re += real(ai)*wRe + imag(ai)*wIm
		im += real(ai)*wIm - imag(ai)*wRe
	}

	if math.Abs(im) > imagTolerance {
		return 0, fmt.Errorf("expectation value has imaginary residue %g beyond tolerance %g", im, imagTolerance)
	}
	return re, nil
}

// GroundState eigendecomposes the observable and returns the unit
// eigenvector of the smallest eigenvalue together with that eigenvalue.
func GroundState(o *Observable) (*quantum.State, float64, error) {
	var eigen mat.EigenSym
	if ok := eigen.Factorize(o.matrix, true); !ok {
		return nil, 0, fmt.Errorf("eigendecomposition failed for %d-qubit observable", o.qubits)
	}

	values := eigen.Values(nil)
	var vectors mat.Dense
	eigen.VectorsTo(&vectors)

	// Eigenvalues come back in ascending order; column 0 is the ground state.
	dim := o.Dim()
	ground := make([]float64, dim)
	mat.Col(ground, 0, &vectors)

	state, err := quantum.StateFromReal(ground)
	if err != nil {
		return nil, 0, fmt.Errorf("ground state is not a valid amplitude vector: %w", err)
	}
	return state, values[0], nil
}
