package quantum

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

// normTolerance is the maximum deviation from unit norm accepted for an
// amplitude vector used as a circuit input.
const normTolerance = 1e-9

// State is a pure quantum state over a qubit register, stored as a dense
// amplitude vector of length 2^n. Qubit 0 maps to the most significant bit
// of the state index, so the last qubits occupy the least significant bits.
type State struct {
	Amplitudes []complex128
	Qubits     int
}

// NewZeroState creates the |0...0> state on n qubits.
func NewZeroState(n int) *State {
	if n <= 0 {
		panic(fmt.Sprintf("quantum: invalid qubit count %d", n))
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &State{Amplitudes: amps, Qubits: n}
}

// StateFromAmplitudes wraps an amplitude vector as a state. The length must
// be a power of two and the vector must be normalized.
func StateFromAmplitudes(amps []complex128) (*State, error) {
	n := len(amps)
	if n == 0 || bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("amplitude vector length %d is not a power of two", n)
	}
	s := &State{Amplitudes: amps, Qubits: bits.TrailingZeros(uint(n))}
	if norm := s.Norm(); math.Abs(norm-1) > normTolerance {
		return nil, fmt.Errorf("amplitude vector has norm %g, want 1", norm)
	}
	return s, nil
}

// StateFromReal wraps a real vector as a state with zero imaginary parts.
func StateFromReal(v []float64) (*State, error) {
	amps := make([]complex128, len(v))
	for i, x := range v {
		amps[i] = complex(x, 0)
	}
	return StateFromAmplitudes(amps)
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &State{Amplitudes: amps, Qubits: s.Qubits}
}

// Norm returns the L2 norm of the amplitude vector.
func (s *State) Norm() float64 {
	var sum float64
	for _, a := range s.Amplitudes {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// Normalize scales the amplitudes to unit norm in place. It fails on a
// zero vector.
func (s *State) Normalize() error {
	norm := s.Norm()
	if norm == 0 {
		return fmt.Errorf("cannot normalize a zero state")
	}
	inv := complex(1/norm, 0)
	for i := range s.Amplitudes {
		s.Amplitudes[i] *= inv
	}
	return nil
}

// Probability returns |amplitude|^2 for the given basis index.
func (s *State) Probability(i int) float64 {
	a := cmplx.Abs(s.Amplitudes[i])
	return a * a
}

// mask returns the state-index bit for qubit q (qubit 0 is the most
// significant bit).
func (s *State) mask(q int) int {
	return 1 << (s.Qubits - 1 - q)
}
