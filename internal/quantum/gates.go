package quantum

import "math"

// applyRY rotates qubit q by angle theta around the Y axis:
//
//	RY(θ) = [[cos(θ/2), -sin(θ/2)], [sin(θ/2), cos(θ/2)]]
func (s *State) applyRY(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	bit := s.mask(q)
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			a0 := s.Amplitudes[i]
			a1 := s.Amplitudes[j]
			s.Amplitudes[i] = c*a0 - sn*a1
			s.Amplitudes[j] = sn*a0 + c*a1
		}
	}
}

// applyCZ flips the phase of basis states where both qubits are |1>.
// CZ is symmetric in its two qubits.
func (s *State) applyCZ(a, b int) {
	maskA := s.mask(a)
	maskB := s.mask(b)
	both := maskA | maskB
	for i := range s.Amplitudes {
		if i&both == both {
			s.Amplitudes[i] = -s.Amplitudes[i]
		}
	}
}
