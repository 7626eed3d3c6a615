package quantum

import "fmt"

// GateKind identifies a gate type supported by the simulator.
type GateKind int

const (
	// GateRY is a single-qubit Y-axis rotation.
	GateRY GateKind = iota
	// GateCZ is a two-qubit controlled-Z.
	GateCZ
)

// Gate represents one gate placed on a circuit. Control is -1 for
// single-qubit gates and Theta is zero for fixed gates.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
	Theta   float64
}

// Circuit is an ordered gate sequence over a fixed qubit register.
type Circuit struct {
	Qubits int
	Gates  []Gate
}

// NewCircuit creates an empty circuit on n qubits.
func NewCircuit(n int) *Circuit {
	return &Circuit{Qubits: n}
}

// AddRY appends a Y rotation on qubit q with angle theta.
func (c *Circuit) AddRY(q int, theta float64) {
	c.Gates = append(c.Gates, Gate{Kind: GateRY, Target: q, Control: -1, Theta: theta})
}

// AddCZ appends a controlled-Z between qubits a and b.
func (c *Circuit) AddCZ(a, b int) {
	c.Gates = append(c.Gates, Gate{Kind: GateCZ, Target: b, Control: a})
}

// Execute runs the circuit on a copy of the input state and returns the
// resulting state. The input is never mutated.
func (c *Circuit) Execute(in *State) (*State, error) {
	if in.Qubits != c.Qubits {
		return nil, fmt.Errorf("state has %d qubits, circuit expects %d", in.Qubits, c.Qubits)
	}
	out := in.Clone()
	for i, g := range c.Gates {
		if g.Target < 0 || g.Target >= c.Qubits {
			return nil, fmt.Errorf("gate %d: target qubit %d out of range [0,%d)", i, g.Target, c.Qubits)
		}
		switch g.Kind {
		case GateRY:
			out.applyRY(g.Target, g.Theta)
		case GateCZ:
			if g.Control < 0 || g.Control >= c.Qubits {
				return nil, fmt.Errorf("gate %d: control qubit %d out of range [0,%d)", i, g.Control, c.Qubits)
			}
			if g.Control == g.Target {
				return nil, fmt.Errorf("gate %d: control and target are both qubit %d", i, g.Target)
			}
			out.applyCZ(g.Control, g.Target)
		default:
			return nil, fmt.Errorf("gate %d: unknown gate kind %d", i, g.Kind)
		}
	}
	return out, nil
}
