package ansatz

// Entangler wiring for the six-qubit circuit, expressed as ordered CZ
// pairs. Each layer applies table A after the first rotation sweep and
// table B after the second.
var (
	SixQubitEntanglerA = [][2]int{{5, 4}, {5, 3}, {5, 1}, {4, 2}, {4, 0}}
	SixQubitEntanglerB = [][2]int{{5, 4}, {5, 2}, {4, 3}, {5, 0}, {4, 1}}
)
