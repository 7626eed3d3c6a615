package hamiltonian

import (
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/mat"
)

// ZSum builds the k-qubit Pauli-Z Hamiltonian -sum_i sigma_z(i). It is
// diagonal with eigenvalues -(k - 2*popcount): -k on |0...0> and +k on
// |1...1>.
func ZSum(k int) (*Observable, error) {
	if k <= 0 {
		return nil, fmt.Errorf("invalid qubit count %d for Z Hamiltonian", k)
	}
	dim := 1 << k
	m := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		m.SetSym(i, i, zSumEigenvalue(k, i))
	}
	return NewObservable(m)
}

func zSumEigenvalue(k, index int) float64 {
	ones := bits.OnesCount(uint(index))
	return -(float64(k) - 2*float64(ones))
}

// Encoder builds the trash-qubit penalty observable
//
//	0.5 * (I_{2^(n-k)} x ZSum(k) + k*I)
//
// over n qubits with k trash qubits. The trash qubits are the last k of
// the register and occupy the least significant index bits. Eigenvalues
// lie in [0, k], with 0 exactly on states whose trash qubits are all |0>.
func Encoder(n, k int) (*Observable, error) {
	if k <= 0 || k > n {
		return nil, fmt.Errorf("invalid trash count %d for %d qubits", k, n)
	}
	dim := 1 << n
	trashMask := (1 << k) - 1
	m := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		z := zSumEigenvalue(k, i&trashMask)
		m.SetSym(i, i, 0.5*(z+float64(k)))
	}
	return NewObservable(m)
}

// TFIM builds the transverse field Ising model Hamiltonian
//
//	-sum_i Z_i Z_{i+1} - h * sum_i X_i
//
// on n qubits with periodic boundary conditions.
func TFIM(n int, h float64) (*Observable, error) {
	if n < 2 {
		return nil, fmt.Errorf("TFIM needs at least 2 qubits, got %d", n)
	}
	dim := 1 << n
	m := mat.NewSymDense(dim, nil)

	for i := 0; i < dim; i++ {
		// Nearest-neighbor ZZ coupling on the ring.
		var zz float64
		for q := 0; q < n; q++ {
			zi := zBit(n, i, q)
			zj := zBit(n, i, (q+1)%n)
			zz += zi * zj
		}
		m.SetSym(i, i, -zz)

		// Transverse field: X_q connects i with i flipped at qubit q.
		for q := 0; q < n; q++ {
			j := i ^ qubitMask(n, q)
			if j > i {
				m.SetSym(i, j, -h)
			}
		}
	}
	return NewObservable(m)
}

// zBit returns the sigma_z eigenvalue (+1 for |0>, -1 for |1>) of qubit q
// in basis state index i.
func zBit(n, i, q int) float64 {
	if i&qubitMask(n, q) == 0 {
		return 1
	}
	return -1
}

// qubitMask returns the index bit of qubit q with qubit 0 as the most
// significant bit.
func qubitMask(n, q int) int {
	return 1 << (n - 1 - q)
}
