package quantum

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRY_SingleQubit(t *testing.T) {
	theta := math.Pi / 3

	c := NewCircuit(1)
	c.AddRY(0, theta)

	out, err := c.Execute(NewZeroState(1))
	require.NoError(t, err)

	assert.InDelta(t, math.Cos(theta/2), real(out.Amplitudes[0]), 1e-12)
	assert.InDelta(t, math.Sin(theta/2), real(out.Amplitudes[1]), 1e-12)
}

func TestRY_ZeroAngleIsIdentity(t *testing.T) {
	c := NewCircuit(2)
	c.AddRY(0, 0)
	c.AddRY(1, 0)

	in, err := StateFromReal([]float64{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)

	out, err := c.Execute(in)
	require.NoError(t, err)
	assert.Equal(t, in.Amplitudes, out.Amplitudes)
}

func TestCZ_FlipsOnlyBothOnes(t *testing.T) {
	c := NewCircuit(2)
	c.AddCZ(0, 1)

	in, err := StateFromReal([]float64{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)

	out, err := c.Execute(in)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, real(out.Amplitudes[0]), 1e-12)
	assert.InDelta(t, 0.5, real(out.Amplitudes[1]), 1e-12)
	assert.InDelta(t, 0.5, real(out.Amplitudes[2]), 1e-12)
	assert.InDelta(t, -0.5, real(out.Amplitudes[3]), 1e-12)
}

func TestCZ_Symmetric(t *testing.T) {
	in, err := StateFromReal([]float64{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)

	ab := NewCircuit(2)
	ab.AddCZ(0, 1)
	ba := NewCircuit(2)
	ba.AddCZ(1, 0)

	outAB, err := ab.Execute(in)
	require.NoError(t, err)
	outBA, err := ba.Execute(in)
	require.NoError(t, err)
	assert.Equal(t, outAB.Amplitudes, outBA.Amplitudes)
}

func TestExecute_PreservesNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	c := NewCircuit(4)
	for i := 0; i < 30; i++ {
		q := rng.Intn(4)
		if i%3 == 2 {
			p := (q + 1 + rng.Intn(3)) % 4
			c.AddCZ(q, p)
		} else {
			c.AddRY(q, rng.Float64()*2*math.Pi)
		}
	}

	out, err := c.Execute(NewZeroState(4))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out.Norm(), 1e-10)
}

func TestExecute_InputNotMutated(t *testing.T) {
	c := NewCircuit(2)
	c.AddRY(0, 1.0)
	c.AddCZ(0, 1)

	in := NewZeroState(2)
	before := append([]complex128(nil), in.Amplitudes...)

	_, err := c.Execute(in)
	require.NoError(t, err)
	assert.Equal(t, before, in.Amplitudes)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("qubit mismatch", func(t *testing.T) {
		c := NewCircuit(3)
		_, err := c.Execute(NewZeroState(2))
		assert.Error(t, err)
	})

	t.Run("target out of range", func(t *testing.T) {
		c := NewCircuit(2)
		c.AddRY(2, 1.0)
		_, err := c.Execute(NewZeroState(2))
		assert.Error(t, err)
	})

	t.Run("control equals target", func(t *testing.T) {
		c := NewCircuit(2)
		c.AddCZ(1, 1)
		_, err := c.Execute(NewZeroState(2))
		assert.Error(t, err)
	})
}

func TestExecute_Deterministic(t *testing.T) {
	c := NewCircuit(3)
	c.AddRY(0, 0.3)
	c.AddRY(1, 1.7)
	c.AddCZ(0, 2)
	c.AddRY(2, 2.9)

	a, err := c.Execute(NewZeroState(3))
	require.NoError(t, err)
	b, err := c.Execute(NewZeroState(3))
	require.NoError(t, err)
	assert.Equal(t, a.Amplitudes, b.Amplitudes)
}
