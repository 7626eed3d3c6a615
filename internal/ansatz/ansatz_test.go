package ansatz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gharib85/qibo/internal/quantum"
)

func TestParamCount(t *testing.T) {
	tests := []struct {
		name    string
		layers  int
		variant Variant
		want    int
	}{
		{"plain 1 layer", 1, Plain, 2*6*1 + 2},
		{"plain 3 layers", 3, Plain, 2*6*3 + 2},
		{"plain 5 layers", 5, Plain, 2*6*5 + 2},
		{"feature-enhanced 1 layer", 1, FeatureEnhanced, 4*6*1 + 2*2},
		{"feature-enhanced 3 layers", 3, FeatureEnhanced, 4*6*3 + 2*2},
		{"feature-enhanced 5 layers", 5, FeatureEnhanced, 4*6*5 + 2*2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewSixQubit(tt.layers, tt.variant)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.ParamCount())
		})
	}
}

func TestNewSixQubit_Validation(t *testing.T) {
	_, err := NewSixQubit(0, Plain)
	assert.Error(t, err)

	_, err = NewSixQubit(2, Variant(7))
	assert.Error(t, err)
}

func TestBuild_ParameterLengthMismatch(t *testing.T) {
	a, err := NewSixQubit(1, Plain)
	require.NoError(t, err)

	_, err = a.Build(make([]float64, a.ParamCount()-1), 0)
	assert.Error(t, err)

	_, err = a.Build(make([]float64, a.ParamCount()+1), 0)
	assert.Error(t, err)
}

func TestBuild_GateSequence(t *testing.T) {
	a, err := NewSixQubit(1, Plain)
	require.NoError(t, err)

	theta := make([]float64, a.ParamCount())
	for i := range theta {
		theta[i] = float64(i) / 10
	}

	c, err := a.Build(theta, 0)
	require.NoError(t, err)

	// Per layer: 6 RY + 5 CZ + 6 RY + 5 CZ, then 2 trailing RY.
	require.Len(t, c.Gates, 24)

	// First rotation sweep hits qubits 0..5 in order with sequential
	// parameters.
	for q := 0; q < 6; q++ {
		g := c.Gates[q]
		assert.Equal(t, quantum.GateRY, g.Kind)
		assert.Equal(t, q, g.Target)
		assert.InDelta(t, theta[q], g.Theta, 1e-15)
	}

	// Entangler A follows the declared wiring table.
	for i, pair := range SixQubitEntanglerA {
		g := c.Gates[6+i]
		assert.Equal(t, quantum.GateCZ, g.Kind)
		assert.Equal(t, pair[0], g.Control)
		assert.Equal(t, pair[1], g.Target)
	}

	// Trailing sweep rotates only the trash qubits 4 and 5.
	assert.Equal(t, 4, c.Gates[22].Target)
	assert.Equal(t, 5, c.Gates[23].Target)
	assert.InDelta(t, theta[13], c.Gates[23].Theta, 1e-15)
}

func TestBuild_FeatureEnhancedAngles(t *testing.T) {
	a, err := NewSixQubit(1, FeatureEnhanced)
	require.NoError(t, err)

	theta := make([]float64, a.ParamCount())
	for i := range theta {
		theta[i] = float64(i + 1)
	}
	const x = 0.75

	c, err := a.Build(theta, x)
	require.NoError(t, err)

	// First rotation: theta[0]*x + theta[1].
	assert.InDelta(t, theta[0]*x+theta[1], c.Gates[0].Theta, 1e-12)
	// Second rotation: theta[2]*x + theta[3].
	assert.InDelta(t, theta[2]*x+theta[3], c.Gates[1].Theta, 1e-12)

	// Same topology as the plain variant.
	plain, err := NewSixQubit(1, Plain)
	require.NoError(t, err)
	pc, err := plain.Build(make([]float64, plain.ParamCount()), 0)
	require.NoError(t, err)
	require.Len(t, c.Gates, len(pc.Gates))
	for i := range c.Gates {
		assert.Equal(t, pc.Gates[i].Kind, c.Gates[i].Kind, "gate %d", i)
		assert.Equal(t, pc.Gates[i].Target, c.Gates[i].Target, "gate %d", i)
		assert.Equal(t, pc.Gates[i].Control, c.Gates[i].Control, "gate %d", i)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := NewSixQubit(2, FeatureEnhanced)
	require.NoError(t, err)

	theta := make([]float64, a.ParamCount())
	for i := range theta {
		theta[i] = math.Sin(float64(i))
	}

	c1, err := a.Build(theta, 0.6)
	require.NoError(t, err)
	c2, err := a.Build(theta, 0.6)
	require.NoError(t, err)
	assert.Equal(t, c1.Gates, c2.Gates)
}

func TestBuild_PlainIgnoresFeature(t *testing.T) {
	a, err := NewSixQubit(1, Plain)
	require.NoError(t, err)

	theta := make([]float64, a.ParamCount())
	for i := range theta {
		theta[i] = float64(i) * 0.1
	}

	c1, err := a.Build(theta, 0)
	require.NoError(t, err)
	c2, err := a.Build(theta, 42)
	require.NoError(t, err)
	assert.Equal(t, c1.Gates, c2.Gates)
}
