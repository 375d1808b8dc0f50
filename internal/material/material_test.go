package material

import (
	"testing"

	"github.com/alexiusacademia/gotube/internal/tube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	m, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, Aluminum, m)

	m, err = Lookup("steel")
	require.NoError(t, err)
	assert.Equal(t, 200.0e9, m.E)

	_, err = Lookup("balsa")
	assert.ErrorContains(t, err, `unknown material "balsa"`)

	assert.Equal(t, []string{"aluminum", "steel"}, Names())
}

func TestStiffness(t *testing.T) {
	props, err := tube.EvaluateSurface(2, tube.Geometry{
		Radius:    []float64{1.0, 0.5},
		Thickness: []float64{0.1, 0.5},
	})
	require.NoError(t, err)

	s := Stiffness(props, Aluminum)
	require.Len(t, s.EA, 2)
	for i := range props.A {
		assert.InEpsilon(t, 70e9*props.A[i], s.EA[i], 1e-12)
		assert.InEpsilon(t, 70e9*props.Iy[i], s.EIy[i], 1e-12)
		assert.Equal(t, s.EIy[i], s.EIz[i])
		assert.InEpsilon(t, 30e9*props.J[i], s.GJ[i], 1e-12)
		assert.InEpsilon(t, 3e3*props.A[i], s.MassPerLength[i], 1e-12)
	}

	assert.Empty(t, Stiffness(tube.Properties{}, Steel).EA)
}
