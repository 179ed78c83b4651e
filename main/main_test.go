package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetModeName(t *testing.T) {
	eval, plot := "", ""
	vars := map[string]*string{"Eval": &eval, "Plot": &plot}

	_, err := getModeName(vars)
	assert.Error(t, err)

	eval = "tables.cfg"
	name, err := getModeName(vars)
	require.NoError(t, err)
	assert.Equal(t, "Eval", name)

	plot = "tables.cfg"
	_, err = getModeName(vars)
	assert.Error(t, err)
}

func TestParseCoords(t *testing.T) {
	coords, err := parseCoords([]string{"1.5", "-2e3"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2000}, coords)

	_, err = parseCoords([]string{"1.5"}, 2)
	assert.Error(t, err)
	_, err = parseCoords([]string{"x"}, 1)
	assert.Error(t, err)
}

func TestLinspace(t *testing.T) {
	xs := linspace([]float64{0, 5, 10}, 13)
	assert.Len(t, xs, 13)
	assert.Equal(t, -1.0, xs[0])
	assert.Equal(t, 11.0, xs[12])
	assert.InDelta(t, 0.0, xs[1], 1e-12)
	for i := 1; i < len(xs); i++ {
		assert.True(t, xs[i] > xs[i-1])
	}
}
