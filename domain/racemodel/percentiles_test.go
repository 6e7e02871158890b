package racemodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorace/domain/core"
)

func TestGenPercentiles(t *testing.T) {
	p, err := GenPercentiles(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.3, 0.5, 0.7, 0.9}, p)
}

func TestGenPercentiles_Default10(t *testing.T) {
	p, err := GenPercentiles(10)
	require.NoError(t, err)
	require.Len(t, p, 10)
	assert.InDelta(t, 0.05, p[0], 1e-12)
	assert.InDelta(t, 0.95, p[9], 1e-12)

	// Symmetric around 0.5, none touching 0 or 1.
	for i := range p {
		assert.InDelta(t, 1.0, p[i]+p[len(p)-1-i], 1e-12)
		assert.Greater(t, p[i], 0.0)
		assert.Less(t, p[i], 1.0)
	}
}

func TestGenPercentiles_FractionalCountRounds(t *testing.T) {
	a, err := GenPercentiles(4.6)
	require.NoError(t, err)
	b, err := GenPercentiles(5)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestGenPercentiles_Invalid(t *testing.T) {
	for _, n := range []float64{0, -3, 0.4, math.NaN(), math.Inf(1)} {
		_, err := GenPercentiles(n)
		assert.Truef(t, core.IsInvalidArgument(err), "n=%v", n)
	}
}
