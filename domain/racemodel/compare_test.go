package racemodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorace/domain/core"
)

// Reference dataset from the worked example in Ulrich, Miller &
// Schröter (2007): x and y are the unimodal conditions, z the bimodal.
var (
	condX = []float64{244, 249, 257, 260, 264, 268, 271, 274, 277, 291}
	condY = []float64{245, 246, 248, 250, 251, 252, 253, 254, 255, 259, 263, 265, 279, 282, 284, 319}
	condZ = []float64{234, 238, 240, 240, 243, 243, 245, 251, 254, 256, 259, 270, 280}
)

func TestCompareRaceModel_ReferenceDataset(t *testing.T) {
	table, err := CompareRaceModel(condX, condY, condZ, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultNames, table.Names)
	require.Equal(t, 10, table.NumRows())

	wantP, err := GenPercentiles(10)
	require.NoError(t, err)
	assert.Equal(t, wantP, table.Percentiles)

	for _, name := range DefaultNames {
		col, err := table.Column(name)
		require.NoError(t, err)
		require.Len(t, col, 10)
		// Boundaries are non-decreasing in probability.
		for i := 1; i < len(col); i++ {
			assert.GreaterOrEqualf(t, col[i], col[i-1], "column %s row %d", name, i)
		}
	}

	// The Sum column bounds both unimodal conditions from below: the
	// race model bound is at least as fast as either channel alone.
	sum, _ := table.Column("Sum")
	a, _ := table.Column("A")
	b, _ := table.Column("B")
	for i := range sum {
		assert.LessOrEqual(t, sum[i], a[i])
		assert.LessOrEqual(t, sum[i], b[i])
	}
}

func TestCompareRaceModel_CustomPercentilesAndNames(t *testing.T) {
	opts := &CompareOptions{
		Percentiles: []float64{0.25, 0.5, 0.75},
		Names:       []string{"Visual", "Tactile", "Bimodal", "Bound"},
	}
	table, err := CompareRaceModel(condX, condY, condZ, opts)
	require.NoError(t, err)

	assert.Equal(t, opts.Names, table.Names)
	assert.Equal(t, opts.Percentiles, table.Percentiles)
	require.Equal(t, 3, table.NumRows())

	_, err = table.Column("Sum")
	assert.True(t, core.IsDataNotFound(err))
}

func TestCompareRaceModel_NumPercentiles(t *testing.T) {
	table, err := CompareRaceModel(condX, condY, condZ, &CompareOptions{NumPercentiles: 5})
	require.NoError(t, err)
	require.Equal(t, 5, table.NumRows())
	assert.Equal(t, []float64{0.1, 0.3, 0.5, 0.7, 0.9}, table.Percentiles)
}

func TestCompareRaceModel_NameCountMismatch(t *testing.T) {
	_, err := CompareRaceModel(condX, condY, condZ, &CompareOptions{Names: []string{"A", "B"}})
	assert.True(t, core.IsInvalidArgument(err))
}

func TestCompareRaceModel_DegenerateSamples(t *testing.T) {
	_, err := CompareRaceModel(nil, condY, condZ, nil)
	assert.True(t, core.IsInvalidArgument(err))

	_, err = CompareRaceModel([]float64{0}, []float64{0}, []float64{0}, nil)
	assert.True(t, core.IsInvalidArgument(err))
}

func TestCompareRaceModel_NegativeRTsCounted(t *testing.T) {
	dirty := append([]float64{-40, -1}, condX...)
	table, err := CompareRaceModel(dirty, condY, condZ, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, table.DroppedNegatives)

	clean, err := CompareRaceModel(condX, condY, condZ, nil)
	require.NoError(t, err)
	assert.Equal(t, clean.Columns, table.Columns)
}
