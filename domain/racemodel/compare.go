package racemodel

import (
	"math"

	"gorace/domain/core"
)

// DefaultNumPercentiles is the number of rows in a comparison table
// when the caller supplies neither a count nor explicit percentiles.
const DefaultNumPercentiles = 10

// DefaultNames labels the comparison table columns: the two unimodal
// conditions, the bimodal condition, and the race model bound.
var DefaultNames = []string{"A", "B", "AB", "Sum"}

// CompareOptions adjusts CompareRaceModel. The zero value requests the
// defaults.
type CompareOptions struct {
	NumPercentiles int       // rows to generate; ignored if Percentiles is set
	Percentiles    []float64 // explicit row index, ascending, in (0, 1)
	Names          []string  // four column names, [A, B, AB, Sum] order
}

// CompareRaceModel tests three RT samples against the race model
// inequality: two unimodal conditions A and B and the combined bimodal
// condition AB. It estimates all three CDFs over a shared timeline,
// constructs the bound CDF min(CDF_A + CDF_B, 1), and extracts
// percentile boundaries from all four.
//
// The returned table makes no verdict: at any percentile where the AB
// boundary is smaller than the Sum boundary the inequality is violated,
// but that reading is left to the caller.
func CompareRaceModel(rtA, rtB, rtAB []float64, opts *CompareOptions) (*Table, error) {
	if opts == nil {
		opts = &CompareOptions{}
	}

	names := DefaultNames
	if opts.Names != nil {
		if len(opts.Names) != len(DefaultNames) {
			return nil, core.NewInvalidArgumentError("names", "exactly four column names are required")
		}
		names = opts.Names
	}

	tMax := maxAcross([][]float64{rtA, rtB, rtAB})
	if math.IsInf(tMax, -1) || math.Round(tMax) <= 0 {
		return nil, core.NewInvalidArgumentError("samples", "maximum response time must be positive")
	}

	var estimates [3]*Estimate
	dropped := 0
	for i, sample := range [][]float64{rtA, rtB, rtAB} {
		est, err := EstimateCDF(sample, tMax)
		if err != nil {
			return nil, err
		}
		estimates[i] = est
		dropped += est.DroppedNegatives
	}

	bound, err := SumCDFs([]CDF{estimates[0].CDF, estimates[1].CDF})
	if err != nil {
		return nil, err
	}

	p := opts.Percentiles
	if p == nil {
		count := opts.NumPercentiles
		if count == 0 {
			count = DefaultNumPercentiles
		}
		p, err = GenPercentiles(float64(count))
		if err != nil {
			return nil, err
		}
	}

	cdfs := []CDF{estimates[0].CDF, estimates[1].CDF, estimates[2].CDF, bound}
	columns := make([][]float64, len(cdfs))
	for i, cdf := range cdfs {
		columns[i], err = PercentileBoundaries(cdf, p)
		if err != nil {
			return nil, err
		}
	}

	return &Table{
		Names:            names,
		Percentiles:      p,
		Columns:          columns,
		DroppedNegatives: dropped,
	}, nil
}
