package racemodel

import (
	"math"
	"sort"

	"gorace/domain/core"
)

// GenPercentiles calculates n equally spaced percentiles
// p_i = (i - 0.5) / n for i = 1..n. The sequence is symmetric around
// 0.5 and never touches 0 or 1. Fractional counts are rounded.
func GenPercentiles(n float64) ([]float64, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, core.NewInvalidArgumentError("n", "percentile count must be a finite number")
	}
	count := int(math.Round(n))
	if count < 1 {
		return nil, core.NewInvalidArgumentError("n", "percentile count must be at least 1")
	}

	p := make([]float64, count)
	for i := range p {
		p[i] = (float64(i) + 0.5) / float64(count)
	}
	return p, nil
}

// validatePercentiles checks that a caller-supplied percentile sequence
// is strictly ascending and lies in the open interval (0, 1).
func validatePercentiles(p []float64) error {
	if !sort.Float64sAreSorted(p) {
		return core.NewInvalidArgumentError("percentiles", "must be in ascending order")
	}
	for _, v := range p {
		if math.IsNaN(v) || v <= 0 || v >= 1 {
			return core.NewInvalidArgumentError("percentiles", "values must lie strictly between 0 and 1")
		}
	}
	return nil
}
