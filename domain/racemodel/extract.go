package racemodel

import (
	"gorace/domain/core"
)

// PercentileBoundaries inverts a CDF polygon: for each target
// probability it returns the (possibly fractional) tick at which the
// CDF first reaches that probability, by linear interpolation between
// adjacent ticks. Percentiles must be ascending and strictly inside
// (0, 1). The returned slice is aligned with p.
//
// In a flat run of identical CDF values the last tick of the run is
// the one matched, so ties resolve toward the higher tick.
func PercentileBoundaries(cdf CDF, p []float64) ([]float64, error) {
	if len(cdf.Values) == 0 {
		return nil, core.NewInvalidArgumentError("cdf", "has no tick index")
	}
	if err := validatePercentiles(p); err != nil {
		return nil, err
	}

	bounds := make([]float64, len(p))
	i := 0
	for t := 0; t+1 < len(cdf.Values) && i < len(p); t++ {
		lo, hi := cdf.Values[t], cdf.Values[t+1]
		// The "< hi" side keeps the pointer on flat runs until the last
		// tick of the run, then assigns every percentile that falls in
		// this tick transition.
		for i < len(p) && lo <= p[i] && p[i] < hi {
			if lo == 0 && hi == 1 {
				// A single transition carrying the full probability
				// mass is a true discontinuity at t+1 (a sample with
				// one unique RT), not a linear rise across the tick.
				bounds[i] = float64(cdf.Base + t + 1)
			} else {
				bounds[i] = float64(cdf.Base+t) + (p[i]-lo)/(hi-lo)
			}
			i++
		}
	}
	return bounds, nil
}
