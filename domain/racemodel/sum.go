package racemodel

import (
	"gorace/domain/core"
)

// SumCDFs calculates the elementwise sum of several CDFs, capped at 1.
// Under the race model, min(CDF_A + CDF_B, 1) is the upper bound on the
// bimodal CDF if the two channels are statistically independent.
//
// All CDFs must cover the same timeline: equal lengths
// (ErrShapeMismatch otherwise) and equal tick bases (ErrIndexMismatch
// otherwise).
func SumCDFs(cdfs []CDF) (CDF, error) {
	if len(cdfs) == 0 {
		return CDF{}, core.NewInvalidArgumentError("cdfs", "at least one CDF is required")
	}
	first := cdfs[0]
	for _, c := range cdfs[1:] {
		if c.Len() != first.Len() {
			return CDF{}, core.NewShapeMismatchError(first.Len(), c.Len())
		}
		if c.Base != first.Base {
			return CDF{}, core.NewIndexMismatchError(first.Base, c.Base)
		}
	}

	values := make([]float64, first.Len())
	for t := range values {
		sum := 0.0
		for _, c := range cdfs {
			sum += c.Values[t]
		}
		if sum > 1 {
			sum = 1
		}
		values[t] = sum
	}
	return CDF{Base: first.Base, Values: values}, nil
}
