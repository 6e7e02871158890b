package racemodel

import (
	"sort"

	"gorace/domain/core"
)

// StepPoint is one step of an observed RT distribution: the unique
// response time and the cumulative proportion of observations at or
// below it (maximum-rank convention, so tied observations all land on
// the top of their step).
type StepPoint struct {
	P  float64
	RT float64
}

// StepFunction generates the raw empirical step function of a response
// time sample, without any interpolation. Input does not need to be
// ordered and may contain duplicates.
func StepFunction(rts []float64) ([]StepPoint, error) {
	if len(rts) == 0 {
		return nil, core.NewInvalidArgumentError("rts", "sample is empty")
	}

	sorted := append([]float64(nil), rts...)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	var steps []StepPoint
	for i, v := range sorted {
		if i+1 < len(sorted) && sorted[i+1] == v {
			continue // keep only the highest rank of a tie group
		}
		steps = append(steps, StepPoint{P: float64(i+1) / n, RT: v})
	}
	return steps, nil
}
