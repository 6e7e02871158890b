// Package racemodel implements race model inequality analysis for
// response time data, following Ulrich, Miller & Schröter (2007):
// "Testing the race model inequality: An algorithm and computer
// programs", Behavior Research Methods 39 (2), pp. 291-302.
//
// The package estimates cumulative frequency polygons from raw RT
// samples, extracts percentile boundaries from them, and assembles the
// comparison table used to test the race model inequality.
package racemodel

import (
	"math"
	"sort"

	"gorace/domain/core"
)

// TMaxAuto derives t_max from the maximum observed response time.
const TMaxAuto = -1

// CDF is a discretized cumulative distribution polygon. Values[i] holds
// the cumulative probability at tick Base+i; ticks are integer
// milliseconds. Estimated CDFs always start at tick 0.
type CDF struct {
	Base   int
	Values []float64
}

// Len returns the number of ticks covered by the CDF.
func (c CDF) Len() int { return len(c.Values) }

// Estimate is the result of estimating a CDF from one RT sample.
// DroppedNegatives counts response times below zero that were removed
// before estimation; a non-zero count is advisory, not an error.
type Estimate struct {
	CDF              CDF
	DroppedNegatives int
}

// NamedCDF pairs an estimate with a condition name.
type NamedCDF struct {
	Name string
	Estimate
}

// EstimateCDF estimates the cumulative frequency polygon of a response
// time sample. Response times are rounded to 1 ms; negative values are
// dropped and counted. tMax bounds the timeline (rounded to an
// integer); pass TMaxAuto to use the maximum observed RT.
//
// The polygon is 0 below the smallest unique RT, 1 at and above the
// largest, and linearly interpolated through mid-rank plotting
// positions in between.
func EstimateCDF(rts []float64, tMax float64) (*Estimate, error) {
	rounded := make([]int, 0, len(rts))
	dropped := 0
	for _, rt := range rts {
		if math.IsNaN(rt) {
			continue
		}
		r := int(math.Round(rt))
		if r < 0 {
			dropped++
			continue
		}
		rounded = append(rounded, r)
	}
	if len(rounded) == 0 {
		return nil, core.NewInvalidArgumentError("rts", "sample contains no usable response times")
	}
	sort.Ints(rounded)

	tm := rounded[len(rounded)-1]
	if tMax != TMaxAuto {
		tm = int(math.Round(tMax))
	}
	if tm < 0 {
		return nil, core.NewInvalidArgumentError("tMax", "must not be negative")
	}

	// Unique RT values with per-value and cumulative counts. Index 0 is
	// a sentinel so the tick loop can reference i-1 from i=1.
	u := []int{0}
	cnt := []int{0}
	cum := []int{0}
	for _, v := range rounded {
		if len(u) == 1 || v != u[len(u)-1] {
			u = append(u, v)
			cnt = append(cnt, 1)
			cum = append(cum, cum[len(cum)-1]+1)
		} else {
			cnt[len(cnt)-1]++
			cum[len(cum)-1]++
		}
	}
	k := len(u) - 1
	n := float64(len(rounded))

	values := make([]float64, tm+1)
	i := 1
	for t := 0; t <= tm; t++ {
		switch {
		case t < u[1]:
			values[t] = 0
		case t >= u[k]:
			values[t] = 1
		default:
			for u[i+1] <= t {
				i++
			}
			// Linear interpolation between the mid-rank plotting
			// positions of u[i] and u[i+1].
			frac := float64(t-u[i]) / float64(u[i+1]-u[i])
			values[t] = (float64(cum[i-1]) + float64(cnt[i])/2 +
				(float64(cnt[i])+float64(cnt[i+1]))/2*frac) / n
		}
	}

	return &Estimate{
		CDF:              CDF{Base: 0, Values: values},
		DroppedNegatives: dropped,
	}, nil
}

// EstimateCDFs estimates CDFs for several samples over a shared
// timeline, so the results are comparable tick for tick. The shared
// t_max is the maximum RT across all samples. names may be nil; if
// supplied it must have one entry per sample.
func EstimateCDFs(samples [][]float64, names []string) ([]NamedCDF, error) {
	if len(samples) == 0 {
		return nil, core.NewInvalidArgumentError("samples", "at least one sample is required")
	}
	if names != nil && len(names) != len(samples) {
		return nil, core.NewInvalidArgumentError("names", "must have one entry per sample")
	}

	tMax := maxAcross(samples)
	if math.IsInf(tMax, -1) {
		return nil, core.NewInvalidArgumentError("samples", "no usable response times")
	}

	out := make([]NamedCDF, len(samples))
	for i, sample := range samples {
		est, err := EstimateCDF(sample, tMax)
		if err != nil {
			return nil, err
		}
		out[i].Estimate = *est
		if names != nil {
			out[i].Name = names[i]
		}
	}
	return out, nil
}

// maxAcross returns the maximum finite value over a list of samples,
// ignoring NaN. Returns -Inf if nothing usable is present.
func maxAcross(samples [][]float64) float64 {
	max := math.Inf(-1)
	for _, sample := range samples {
		for _, v := range sample {
			if math.IsNaN(v) {
				continue
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}
