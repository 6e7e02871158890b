package profiling

import (
	"math"

	"github.com/montanaflynn/stats"

	"gorace/domain/core"
)

// SampleProfile summarizes one condition's response time sample. It is
// attached to analyses so a reader can judge the sample behind each CDF.
type SampleProfile struct {
	Name   string  `json:"name"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// Profile computes summary statistics for a response time sample,
// ignoring NaN entries.
func Profile(name string, rts []float64) (SampleProfile, error) {
	data := make([]float64, 0, len(rts))
	for _, v := range rts {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return SampleProfile{}, core.NewInvalidArgumentError("rts", "sample is empty")
	}

	p := SampleProfile{Name: name, N: len(data)}

	var err error
	if p.Mean, err = stats.Mean(data); err != nil {
		return SampleProfile{}, err
	}
	if p.Median, err = stats.Median(data); err != nil {
		return SampleProfile{}, err
	}
	if p.Min, err = stats.Min(data); err != nil {
		return SampleProfile{}, err
	}
	if p.Max, err = stats.Max(data); err != nil {
		return SampleProfile{}, err
	}

	// Single-observation samples have no spread or quartiles worth
	// reporting; montanaflynn errors on them.
	if len(data) > 1 {
		if p.StdDev, err = stats.StandardDeviation(data); err != nil {
			return SampleProfile{}, err
		}
		if p.Q25, err = stats.Percentile(data, 25); err != nil {
			return SampleProfile{}, err
		}
		if p.Q75, err = stats.Percentile(data, 75); err != nil {
			return SampleProfile{}, err
		}
	} else {
		p.Q25, p.Q75 = data[0], data[0]
	}

	return p, nil
}
