// Package sdt provides signal detection theory indices for yes/no
// detection tasks.
package sdt

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"gorace/domain/core"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// DPrime calculates the sensitivity index d' = z(hitRate) - z(faRate)
// from hit and false alarm counts over n trials per trial type.
func DPrime(hits, falseAlarms float64, n int) (float64, error) {
	hitRate, faRate, err := rates(hits, falseAlarms, n)
	if err != nil {
		return 0, err
	}
	return stdNormal.Quantile(hitRate) - stdNormal.Quantile(faRate), nil
}

// APrime calculates the non-parametric sensitivity index A'.
func APrime(hits, falseAlarms float64, n int) (float64, error) {
	hitRate, faRate, err := rates(hits, falseAlarms, n)
	if err != nil {
		return 0, err
	}
	diff := hitRate - faRate
	denom := 4*math.Max(hitRate, faRate) - 4*hitRate*faRate
	return 0.5 + sign(diff)*(diff*diff+math.Abs(diff))/denom, nil
}

// Criterion calculates the decision criterion
// C = -(z(hitRate) + z(faRate)) / 2. Zero for an unbiased observer;
// in a yes/no task, negative values indicate a bias toward "yes".
func Criterion(hits, falseAlarms float64, n int) (float64, error) {
	hitRate, faRate, err := rates(hits, falseAlarms, n)
	if err != nil {
		return 0, err
	}
	return -0.5 * (stdNormal.Quantile(hitRate) + stdNormal.Quantile(faRate)), nil
}

// rates converts counts to hit and false alarm rates. Extreme rates of
// exactly 0 or 1 would put the normal quantile at infinity, so both
// rates get the log-linear correction (counts + 0.5 over n + 1) when
// either is extreme.
func rates(hits, falseAlarms float64, n int) (float64, float64, error) {
	if n <= 0 {
		return 0, 0, core.NewInvalidArgumentError("n", "trial count must be positive")
	}
	if hits < 0 || falseAlarms < 0 || hits > float64(n) || falseAlarms > float64(n) {
		return 0, 0, core.NewInvalidArgumentError("counts", "must lie between 0 and the trial count")
	}

	hitRate := hits / float64(n)
	faRate := falseAlarms / float64(n)
	if hitRate == 0 || hitRate == 1 || faRate == 0 || faRate == 1 {
		hitRate = (hits + 0.5) / float64(n+1)
		faRate = (falseAlarms + 0.5) / float64(n+1)
	}
	return hitRate, faRate, nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
