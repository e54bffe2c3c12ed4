// SPDX-License-Identifier: MIT

package mc

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlgauge/observable"
)

// Thermalize runs the configured number of discard sweeps. Idempotent: the
// second call is a no-op, so Run may be called directly.
//
// Complexity: O(N_therm·V·D²).
func (u *Updater[E, S]) Thermalize() error {
	if u.thermalized {
		return nil
	}

	var i int
	for i = 0; i < u.opts.ThermalizationSweeps; i++ {
		if err := u.Sweep(); err != nil {
			return err
		}
	}
	u.thermalized = true

	return nil
}

// Run thermalizes (if not already done), then performs `measurements`
// measurement blocks of MeasurementInterval sweeps each, sampling the average
// plaquette after every block. The returned statistics carry the full series,
// mean, standard error, lag-1 autocorrelation, and a suggested comparison
// tolerance of three standard errors.
//
// Errors: ErrMeasurements; sweep and observable errors pass through.
//
// Complexity: O((N_therm + measurements·K)·V·D²).
func (u *Updater[E, S]) Run(measurements int) (RunStats, error) {
	if measurements < 1 {
		return RunStats{}, ErrMeasurements
	}
	if err := u.Thermalize(); err != nil {
		return RunStats{}, err
	}

	var m, k int
	for m = 0; m < measurements; m++ {
		for k = 0; k < u.opts.MeasurementInterval; k++ {
			if err := u.Sweep(); err != nil {
				return RunStats{}, err
			}
		}
		avg, err := observable.AveragePlaquette(u.f)
		if err != nil {
			return RunStats{}, err
		}
		u.stats.Plaquettes = append(u.stats.Plaquettes, avg)
	}

	u.summarize()

	return u.stats, nil
}

// summarize computes series statistics over the accumulated measurements.
func (u *Updater[E, S]) summarize() {
	pl := u.stats.Plaquettes
	n := len(pl)
	if n == 0 {
		return
	}

	u.stats.Mean = stat.Mean(pl, nil)
	if n > 1 {
		sd := stat.StdDev(pl, nil)
		u.stats.StdErr = stat.StdErr(sd, float64(n))
		u.stats.Tolerance = 3 * u.stats.StdErr
	}
	if n > 2 {
		u.stats.AutoCorr = stat.Correlation(pl[:n-1], pl[1:], nil)
	}
}
