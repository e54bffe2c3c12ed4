// SPDX-License-Identifier: MIT

// Package mc sentinel errors, run options, and run statistics.
package mc

import (
	"errors"
	"math"
	"runtime"
)

// Sentinel errors for updater construction and runs.
var (
	// ErrNilField indicates a nil field argument.
	ErrNilField = errors.New("mc: field must not be nil")

	// ErrTherm indicates a negative thermalization sweep count.
	ErrTherm = errors.New("mc: thermalization sweep count must be non-negative")

	// ErrInterval indicates a measurement interval smaller than 1.
	ErrInterval = errors.New("mc: measurement interval must be at least 1")

	// ErrSpread indicates a non-positive or non-finite proposal spread.
	ErrSpread = errors.New("mc: proposal spread must be positive and finite")

	// ErrMeasurements indicates a non-positive measurement count.
	ErrMeasurements = errors.New("mc: measurement count must be positive")
)

// Defaults - single source of truth for zero-value option behavior.
const (
	// DefaultProposalSpread is the angular scale of near-identity proposals.
	// Moderate by design: large enough to decorrelate, small enough to keep
	// acceptance workable at couplings of order 1.
	DefaultProposalSpread = 0.5

	// DefaultMeasurementInterval samples every sweep.
	DefaultMeasurementInterval = 1

	// DefaultReprojectEvery reprojects all links after every sweep.
	DefaultReprojectEvery = 1
)

// Options contains tunable parameters for a Monte Carlo run.
type Options struct {
	// ThermalizationSweeps is the number of discarded sweeps before any
	// measurement (N_therm ≥ 0).
	ThermalizationSweeps int

	// MeasurementInterval is the number of sweeps between samples (K ≥ 1);
	// choose it to exceed the autocorrelation length.
	MeasurementInterval int

	// Seed selects the deterministic random stream; 0 means the stable
	// default seed.
	Seed int64

	// Workers bounds parallelism within one parity pass; values < 1 select
	// runtime.GOMAXPROCS(0). Changing Workers changes the stream layout and
	// therefore the exact run, but not its statistics. On lattices with an
	// odd periodic extent the updater forces a single worker; see NewUpdater.
	Workers int

	// ProposalSpread is the angular scale of near-identity proposals (> 0).
	ProposalSpread float64

	// ReprojectEvery reprojects every link after this many sweeps (≥ 1).
	ReprojectEvery int
}

// DefaultOptions returns Options with documented defaults: no thermalization,
// sample every sweep, default seed, all CPUs, spread 0.5, reproject each sweep.
func DefaultOptions() Options {
	return Options{
		ThermalizationSweeps: 0,
		MeasurementInterval:  DefaultMeasurementInterval,
		Seed:                 0,
		Workers:              0,
		ProposalSpread:       DefaultProposalSpread,
		ReprojectEvery:       DefaultReprojectEvery,
	}
}

// validate normalizes and checks the options.
func (o *Options) validate() error {
	if o.ThermalizationSweeps < 0 {
		return ErrTherm
	}
	if o.MeasurementInterval == 0 {
		o.MeasurementInterval = DefaultMeasurementInterval
	}
	if o.MeasurementInterval < 1 {
		return ErrInterval
	}
	if o.ProposalSpread == 0 {
		o.ProposalSpread = DefaultProposalSpread
	}
	if o.ProposalSpread <= 0 || math.IsNaN(o.ProposalSpread) || math.IsInf(o.ProposalSpread, 0) {
		return ErrSpread
	}
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.ReprojectEvery < 1 {
		o.ReprojectEvery = DefaultReprojectEvery
	}

	return nil
}

// RunStats reports the outcome of a run: counters for every proposal and
// recovery event, the measured plaquette series, and its summary statistics.
type RunStats struct {
	// Sweeps is the total number of completed sweeps (thermalization included).
	Sweeps int

	// Proposals and Accepted count individual link updates.
	Proposals, Accepted int64

	// Instabilities counts skipped proposals with non-finite action or weight.
	Instabilities int64

	// ManifoldResets counts links reset to identity because reprojection
	// could not recover them.
	ManifoldResets int

	// Plaquettes is the measured average-plaquette series, one entry per
	// measurement sweep.
	Plaquettes []float64

	// Mean and StdErr summarize the series; AutoCorr is its lag-1
	// autocorrelation (an interval-quality diagnostic).
	Mean, StdErr, AutoCorr float64

	// Tolerance is the suggested comparison tolerance against reference
	// values: 3 standard errors.
	Tolerance float64
}

// AcceptanceRate returns Accepted/Proposals, or 0 before any proposal.
func (s RunStats) AcceptanceRate() float64 {
	if s.Proposals == 0 {
		return 0
	}

	return float64(s.Accepted) / float64(s.Proposals)
}
