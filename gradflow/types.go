// SPDX-License-Identifier: MIT
package gradflow

import (
	"errors"
	"math"
)

var (
	// ErrNilField indicates a nil field argument.
	ErrNilField = errors.New("gradflow: field must not be nil")

	// ErrStepSize indicates a non-positive or non-finite integration step.
	ErrStepSize = errors.New("gradflow: step size must be positive and finite")

	// ErrMaxTime indicates a horizon shorter than a single step.
	ErrMaxTime = errors.New("gradflow: max flow time must cover at least one step")

	// ErrSample indicates a non-positive sampling stride.
	ErrSample = errors.New("gradflow: sample stride must be at least 1")

	// ErrNoBracket indicates the reference crossing was not reached; flow
	// longer or start from a rougher configuration.
	ErrNoBracket = errors.New("gradflow: t²E(t) did not reach the reference value")
)

// Defaults - single source of truth for zero-value option behavior.
const (
	// DefaultStepSize balances integrator error (O(ε³) per step) against
	// the number of force sweeps.
	DefaultStepSize = 0.01

	// DefaultMaxTime is enough to bracket t₀ on coarse configurations.
	DefaultMaxTime = 2.0

	// DefaultSampleEvery records E(t) after every step.
	DefaultSampleEvery = 1

	// DefaultReference is the conventional t²E(t) target defining t₀.
	DefaultReference = 0.3
)

// Options configures a Flow.
type Options struct {
	// StepSize is the integration step ε. Required: must be positive; a
	// zero value is rejected rather than defaulted, so a forgotten step
	// size can never silently produce a degenerate trajectory.
	StepSize float64

	// MaxTime is the flow horizon; Evolve stops once t ≥ MaxTime.
	// Zero selects DefaultMaxTime.
	MaxTime float64

	// SampleEvery records one (t, E(t)) pair per that many steps.
	// Zero selects DefaultSampleEvery.
	SampleEvery int

	// Reference is the t²E(t) level defining the extracted scale.
	// Zero selects DefaultReference.
	Reference float64
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		StepSize:    DefaultStepSize,
		MaxTime:     DefaultMaxTime,
		SampleEvery: DefaultSampleEvery,
		Reference:   DefaultReference,
	}
}

// validate normalizes zero values and rejects unusable settings.
func (o *Options) validate() error {
	if o.StepSize <= 0 || math.IsNaN(o.StepSize) || math.IsInf(o.StepSize, 0) {
		return ErrStepSize
	}
	if o.MaxTime == 0 {
		o.MaxTime = DefaultMaxTime
	}
	if o.MaxTime < o.StepSize || math.IsNaN(o.MaxTime) || math.IsInf(o.MaxTime, 0) {
		return ErrMaxTime
	}
	if o.SampleEvery == 0 {
		o.SampleEvery = DefaultSampleEvery
	}
	if o.SampleEvery < 0 {
		return ErrSample
	}
	if o.Reference == 0 {
		o.Reference = DefaultReference
	}

	return nil
}
