// Package mc - RNG utilities for deterministic parallel sweeps.
//
// This file centralizes random generation for the updater.
//
// Goals:
//   - Determinism: same seed and worker count ⇒ identical runs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: every (sweep, direction, parity, worker) tuple gets its own
//     decorrelated stream, so parallel passes stay reproducible regardless of
//     goroutine scheduling.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each worker owns the stream derived
//     for it; streams are never shared across goroutines.
package mc

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Parallel passes need independent substreams addressed by position in the
//     sweep schedule, not by draw order.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     neighboring stream identifiers.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG creates the deterministic RNG for one addressed substream of a
// run: pass the run seed and a unique stream identifier (sweep × schedule
// position × worker). Unlike draw-order derivation, addressed streams do not
// depend on how many values earlier streams consumed.
//
// Complexity: O(1).
func streamRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}
