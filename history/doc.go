// SPDX-License-Identifier: MIT

// Package history keeps an in-memory timeline of gauge-field checkpoints
// with rewind and replay.
//
// What:
//
//	A Timeline stores deep clones of a field taken at chosen points of a
//	simulation (after thermalization, every N sweeps, before a risky
//	parameter change). Rewind discards the most recent checkpoints and
//	hands back the surviving head; Replay walks the surviving prefix in
//	order, handing each checkpoint to a caller-supplied visitor.
//
// Why:
//
//	Monte Carlo chains are cheap to extend but expensive to redo. When a
//	run goes numerically sour or an observable reveals a bad parameter
//	choice, restarting from the last good checkpoint costs one clone - not
//	a fresh thermalization. Replay makes post-hoc measurement possible:
//	walk the stored chain and evaluate an observable that was not recorded
//	during the original run.
//
// Checkpoints are isolated both ways: Snapshot clones the field going in,
// and every accessor clones it coming out, so neither later simulation
// steps nor visitor mutations can corrupt stored history.
//
// Errors:
//
//	ErrNilField - Snapshot of a nil field.
//	ErrEmpty    - accessing or rewinding an empty timeline.
//	ErrDepth    - rewind depth exceeds the number of checkpoints, or a
//	              checkpoint index is out of range.
//
// Complexity: Snapshot and every accessor are O(V·D) for the clone;
// Rewind itself is O(1).
package history
