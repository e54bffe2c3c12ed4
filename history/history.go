package history

import (
	"errors"

	"github.com/katalvlaran/lvlgauge/field"
	"github.com/katalvlaran/lvlgauge/group"
)

var (
	// ErrNilField indicates a nil field passed to Snapshot.
	ErrNilField = errors.New("history: field must not be nil")

	// ErrEmpty indicates an operation on a timeline with no checkpoints.
	ErrEmpty = errors.New("history: timeline is empty")

	// ErrDepth indicates a rewind depth or checkpoint index out of range.
	ErrDepth = errors.New("history: depth or index out of range")
)

// Timeline is an append-only log of field checkpoints with rewind. The zero
// limit keeps every checkpoint; a positive limit evicts the oldest ones
// first, ring-buffer style.
type Timeline[E group.Element[E], S any] struct {
	snaps []*field.Field[E, S]
	limit int
}

// NewTimeline returns an empty timeline. limit ≤ 0 means unbounded.
func NewTimeline[E group.Element[E], S any](limit int) *Timeline[E, S] {
	return &Timeline[E, S]{limit: limit}
}

// Len returns the number of stored checkpoints.
func (tl *Timeline[E, S]) Len() int { return len(tl.snaps) }

// Snapshot appends a deep clone of f. When the limit is reached the oldest
// checkpoint is evicted.
func (tl *Timeline[E, S]) Snapshot(f *field.Field[E, S]) error {
	if f == nil {
		return ErrNilField
	}
	tl.snaps = append(tl.snaps, f.Clone())
	if tl.limit > 0 && len(tl.snaps) > tl.limit {
		// shift instead of reslice so evicted fields become collectable
		copy(tl.snaps, tl.snaps[1:])
		tl.snaps[len(tl.snaps)-1] = nil
		tl.snaps = tl.snaps[:len(tl.snaps)-1]
	}

	return nil
}

// Head returns a clone of the most recent checkpoint.
func (tl *Timeline[E, S]) Head() (*field.Field[E, S], error) {
	if len(tl.snaps) == 0 {
		return nil, ErrEmpty
	}

	return tl.snaps[len(tl.snaps)-1].Clone(), nil
}

// At returns a clone of the i-th checkpoint (0 is the oldest).
func (tl *Timeline[E, S]) At(i int) (*field.Field[E, S], error) {
	if len(tl.snaps) == 0 {
		return nil, ErrEmpty
	}
	if i < 0 || i >= len(tl.snaps) {
		return nil, ErrDepth
	}

	return tl.snaps[i].Clone(), nil
}

// Rewind discards the depth most recent checkpoints and returns a clone of
// the new head. Rewinding the whole timeline is ErrDepth: the caller would
// be left with nothing to restart from.
func (tl *Timeline[E, S]) Rewind(depth int) (*field.Field[E, S], error) {
	if len(tl.snaps) == 0 {
		return nil, ErrEmpty
	}
	if depth < 0 || depth >= len(tl.snaps) {
		return nil, ErrDepth
	}
	for i := len(tl.snaps) - depth; i < len(tl.snaps); i++ {
		tl.snaps[i] = nil
	}
	tl.snaps = tl.snaps[:len(tl.snaps)-depth]

	return tl.snaps[len(tl.snaps)-1].Clone(), nil
}

// Replay walks the checkpoints oldest-first, handing a clone of each to
// visit. A visitor error stops the walk and is returned as-is.
func (tl *Timeline[E, S]) Replay(visit func(i int, f *field.Field[E, S]) error) error {
	if len(tl.snaps) == 0 {
		return ErrEmpty
	}
	for i, s := range tl.snaps {
		if err := visit(i, s.Clone()); err != nil {
			return err
		}
	}

	return nil
}
