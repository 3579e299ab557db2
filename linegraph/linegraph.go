// Package linegraph treats a line of positions with one shortcut edge
// per position as a graph. Cells 0..N-1 are connected by unit edges
// between consecutive positions; shortcut edges add one extra hop each.
package linegraph

import (
	"fmt"
)

// New constructs a LineGraph from a non-empty slice of shortcut targets.
// Targets are 1-based by default (use WithZeroBased for 0-based input)
// and are normalized exactly once here; the propagation layer never
// re-translates indices. The input is deep-copied to ensure immutability.
// Returns ErrEmptyLine if targets is empty,
// ErrShortcutOutOfRange if any target falls outside the line.
// Algorithmic complexity: O(N) time and memory.
func New(targets []int, opts ...Option) (*LineGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(targets)
	if n == 0 {
		return nil, ErrEmptyLine
	}

	// Normalize and validate in a single pass over the copy.
	shortcuts := make([]int, n)
	var t int
	for i, raw := range targets {
		t = raw
		if o.Indexing == OneBased {
			t = raw - 1
		}
		if t < 0 || t >= n {
			return nil, fmt.Errorf("%w: position %d targets %d (line has %d positions)",
				ErrShortcutOutOfRange, i, raw, n)
		}
		shortcuts[i] = t
	}

	// Precompute reverse shortcut adjacency so shortcut edges can be
	// traversed from either endpoint. Self-shortcuts add no edge.
	incoming := make([][]int, n)
	for i, tgt := range shortcuts {
		if tgt != i {
			incoming[tgt] = append(incoming[tgt], i)
		}
	}

	return &LineGraph{
		shortcuts: shortcuts,
		incoming:  incoming,
	}, nil
}

// Len returns the number of positions on the line.
// Complexity: O(1).
func (lg *LineGraph) Len() int {
	return len(lg.shortcuts)
}

// InBounds reports whether i is a valid position index.
// Complexity: O(1).
func (lg *LineGraph) InBounds(i int) bool {
	return i >= 0 && i < len(lg.shortcuts)
}

// Shortcut returns the 0-based shortcut target of position i.
// Returns ErrPositionOutOfRange for an invalid index.
// Complexity: O(1).
func (lg *LineGraph) Shortcut(i int) (int, error) {
	if !lg.InBounds(i) {
		return 0, fmt.Errorf("%w: %d", ErrPositionOutOfRange, i)
	}

	return lg.shortcuts[i], nil
}

// Shortcuts returns a copy of the normalized 0-based shortcut targets.
// Complexity: O(N).
func (lg *LineGraph) Shortcuts() []int {
	out := make([]int, len(lg.shortcuts))
	copy(out, lg.shortcuts)

	return out
}

// Neighbors appends the neighbors of position i to dst and returns the
// extended slice: the previous position (if any), the next position
// (if any), the shortcut target (unless it is i itself), and every
// position whose shortcut points at i. Duplicates are possible when a
// shortcut coincides with a line edge; callers relaxing distances
// absorb them harmlessly.
// Returns ErrPositionOutOfRange for an invalid index.
// Complexity: O(1 + indegree(i)); passing a reused dst avoids allocation.
func (lg *LineGraph) Neighbors(dst []int, i int) ([]int, error) {
	if !lg.InBounds(i) {
		return dst, fmt.Errorf("%w: %d", ErrPositionOutOfRange, i)
	}
	if i > 0 {
		dst = append(dst, i-1)
	}
	if i < len(lg.shortcuts)-1 {
		dst = append(dst, i+1)
	}
	if t := lg.shortcuts[i]; t != i {
		dst = append(dst, t)
	}
	dst = append(dst, lg.incoming[i]...)

	return dst, nil
}
