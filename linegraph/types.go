// Package linegraph defines core types, options, and sentinel errors
// for the linegraph subpackage of github.com/katalvlaran/linehop.
package linegraph

import (
	"errors"
)

// Sentinel errors for linegraph construction and queries.
var (
	// ErrEmptyLine indicates the input holds no positions at all.
	ErrEmptyLine = errors.New("linegraph: line must have at least one position")
	// ErrShortcutOutOfRange indicates a shortcut target outside the line.
	ErrShortcutOutOfRange = errors.New("linegraph: shortcut target out of range")
	// ErrPositionOutOfRange indicates a queried position index outside [0, Len).
	ErrPositionOutOfRange = errors.New("linegraph: position index out of range")
)

// Indexing selects how the raw shortcut targets are numbered.
type Indexing int

const (
	// OneBased treats raw targets as 1-based (the external problem form);
	// they are normalized to 0-based once, during construction.
	OneBased Indexing = iota
	// ZeroBased treats raw targets as already 0-based.
	ZeroBased
)

// Options contains tunable parameters for line construction.
type Options struct {
	// Indexing chooses the numbering of the raw shortcut targets.
	Indexing Indexing
}

// Option configures LineGraph construction via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with default settings:
// Indexing=OneBased (raw targets arrive in the external 1-based form).
func DefaultOptions() Options {
	return Options{
		Indexing: OneBased,
	}
}

// WithZeroBased accepts shortcut targets that are already 0-based,
// skipping the boundary normalization step.
func WithZeroBased() Option {
	return func(o *Options) {
		o.Indexing = ZeroBased
	}
}

// LineGraph is a line of Len() positions with one shortcut edge per
// position. It is immutable once built: shortcuts holds 0-based targets,
// and incoming[t] lists every position whose shortcut points at t, so
// shortcut edges can be walked in either direction without scanning.
type LineGraph struct {
	shortcuts []int
	incoming  [][]int
}
