// Package lineio defines options and sentinel errors for the lineio
// subpackage of github.com/katalvlaran/linehop.
package lineio

import (
	"errors"
)

// Sentinel errors for problem parsing.
var (
	// ErrMalformedInput indicates a token that is not an integer.
	ErrMalformedInput = errors.New("lineio: malformed input token")
	// ErrShortcutOutOfRange indicates a target outside the valid range
	// ([1, N] for 1-based input, [0, N) for 0-based input).
	ErrShortcutOutOfRange = errors.New("lineio: shortcut target out of range")
	// ErrLengthMismatch indicates a target count different from N.
	ErrLengthMismatch = errors.New("lineio: shortcut count does not match position count")
)

// Indexing selects how the raw shortcut targets are numbered.
// It mirrors linegraph.Indexing so a caller can keep parsing and
// construction in the same numbering.
type Indexing int

const (
	// OneBased validates targets against [1, N] (the external problem form).
	OneBased Indexing = iota
	// ZeroBased validates targets against [0, N).
	ZeroBased
)

// Options contains tunable parameters for problem parsing.
type Options struct {
	// Indexing chooses the numbering the targets are validated against.
	Indexing Indexing
}

// Option configures parsing via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with default settings:
// Indexing=OneBased (raw targets arrive in the external 1-based form).
func DefaultOptions() Options {
	return Options{
		Indexing: OneBased,
	}
}

// WithZeroBased validates shortcut targets against the 0-based range
// [0, N) instead of the default 1-based [1, N].
func WithZeroBased() Option {
	return func(o *Options) {
		o.Indexing = ZeroBased
	}
}
