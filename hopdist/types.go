// Package hopdist provides tunable options and error definitions
// for the hop-distance propagator over a linegraph.LineGraph.
package hopdist

import (
	"errors"
	"fmt"
)

// Unset marks a distance (or parent) that has not been assigned yet.
// It is an explicit "unknown" marker, never a stand-in large number.
const Unset = -1

// Sentinel errors for propagation.
var (
	// ErrNilGraph is returned if a nil line graph pointer is passed.
	ErrNilGraph = errors.New("hopdist: line graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hopdist: invalid option supplied")

	// ErrUnreached reports a path query for a position the propagation
	// never assigned a distance. It cannot occur after a successful
	// Distances run (the line edges alone connect every position) and
	// exists to make PathTo total on hand-built results.
	ErrUnreached = errors.New("hopdist: position not reached")
)

// Option configures propagation behavior via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when Distances is invoked.
type Option func(*DistOptions)

// DistOptions holds parameters and callbacks to customize propagation.
type DistOptions struct {
	// ReturnParents, if true, records each position's predecessor on a
	// fewest-hop path so Result.PathTo can reconstruct routes.
	ReturnParents bool

	// OnRelax is called every time a position's distance improves.
	// Receives the position and its newly recorded distance.
	OnRelax func(pos, dist int)

	// MaxHops, if > 0, stops relaxing beyond this distance.
	// A value of 0 explicitly disables any limit.
	MaxHops int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns DistOptions with sane defaults:
//   - no parent tracking
//   - no hop limit (MaxHops == 0)
//   - no-op OnRelax hook
func DefaultOptions() DistOptions {
	return DistOptions{
		ReturnParents: false,
		OnRelax:       func(int, int) {},
		MaxHops:       0,
		err:           nil,
	}
}

// WithReturnParents enables predecessor tracking for path recovery.
func WithReturnParents() Option {
	return func(o *DistOptions) {
		o.ReturnParents = true
	}
}

// WithOnRelax registers a callback invoked on every distance improvement.
func WithOnRelax(fn func(pos, dist int)) Option {
	return func(o *DistOptions) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithMaxHops stops relaxation at the given distance (inclusive).
//
//	h > 0:  positions farther than h hops keep Unset
//	h == 0: explicit no limit
//	h < 0:  invalid option → ErrOptionViolation
func WithMaxHops(h int) Option {
	return func(o *DistOptions) {
		switch {
		case h < 0:
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
		case h == 0:
			// explicit "no limit"
			o.MaxHops = 0
		default:
			o.MaxHops = h
		}
	}
}

// Result holds the outcome of a propagation run:
//   - Dist: minimum hop count from position 0, indexed by position.
//   - Parent: predecessor of each position on one fewest-hop path, or
//     Unset for position 0; nil unless WithReturnParents was given.
type Result struct {
	Dist   []int
	Parent []int
}

// PathTo reconstructs one fewest-hop path from position 0 to dest.
// Requires a Result produced under WithReturnParents.
// Returns ErrUnreached if dest carries no distance, ErrOptionViolation
// if parents were not recorded.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) || r.Dist[dest] == Unset {
		return nil, fmt.Errorf("%w: %d", ErrUnreached, dest)
	}
	if r.Parent == nil {
		return nil, fmt.Errorf("%w: PathTo requires WithReturnParents", ErrOptionViolation)
	}
	// build reversed path, then flip start → dest
	path := make([]int, 0, r.Dist[dest]+1)
	for cur := dest; cur != Unset; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
