// Package hopdist implements the distance propagator over a shortcut
// line: minimum hop counts from position 0 to every position.
//
// The propagator is a breadth-first relaxation with uniform edge weight
// 1, run as a repeated-relaxation loop because a position's neighbors
// are computed lazily from the compact shortcut array rather than read
// from an adjacency list. The owned work deque follows the 0-1-BFS
// discipline: a first discovery joins the BACK (plain level order),
// while a strict improvement of an already-assigned position jumps to
// the FRONT so the correction propagates before the frontier advances.
// This keeps processing in level order and avoids pathological
// re-processing.
//
// Complexity:
//
//   - Time:  O(N) pushes per position in typical cases; bounded overall
//     because distances are monotonically non-increasing integers with
//     floor 0, so the queue drains to empty.
//   - Space: O(N) for the distance array, parent array, and deque.
package hopdist

import (
	"fmt"

	"github.com/katalvlaran/linehop/linegraph"
)

// Distances computes the minimum number of hops from position 0 to
// every position of lg, applying any number of functional Options.
//
// Returns:
//
//   - res: Result with Dist[i] = fewest hops from 0 to i (Dist[0] == 0)
//     and, under WithReturnParents, Parent links for path recovery.
//   - err: ErrNilGraph for a nil graph, ErrOptionViolation for bad
//     options; nil otherwise. Every position is reachable through the
//     line edges alone, so a successful run leaves no Unset distance
//     (unless WithMaxHops cuts the search short).
//
// The run is single-threaded and synchronous; the distance array and
// deque are local to one call, so concurrent calls on the same
// LineGraph are safe (LineGraph is immutable once built).
func Distances(lg *linegraph.LineGraph, opts ...Option) (*Result, error) {
	// 1) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate the graph.
	if lg == nil {
		return nil, ErrNilGraph
	}

	// 3) Prepare the propagation state. Every distance starts Unset
	//    except the start position; the deque is seeded with it.
	n := lg.Len()
	p := &propagator{
		lg:      lg,
		opts:    o,
		dist:    make([]int, n),
		queue:   newDeque(n),
		scratch: make([]int, 0, 4),
	}
	for i := range p.dist {
		p.dist[i] = Unset
	}
	if o.ReturnParents {
		p.parent = make([]int, n)
		for i := range p.parent {
			p.parent[i] = Unset
		}
	}
	p.dist[0] = 0
	p.queue.PushBack(0)

	// 4) Drain the queue to a fixed point.
	if err := p.run(); err != nil {
		return nil, err
	}

	return &Result{Dist: p.dist, Parent: p.parent}, nil
}

// propagator holds the mutable state of a single Distances execution.
type propagator struct {
	lg      *linegraph.LineGraph // read-only topology
	opts    DistOptions
	dist    []int  // position → fewest hops from 0, or Unset
	parent  []int  // position → predecessor, or Unset; nil if untracked
	queue   *deque // pending-reexamination list; emptiness terminates
	scratch []int  // reused neighbor buffer
}

// run processes the queue until empty. Each popped position is
// guaranteed to carry a distance: it was assigned one before the push.
func (p *propagator) run() error {
	for {
		current, ok := p.queue.PopFront()
		if !ok {
			return nil
		}
		if err := p.relax(current); err != nil {
			return err
		}
	}
}

// relax offers the candidate distance 1+dist[current] to every neighbor
// of current. A neighbor takes the candidate when it is Unset or the
// candidate is strictly smaller. Fresh discoveries join the back of the
// queue (level order); a lowered, already-assigned position jumps to
// the front so its own neighbors are corrected before the frontier
// advances — this is what lets a backward shortcut lower an earlier
// position after the fact.
func (p *propagator) relax(current int) error {
	candidate := 1 + p.dist[current]
	if p.opts.MaxHops > 0 && candidate > p.opts.MaxHops {
		return nil
	}

	neighbors, err := p.lg.Neighbors(p.scratch[:0], current)
	if err != nil {
		return fmt.Errorf("hopdist: neighbors of %d: %w", current, err)
	}
	for _, nbr := range neighbors {
		fresh := p.dist[nbr] == Unset
		if !fresh && candidate >= p.dist[nbr] {
			continue
		}
		p.dist[nbr] = candidate
		if p.parent != nil {
			p.parent[nbr] = current
		}
		p.opts.OnRelax(nbr, candidate)
		if fresh {
			p.queue.PushBack(nbr)
		} else {
			p.queue.PushFront(nbr)
		}
	}
	// keep the (possibly grown) buffer for the next relaxation
	p.scratch = neighbors[:0]

	return nil
}
