// Package hopdist computes minimum hop counts from position 0 over a
// linegraph.LineGraph: a line of unit edges plus one shortcut edge per
// position, all edges traversed bidirectionally.
//
// Overview:
//
//   - Distances runs a deque-driven repeated relaxation equivalent to
//     unweighted BFS. Neighbors are derived lazily from the compact
//     shortcut array, never expanded into an adjacency list.
//   - A position's recorded distance only ever improves. First
//     discoveries join the BACK of the work deque, so the frontier is
//     processed in level order; a strict improvement re-enqueues the
//     position at the FRONT, so corrections propagate before the
//     frontier advances (the 0-1-BFS deque discipline).
//   - Termination is queue emptiness: distances are monotonically
//     non-increasing integers bounded below by 0, so the fixed point
//     is reached after finitely many pushes.
//
// Key features:
//
//   - WithReturnParents: record predecessor links; Result.PathTo then
//     rebuilds one fewest-hop path in O(path length).
//   - WithOnRelax: observe every distance improvement as it happens.
//   - WithMaxHops: stop exploring beyond a hop budget; positions past
//     the budget keep the explicit Unset marker.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        a nil *linegraph.LineGraph was passed.
//   - ErrOptionViolation: an invalid option (e.g. negative MaxHops).
//   - ErrUnreached:       PathTo asked about a position with no distance.
//
// A note on the alternative design: a top-down memoized recursion over
// "step forward or take the shortcut" looks tempting but conflates path
// cost with remaining cost to the end and silently mishandles shortcuts
// that require backward travel. The relaxation here is strictly more
// general and is the only strategy this package implements.
//
// Thread safety: one Distances call owns all of its mutable state, so
// concurrent calls over the same immutable LineGraph are safe.
package hopdist
