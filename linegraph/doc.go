// Package linegraph models a line of N positions, numbered 0..N-1,
// joined by unit edges between consecutive positions, with one extra
// shortcut edge attached to every position.
//
// What:
//
//   - LineGraph wraps a compact per-position shortcut array; no explicit
//     adjacency list is ever materialized.
//   - Raw targets arrive 1-based (the external problem form) and are
//     normalized to 0-based exactly once, during construction.
//   - Neighbors enumerates a position's adjacency lazily: previous, next,
//     shortcut target, and reverse-shortcut sources, so every edge can be
//     walked in both directions.
//
// Why:
//
//   - Hop-count queries: how many unit steps from the start to anywhere.
//   - Board games and puzzles: a track with ladders or portals.
//   - A compact fixture for exercising relaxation-style traversals.
//
// Complexity:
//
//   - New:       O(N) time, O(N) memory (copy + reverse adjacency).
//   - Neighbors: O(1 + indegree) per call, allocation-free with a
//     reused destination slice.
//
// Options:
//
//   - WithZeroBased: accept shortcut targets that are already 0-based.
//
// Errors:
//
//   - ErrEmptyLine: input holds no positions.
//   - ErrShortcutOutOfRange: a shortcut target lies outside the line.
//   - ErrPositionOutOfRange: a queried index lies outside [0, Len).
//
// See: the hopdist package for the distance propagator built on top.
package linegraph
