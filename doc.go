// Package linehop computes fewest-hop distances on "shortcut lines":
// N positions in a row, unit steps between neighbors, plus one extra
// shortcut edge per position.
//
// 🚀 What is linehop?
//
//	A small, focused library that brings together:
//		• linegraph — the immutable line + shortcut topology, with
//		  validation and 1-based → 0-based normalization at the boundary
//		• hopdist   — the distance propagator: a deque-driven relaxation
//		  that yields the minimum hop count from position 0 to every
//		  position, with optional parent links for path recovery
//		• lineio    — parsing and formatting for the plain-text
//		  problem format (count, then one shortcut target per position)
//
// ✨ Why choose linehop?
//
//   - Minimal API, clear naming — one call computes every distance
//   - Explicit unset markers — no magic "large number" sentinels
//   - Pure Go library core — the CLI under cmd/ is the only binary
//
// Quick ASCII example (5 positions, position 0 shortcuts to 4):
//
//	0───1───2───3───4
//	└───────────────┘
//
//	distances from 0: [0 1 2 2 1]
//
// Dive into the package docs of linegraph and hopdist for the full
// contract, complexity notes, and error semantics.
package linehop
