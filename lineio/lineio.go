// Package lineio reads and writes the plain-text problem format for
// shortcut lines: a position count N followed by exactly N whitespace-
// separated shortcut targets (1-based by default, 0-based under
// WithZeroBased), and a space-separated distance line on the way out.
//
// Parsing failures are classified, never silently defaulted:
//
//   - ErrMalformedInput:     a token is not an integer.
//   - ErrShortcutOutOfRange: a target lies outside the valid range.
//   - ErrLengthMismatch:     fewer or more targets than N.
//
// All three wrap enough context (token, position, expected range) to be
// reported directly to the caller.
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseProblem reads a position count N and exactly N shortcut targets
// from r, separated by arbitrary whitespace. The targets are returned
// raw (not renumbered); normalization belongs to linegraph.New.
// Validation here is the collaborator's half of the contract: every
// target must lie in the range selected by the Indexing option
// ([1, N] by default, [0, N) under WithZeroBased) and the count must
// match.
// Complexity: O(N) time and memory.
func ParseProblem(r io.Reader, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := nextInt(sc, "position count")
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: position count %d, need at least 1", ErrMalformedInput, n)
	}

	lo, hi := 1, n
	if o.Indexing == ZeroBased {
		lo, hi = 0, n-1
	}

	targets := make([]int, n)
	for i := 0; i < n; i++ {
		t, err := nextInt(sc, fmt.Sprintf("shortcut for position %d", i+1))
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: got %d targets, want %d", ErrLengthMismatch, i, n)
			}

			return nil, err
		}
		if t < lo || t > hi {
			return nil, fmt.Errorf("%w: position %d targets %d, want %d..%d",
				ErrShortcutOutOfRange, i+1, t, lo, hi)
		}
		targets[i] = t
	}

	// Anything left over is a surplus, not trailing noise to ignore.
	if sc.Scan() {
		return nil, fmt.Errorf("%w: surplus token %q after %d targets",
			ErrLengthMismatch, sc.Text(), n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lineio: read: %w", err)
	}

	return targets, nil
}

// nextInt scans one whitespace-separated token and parses it as an int.
// Returns io.ErrUnexpectedEOF (wrapped) when the input runs dry, or
// ErrMalformedInput (wrapped) for a non-integer token.
func nextInt(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("lineio: read %s: %w", what, err)
		}

		return 0, fmt.Errorf("lineio: missing %s: %w", what, io.ErrUnexpectedEOF)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedInput, what, sc.Text())
	}

	return v, nil
}

// FormatDistances writes dist as a single space-separated line,
// terminated by a newline.
// Complexity: O(N).
func FormatDistances(w io.Writer, dist []int) error {
	var sb strings.Builder
	for i, d := range dist {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(d))
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("lineio: write: %w", err)
	}

	return nil
}
