package lineio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linehop/lineio"
)

func TestParseProblem_WellFormed(t *testing.T) {
	targets, err := lineio.ParseProblem(strings.NewReader("5\n5 2 3 4 5\n"))
	require.NoError(t, err)
	require.Equal(t, []int{5, 2, 3, 4, 5}, targets)
}

func TestParseProblem_ArbitraryWhitespace(t *testing.T) {
	// Tokens may be split across lines and padded freely.
	targets, err := lineio.ParseProblem(strings.NewReader("  3\n\t2\n2  3"))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 3}, targets)
}

func TestParseProblem_SinglePosition(t *testing.T) {
	targets, err := lineio.ParseProblem(strings.NewReader("1 1"))
	require.NoError(t, err)
	require.Equal(t, []int{1}, targets)
}

func TestParseProblem_MalformedToken(t *testing.T) {
	_, err := lineio.ParseProblem(strings.NewReader("3 2 x 3"))
	require.ErrorIs(t, err, lineio.ErrMalformedInput)

	// A malformed count is the same class of failure.
	_, err = lineio.ParseProblem(strings.NewReader("three 1 2 3"))
	require.ErrorIs(t, err, lineio.ErrMalformedInput)

	// A non-positive count cannot frame any problem.
	_, err = lineio.ParseProblem(strings.NewReader("0"))
	require.ErrorIs(t, err, lineio.ErrMalformedInput)
}

func TestParseProblem_ZeroBased(t *testing.T) {
	// 0-based targets may legally point at position 0.
	targets, err := lineio.ParseProblem(strings.NewReader("3\n1 2 0\n"), lineio.WithZeroBased())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0}, targets)

	// The full 0-based range is [0, N).
	targets, err = lineio.ParseProblem(strings.NewReader("4\n0 1 2 3\n"), lineio.WithZeroBased())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, targets)
}

func TestParseProblem_ZeroBasedOutOfRange(t *testing.T) {
	// Target N is valid 1-based but out of range 0-based.
	_, err := lineio.ParseProblem(strings.NewReader("3 1 2 3"), lineio.WithZeroBased())
	require.ErrorIs(t, err, lineio.ErrShortcutOutOfRange)

	_, err = lineio.ParseProblem(strings.NewReader("3 -1 1 2"), lineio.WithZeroBased())
	require.ErrorIs(t, err, lineio.ErrShortcutOutOfRange)
}

func TestParseProblem_ShortcutOutOfRange(t *testing.T) {
	_, err := lineio.ParseProblem(strings.NewReader("3 2 4 3"))
	require.ErrorIs(t, err, lineio.ErrShortcutOutOfRange)

	_, err = lineio.ParseProblem(strings.NewReader("3 0 2 3"))
	require.ErrorIs(t, err, lineio.ErrShortcutOutOfRange)
}

func TestParseProblem_LengthMismatch(t *testing.T) {
	// Deficit: N announces more targets than arrive.
	_, err := lineio.ParseProblem(strings.NewReader("3 2 2"))
	require.ErrorIs(t, err, lineio.ErrLengthMismatch)

	// Surplus: trailing tokens are rejected, not ignored.
	_, err = lineio.ParseProblem(strings.NewReader("3 2 2 3 1"))
	require.ErrorIs(t, err, lineio.ErrLengthMismatch)
}

func TestParseProblem_EmptyInput(t *testing.T) {
	_, err := lineio.ParseProblem(strings.NewReader(""))
	require.Error(t, err)
}

func TestFormatDistances(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, lineio.FormatDistances(&sb, []int{0, 1, 2, 2, 1}))
	require.Equal(t, "0 1 2 2 1\n", sb.String())
}

func TestFormatDistances_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, lineio.FormatDistances(&sb, nil))
	require.Equal(t, "\n", sb.String())
}
