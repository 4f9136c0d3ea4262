package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInsideStringLiteralBasic(t *testing.T) {
	line := `x = "a ~ish b"`
	pos := len(`x = "a `)
	assert.True(t, IsInsideStringLiteral(line, pos))
	assert.False(t, IsInsideStringLiteral(line, 0))
}

func TestEffectiveLineStripsComment(t *testing.T) {
	idx := NewLineIndex(`~sometimes (x > 0): # fire sometimes`)
	assert.Equal(t, `~sometimes (x > 0): `, idx.EffectiveLine())
}

func TestCommentMarkerInsideStringIsNotAComment(t *testing.T) {
	idx := NewLineIndex(`y = "not # a comment"`)
	assert.Equal(t, -1, idx.commentStart)
}

func TestFindConstructsMatchesSometimesBlock(t *testing.T) {
	matches := FindConstructs("~sometimes (x > 0):")
	require.Len(t, matches, 1)
	assert.Equal(t, "sometimes", matches[0].Name)
	assert.Equal(t, "x > 0", matches[0].Captures["condition"])
}

func TestFindConstructsIgnoresMatchInsideStringLiteral(t *testing.T) {
	matches := FindConstructs(`sorta_print("~sometimes (x): ")`)
	assert.Empty(t, matches)
}

func TestFindConstructsMaybeFor(t *testing.T) {
	matches := FindConstructs("~maybe_for item in items:")
	require.Len(t, matches, 1)
	assert.Equal(t, "maybe_for", matches[0].Name)
	assert.Equal(t, "item", matches[0].Captures["var"])
	assert.Equal(t, "items", matches[0].Captures["iterable"])
}

func TestFindIshConstructsStandaloneAssignment(t *testing.T) {
	line := "x ~ish 7"
	matches := FindIshConstructs(line)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "7", line[m.RightStart:m.RightEnd])
	assert.Equal(t, "x", line[m.LeftStart:m.LeftEnd])
}

func TestFindIshConstructsInComparison(t *testing.T) {
	line := "if x ~ish 7:"
	matches := FindIshConstructs(line)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "7", line[m.RightStart:m.RightEnd])
}

func TestFindIshConstructsRightOperandRespectsParens(t *testing.T) {
	line := "y = x ~ish (a + b), z"
	matches := FindIshConstructs(line)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "(a + b)", line[m.RightStart:m.RightEnd])
}

func TestFindWelpConstructsBasic(t *testing.T) {
	line := "y = risky() ~welp 0"
	matches := FindWelpConstructs(line)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "risky()", line[m.LeftStart:m.LeftEnd])
	assert.Equal(t, "0", line[m.RightStart:m.RightEnd])
}

func TestFindWelpConstructsStopsAtAssignment(t *testing.T) {
	line := "y = a + risky() ~welp 0"
	matches := FindWelpConstructs(line)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "a + risky()", line[m.LeftStart:m.LeftEnd])
}

func TestFindDriftConstructs(t *testing.T) {
	line := "print(balance ~drift)"
	matches := FindDriftConstructs(line)
	require.Len(t, matches, 1)
	assert.Equal(t, "balance", matches[0].Var)
}

func TestFindWelpConstructsDoesNotStopOnComparisonOperators(t *testing.T) {
	line := "y = (a == b) ~welp False"
	matches := FindWelpConstructs(line)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "(a == b)", line[m.LeftStart:m.LeftEnd])
}
