package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLines(t *testing.T) {
	f := fieldFromASCII(
		"1...",
		"2222",
		".3.3",
		"4444",
		"5555",
	)
	assert.Equal(t, 3, ResolveLines(&f))
	assert.Equal(t, asciiRows(
		"....",
		"....",
		"....",
		"1...",
		".3.3",
	), f.Rows())

	// Nothing to do on a field without full rows.
	assert.Equal(t, 0, ResolveLines(&f))
}

func TestResolveLines_WholeField(t *testing.T) {
	f := fieldFromASCII(
		"12",
		"34",
		"56",
	)
	assert.Equal(t, 3, ResolveLines(&f))
	assert.True(t, f.Empty())
}

func TestLineWeight(t *testing.T) {
	assert.Equal(t, 0, LineWeight(0, 100))
	assert.Equal(t, 100, LineWeight(1, 100))
	assert.Equal(t, 200, LineWeight(2, 100))
	assert.Equal(t, 400, LineWeight(3, 100))
	assert.Equal(t, 800, LineWeight(4, 100))
}

func TestLinesScore(t *testing.T) {
	assert.Equal(t, 0, LinesScore(0, 100))
	assert.Equal(t, 100, LinesScore(1, 100))
	assert.Equal(t, 300, LinesScore(2, 100))
	assert.Equal(t, 700, LinesScore(3, 100))
	assert.Equal(t, 1500, LinesScore(4, 100))
}

func TestClearCaption(t *testing.T) {
	assert.Equal(t, "SINGLE +100", ClearCaption(1, 100))
	assert.Equal(t, "DOUBLE +300", ClearCaption(2, 300))
	assert.Equal(t, "TETRIS +1500", ClearCaption(4, 1500))
	assert.Equal(t, "5 LINES +3100", ClearCaption(5, LinesScore(5, 100)))
}
