package world

import "fmt"

// ResolveLines removes every full row of f and returns how many were
// removed. It scans from the bottom up and starts over after each removal,
// until a whole scan finds no full row.
func ResolveLines(f *Field) (cleared int) {
	for {
		full := -1
		for y := f.Height() - 1; y >= 0; y-- {
			if f.RowIsFull(y) {
				full = y
				break
			}
		}
		if full < 0 {
			return
		}
		f.ClearRow(full)
		cleared++
	}
}

// LineWeight is the score for the n-th row (1-based) cleared within a single
// pass: base, 2*base, 4*base, ...
func LineWeight(n int, base int) int {
	if n < 1 {
		return 0
	}
	return base << (n - 1)
}

// LinesScore is the total weight of count rows cleared in one pass.
func LinesScore(count int, base int) (score int) {
	for n := 1; n <= count; n++ {
		score += LineWeight(n, base)
	}
	return
}

var clearNames = [...]string{"", "SINGLE", "DOUBLE", "TRIPLE", "TETRIS"}

// ClearCaption names a line clear pass for display, e.g. "TETRIS +1500".
func ClearCaption(rows int, scoreDelta int) string {
	name := fmt.Sprintf("%d LINES", rows)
	if rows < len(clearNames) {
		name = clearNames[rows]
	}
	return fmt.Sprintf("%s +%d", name, scoreDelta)
}
