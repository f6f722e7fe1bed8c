package world

import "strings"

// fieldFromASCII builds a field from one string per row, top row first.
// '.' is an empty cell and a digit is a cell of that value.
func fieldFromASCII(lines ...string) Field {
	rows := make([][]int, len(lines))
	for y, line := range lines {
		line = strings.ReplaceAll(line, " ", "")
		rows[y] = make([]int, len(line))
		for x, c := range line {
			if c != '.' {
				rows[y][x] = int(c - '0')
			}
		}
	}
	return NewFieldFromRows(rows)
}

// asciiRows is fieldFromASCII(lines...).Rows().
func asciiRows(lines ...string) [][]int {
	f := fieldFromASCII(lines...)
	return f.Rows()
}

// newTestWorld returns a world on the default 10x20 field.
func newTestWorld(t interface{ Fatal(...any) }) *World {
	w, err := NewWorld(DefaultConfig(), 0)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

// fillRow sets every cell of row y to val, except the listed columns.
func fillRow(f *Field, y int, val int, except ...int) {
	for x := 0; x < f.Width(); x++ {
		skip := false
		for _, e := range except {
			if e == x {
				skip = true
			}
		}
		if !skip {
			f.Set(Pt{x, y}, val)
		}
	}
}

// randomPlaythrough makes a playthrough of n ticks 16ms apart, with input
// events picked by a generator seeded with seed.
func randomPlaythrough(seed int64, n int) Playthrough {
	p := NewPlaythrough(DefaultConfig(), seed)
	r := NewRand(seed)
	for i := range n {
		input := PlayerInput{TimeMs: int64(i) * 16}
		// Roughly one event every 4 ticks.
		if r.RInt(0, 3) == 0 {
			input = input.With(Event(r.RInt(int64(MoveLeft), int64(HardDrop))))
		}
		// Start over now and then, so a long history spans several games.
		if r.RInt(0, 499) == 0 {
			input = input.With(Restart)
		}
		p.History = append(p.History, input)
	}
	return p
}
