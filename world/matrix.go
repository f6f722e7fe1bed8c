package world

import "fmt"

// Mat is a dense grid of cell values stored row by row. A Mat value holds a
// reference to its cells, so copying a Mat does not copy the grid. Use Clone
// whenever two owners must not see each other's writes.
type Mat struct {
	cells []int
	size  Pt
}

func NewMat(size Pt) Mat {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Errorf("invalid matrix size: %dx%d", size.X, size.Y))
	}
	m := Mat{}
	m.size = size
	m.cells = make([]int, size.X*size.Y)
	return m
}

// NewMatFromRows copies rows into a new Mat. All rows must have the same,
// non-zero length.
func NewMatFromRows(rows [][]int) Mat {
	if len(rows) == 0 {
		panic(fmt.Errorf("matrix needs at least one row"))
	}
	m := NewMat(Pt{len(rows[0]), len(rows)})
	for y, row := range rows {
		if len(row) != m.size.X {
			panic(fmt.Errorf("row %d has %d cells, expected %d", y, len(row),
				m.size.X))
		}
		copy(m.row(y), row)
	}
	return m
}

func (m *Mat) Set(pos Pt, val int) {
	m.cells[pos.Y*m.size.X+pos.X] = val
}

func (m *Mat) Get(pos Pt) int {
	return m.cells[pos.Y*m.size.X+pos.X]
}

func (m *Mat) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < m.size.Y &&
		pt.X < m.size.X
}

func (m *Mat) Size() Pt {
	return m.size
}

func (m *Mat) Clone() Mat {
	c := *m
	c.cells = make([]int, len(m.cells))
	copy(c.cells, m.cells)
	return c
}

// Rows returns a copy of the grid as a slice of rows.
func (m *Mat) Rows() [][]int {
	rows := make([][]int, m.size.Y)
	for y := range rows {
		rows[y] = make([]int, m.size.X)
		copy(rows[y], m.row(y))
	}
	return rows
}

func (m *Mat) Equal(other Mat) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// row is a view into the cells of row y, not a copy.
func (m *Mat) row(y int) []int {
	return m.cells[y*m.size.X : (y+1)*m.size.X]
}

// Transpose swaps the cell at (x, y) with the cell at (y, x). Only square
// matrices can be transposed in place.
func (m *Mat) Transpose() {
	if m.size.X != m.size.Y {
		panic(fmt.Errorf("cannot transpose a %dx%d matrix in place",
			m.size.X, m.size.Y))
	}
	n := m.size.X
	for y := 0; y < n; y++ {
		for x := 0; x < y; x++ {
			a := Pt{x, y}
			b := Pt{y, x}
			va, vb := m.Get(a), m.Get(b)
			m.Set(a, vb)
			m.Set(b, va)
		}
	}
}

// ReverseRows flips the matrix upside down.
func (m *Mat) ReverseRows() {
	for top, bottom := 0, m.size.Y-1; top < bottom; top, bottom = top+1, bottom-1 {
		a, b := m.row(top), m.row(bottom)
		for x := range a {
			a[x], b[x] = b[x], a[x]
		}
	}
}

// ReverseCols mirrors every row left to right.
func (m *Mat) ReverseCols() {
	for y := 0; y < m.size.Y; y++ {
		r := m.row(y)
		for l, h := 0, len(r)-1; l < h; l, h = l+1, h-1 {
			r[l], r[h] = r[h], r[l]
		}
	}
}
