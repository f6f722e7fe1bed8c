package world

import "fmt"

// Field is the grid of locked cells. Its dimensions are fixed at creation.
// Rows are indexed from the top (row 0) to the bottom (row Height-1).
type Field struct {
	m Mat
}

func NewField(width, height int) Field {
	if width <= 0 || height <= 0 {
		panic(fmt.Errorf("invalid field size: %dx%d", width, height))
	}
	return Field{m: NewMat(Pt{width, height})}
}

// NewFieldFromRows builds a field from explicit rows, top row first.
func NewFieldFromRows(rows [][]int) Field {
	return Field{m: NewMatFromRows(rows)}
}

func (f *Field) Width() int {
	return f.m.Size().X
}

func (f *Field) Height() int {
	return f.m.Size().Y
}

func (f *Field) InBounds(pt Pt) bool {
	return f.m.InBounds(pt)
}

func (f *Field) Get(pt Pt) int {
	return f.m.Get(pt)
}

func (f *Field) Set(pt Pt, val int) {
	f.m.Set(pt, val)
}

// Rows returns a copy of the grid.
func (f *Field) Rows() [][]int {
	return f.m.Rows()
}

func (f *Field) Clone() Field {
	return Field{m: f.m.Clone()}
}

func (f *Field) RowIsFull(y int) bool {
	for _, v := range f.m.row(y) {
		if v == 0 {
			return false
		}
	}
	return true
}

// ClearRow removes row y. Every row above it moves down by one and an empty
// row appears at the top.
func (f *Field) ClearRow(y int) {
	for ; y > 0; y-- {
		copy(f.m.row(y), f.m.row(y-1))
	}
	clear(f.m.row(0))
}

// Merge writes the occupied cells of p into the field. The caller is
// responsible for p being in a position where it does not collide.
func (f *Field) Merge(p *Piece) {
	size := p.Shape.Size()
	var i Pt
	for i.Y = 0; i.Y < size.Y; i.Y++ {
		for i.X = 0; i.X < size.X; i.X++ {
			v := p.Shape.Get(i)
			if v == 0 {
				continue
			}
			pos := p.Pos.Plus(i)
			Assert(f.InBounds(pos))
			f.m.Set(pos, v)
		}
	}
}

func (f *Field) Reset() {
	clear(f.m.cells)
}

func (f *Field) Empty() bool {
	for _, v := range f.m.cells {
		if v != 0 {
			return false
		}
	}
	return true
}
