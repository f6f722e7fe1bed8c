package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides_SpawnOnEmptyField(t *testing.T) {
	f := NewField(10, 20)
	for _, pt := range allPieceTypes() {
		p := NewPiece(pt)
		p.Pos = Pt{f.Width()/2 - p.Size()/2, 0}
		assert.False(t, Collides(&f, &p), pt.String())
	}
}

func TestCollides_OutsideTheField(t *testing.T) {
	f := NewField(10, 20)
	for _, pt := range allPieceTypes() {
		p := NewPiece(pt)
		size := p.Size()
		for _, pos := range []Pt{
			{-size, 5},
			{f.Width(), 5},
			{3, f.Height()},
			{3, -size},
		} {
			p.Pos = pos
			assert.True(t, Collides(&f, &p), "%s at %v", pt, pos)
		}
	}
}

func TestCollides_EmptyShapeCellsMayLeaveTheField(t *testing.T) {
	f := NewField(10, 20)
	// The I piece only occupies column 1 of its shape.
	p := NewPiece(PieceI)
	p.Pos = Pt{-1, 0}
	assert.False(t, Collides(&f, &p))
	p.Pos = Pt{-2, 0}
	assert.True(t, Collides(&f, &p))
	// The T piece has an empty top row.
	tp := NewPiece(PieceT)
	tp.Pos = Pt{0, -1}
	assert.False(t, Collides(&f, &tp))
	tp.Pos = Pt{0, f.Height() - 2}
	assert.True(t, Collides(&f, &tp))
}

func TestCollides_LockedCells(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		pos      Pt
		expected bool
	}{
		{
			name: "free",
			field: fieldFromASCII(
				"....",
				"....",
				"....",
				"1111",
			),
			pos:      Pt{0, 0},
			expected: false,
		},
		{
			name: "resting on locked cells",
			field: fieldFromASCII(
				"....",
				"....",
				"....",
				"1111",
			),
			pos:      Pt{1, 1},
			expected: false,
		},
		{
			name: "overlapping a locked cell",
			field: fieldFromASCII(
				"....",
				"....",
				"..3.",
				"1111",
			),
			pos:      Pt{1, 1},
			expected: true,
		},
		{
			name: "overlapping the bottom row",
			field: fieldFromASCII(
				"....",
				"....",
				"....",
				"1111",
			),
			pos:      Pt{1, 2},
			expected: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPiece(PieceO)
			p.Pos = tt.pos
			assert.Equal(t, tt.expected, Collides(&tt.field, &p))
		})
	}
}
