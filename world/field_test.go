package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_ClearRow(t *testing.T) {
	f := fieldFromASCII(
		"1..",
		".2.",
		"333",
		"..4",
	)
	f.ClearRow(2)
	assert.Equal(t, asciiRows(
		"...",
		"1..",
		".2.",
		"..4",
	), f.Rows())
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, 4, f.Height())

	// Clearing the top row only empties it.
	f.ClearRow(0)
	assert.Equal(t, asciiRows(
		"...",
		"1..",
		".2.",
		"..4",
	), f.Rows())
}

func TestField_RowIsFull(t *testing.T) {
	f := fieldFromASCII(
		"1.1",
		"123",
	)
	assert.False(t, f.RowIsFull(0))
	assert.True(t, f.RowIsFull(1))
}

func TestField_Merge(t *testing.T) {
	f := NewField(5, 5)
	p := NewPiece(PieceO)
	p.Pos = Pt{3, 3}
	f.Merge(&p)
	assert.Equal(t, asciiRows(
		".....",
		".....",
		".....",
		"...77",
		"...77",
	), f.Rows())

	// Empty cells of the shape never overwrite the field.
	f = fieldFromASCII(
		"9....",
		".....",
		".....",
		".....",
	)
	tp := NewPiece(PieceT)
	f.Merge(&tp)
	assert.Equal(t, asciiRows(
		"9....",
		"111..",
		".1...",
		".....",
	), f.Rows())
}

func TestField_ResetAndEmpty(t *testing.T) {
	f := fieldFromASCII(
		"..",
		".5",
	)
	assert.False(t, f.Empty())
	f.Reset()
	assert.True(t, f.Empty())
	assert.Equal(t, 2, f.Width())
	assert.Equal(t, 2, f.Height())
	assert.Panics(t, func() { NewField(0, 10) })
}

func TestField_CloneIsIndependent(t *testing.T) {
	f := NewField(4, 4)
	c := f.Clone()
	c.Set(Pt{1, 1}, 3)
	assert.Equal(t, 0, f.Get(Pt{1, 1}))
}
