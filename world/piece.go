package world

import (
	"fmt"
	"strings"
)

// PieceType identifies one of the 7 tetrominoes. Its numeric value is also
// the color id written into the field when the piece locks.
type PieceType int

const (
	PieceT PieceType = iota + 1
	PieceI
	PieceS
	PieceZ
	PieceL
	PieceJ
	PieceO
)

const NumPieceTypes = 7

var pieceLetters = [NumPieceTypes + 1]string{"", "T", "I", "S", "Z", "L", "J", "O"}

// catalog holds the rotation-zero shape of each piece type. Rows are listed
// top to bottom. Never hand these slices out, NewPiece copies them.
var catalog = [NumPieceTypes + 1][][]int{
	PieceT: {
		{0, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
	},
	PieceI: {
		{0, 2, 0, 0},
		{0, 2, 0, 0},
		{0, 2, 0, 0},
		{0, 2, 0, 0},
	},
	PieceS: {
		{0, 3, 3},
		{3, 3, 0},
		{0, 0, 0},
	},
	PieceZ: {
		{4, 4, 0},
		{0, 4, 4},
		{0, 0, 0},
	},
	PieceL: {
		{0, 5, 0},
		{0, 5, 0},
		{0, 5, 5},
	},
	PieceJ: {
		{0, 6, 0},
		{0, 6, 0},
		{6, 6, 0},
	},
	PieceO: {
		{7, 7},
		{7, 7},
	},
}

func init() {
	for t := PieceT; t <= PieceO; t++ {
		if err := checkShape(t, catalog[t]); err != nil {
			panic(err)
		}
	}
}

// checkShape rejects anything that is not a square matrix holding exactly 4
// cells of the piece's color.
func checkShape(t PieceType, rows [][]int) error {
	n := len(rows)
	if n < 2 || n > 4 {
		return fmt.Errorf("piece %s: shape size %d not in [2, 4]", t, n)
	}
	occupied := 0
	for y, row := range rows {
		if len(row) != n {
			return fmt.Errorf("piece %s: row %d has %d cells, shape is not "+
				"square", t, y, len(row))
		}
		for _, v := range row {
			if v == 0 {
				continue
			}
			if v != t.Color() {
				return fmt.Errorf("piece %s: cell value %d, expected %d", t, v,
					t.Color())
			}
			occupied++
		}
	}
	if occupied != 4 {
		return fmt.Errorf("piece %s: %d occupied cells, expected 4", t,
			occupied)
	}
	return nil
}

func (t PieceType) Valid() bool {
	return t >= PieceT && t <= PieceO
}

func (t PieceType) Color() int {
	return int(t)
}

func (t PieceType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PieceType(%d)", int(t))
	}
	return pieceLetters[t]
}

func PieceTypeFromLetter(letter string) (PieceType, error) {
	for t := PieceT; t <= PieceO; t++ {
		if strings.EqualFold(letter, pieceLetters[t]) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown piece letter %q", letter)
}

// RandomPieceType draws one of the 7 types with equal probability. Each draw
// is independent of the previous ones, so repeats are possible.
func RandomPieceType(r *Rand) PieceType {
	return PieceType(r.RInt(int64(PieceT), int64(PieceO)))
}

// Piece is a shape placed somewhere relative to the field. Pos is the field
// position of the shape's top-left corner. Each Piece owns its Shape.
type Piece struct {
	Type  PieceType
	Shape Mat
	Pos   Pt
}

// NewPiece returns a fresh piece of type t in its rotation-zero orientation.
// Mutating the result never affects the catalog or other pieces.
func NewPiece(t PieceType) Piece {
	if !t.Valid() {
		panic(fmt.Errorf("invalid piece type: %d", int(t)))
	}
	return Piece{Type: t, Shape: NewMatFromRows(catalog[t])}
}

func (p *Piece) Clone() Piece {
	c := *p
	c.Shape = p.Shape.Clone()
	return c
}

// Size is the side of the square shape matrix.
func (p *Piece) Size() int {
	return p.Shape.Size().X
}

// Rotate turns the shape 90 degrees in place, without moving Pos.
// dir = +1 rotates clockwise: transpose, then mirror every row.
// dir = -1 rotates counter-clockwise: transpose, then flip the row order.
// This is the reverse of the older "flip rows when positive" mapping, which
// turned the piece counter-clockwise for +1.
func (p *Piece) Rotate(dir int) {
	p.Shape.Transpose()
	if dir > 0 {
		p.Shape.ReverseCols()
	} else {
		p.Shape.ReverseRows()
	}
}

// Cells returns the field positions covered by the piece.
func (p *Piece) Cells() (cells []Pt) {
	size := p.Shape.Size()
	var i Pt
	for i.Y = 0; i.Y < size.Y; i.Y++ {
		for i.X = 0; i.X < size.X; i.X++ {
			if p.Shape.Get(i) != 0 {
				cells = append(cells, p.Pos.Plus(i))
			}
		}
	}
	return
}
