package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	w := newTestWorld(t)
	w.Active = NewPiece(PieceO)
	w.Active.Pos = Pt{4, 0}
	w.Field.Set(Pt{0, 19}, 3)
	w.Score = 120

	s := w.Snapshot()
	assert.Equal(t, PieceO, s.ActiveType)
	assert.Equal(t, 18, s.GhostY)
	assert.Equal(t, 120, s.Score)
	assert.Equal(t, Playing, s.State)

	// The active piece is drawn over the field.
	assert.Equal(t, 7, s.Cell(Pt{4, 0}))
	assert.Equal(t, 7, s.Cell(Pt{5, 1}))
	assert.Equal(t, 3, s.Cell(Pt{0, 19}))
	assert.Equal(t, 0, s.Cell(Pt{6, 0}))
	assert.Equal(t, 0, s.Cell(Pt{-1, 0}))
	assert.Equal(t, 0, s.Cell(Pt{0, 20}))

	assert.True(t, s.IsGhost(Pt{4, 18}))
	assert.True(t, s.IsGhost(Pt{5, 19}))
	assert.False(t, s.IsGhost(Pt{6, 19}))
	assert.False(t, s.IsGhost(Pt{4, 17}))
}

func TestSnapshot_SharesNothingWithWorld(t *testing.T) {
	w := newTestWorld(t)
	s := w.Snapshot()
	s.Field[19][0] = 5
	s.Active[0][0] = 5
	s.Next[0][0] = 5

	assert.True(t, w.Field.Empty())
	active := NewPiece(w.Active.Type)
	next := NewPiece(w.Next.Type)
	assert.Equal(t, active.Shape.Rows(), w.Snapshot().Active)
	assert.Equal(t, next.Shape.Rows(), w.Snapshot().Next)
}

func TestSnapshot_GameOverHidesActivePiece(t *testing.T) {
	w := newTestWorld(t)
	w.Active = NewPiece(PieceO)
	w.Active.Pos = Pt{4, 0}
	w.gameOver()

	s := w.Snapshot()
	assert.Equal(t, GameOver, s.State)
	assert.Equal(t, 0, s.Cell(Pt{4, 0}))
	assert.False(t, s.IsGhost(Pt{4, 18}))
}
