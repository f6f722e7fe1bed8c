package world

// Snapshot is a read-only copy of everything a presenter needs to draw a
// frame. It shares no memory with the World it was taken from.
type Snapshot struct {
	Field          [][]int
	Active         [][]int
	ActivePos      Pt
	ActiveType     PieceType
	GhostY         int
	Next           [][]int
	NextType       PieceType
	Score          int
	Lines          int
	Level          int
	DropIntervalMs int64
	State          State
	FinalScore     int
}

func (w *World) Snapshot() (s Snapshot) {
	s.Field = w.Field.Rows()
	s.Active = w.Active.Shape.Rows()
	s.ActivePos = w.Active.Pos
	s.ActiveType = w.Active.Type
	s.GhostY = w.GhostY()
	s.Next = w.Next.Shape.Rows()
	s.NextType = w.Next.Type
	s.Score = w.Score
	s.Lines = w.Lines
	s.Level = w.Level
	s.DropIntervalMs = w.DropIntervalMs
	s.State = w.State
	s.FinalScore = w.FinalScore
	return
}

// Cell returns the value to paint at field position pt: the active piece
// covers the locked cells underneath it. Out of bounds positions are empty.
func (s *Snapshot) Cell(pt Pt) int {
	if pt.Y < 0 || pt.Y >= len(s.Field) || pt.X < 0 || pt.X >= len(s.Field[pt.Y]) {
		return 0
	}
	if s.State != GameOver {
		local := pt.Minus(s.ActivePos)
		if local.Y >= 0 && local.Y < len(s.Active) &&
			local.X >= 0 && local.X < len(s.Active[local.Y]) &&
			s.Active[local.Y][local.X] != 0 {
			return s.Active[local.Y][local.X]
		}
	}
	return s.Field[pt.Y][pt.X]
}

// IsGhost reports whether pt is covered by the active piece's landing
// preview and not by the piece itself.
func (s *Snapshot) IsGhost(pt Pt) bool {
	if s.State == GameOver {
		return false
	}
	local := pt.Minus(Pt{s.ActivePos.X, s.GhostY})
	if local.Y < 0 || local.Y >= len(s.Active) ||
		local.X < 0 || local.X >= len(s.Active[local.Y]) {
		return false
	}
	return s.Active[local.Y][local.X] != 0
}
