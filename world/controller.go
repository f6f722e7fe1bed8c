package world

// MoveHorizontal shifts the active piece one column left (dir < 0) or right
// (dir > 0). A move that would collide is not made. Returns whether the
// piece moved.
func (w *World) MoveHorizontal(dir int) bool {
	if w.State != Playing {
		return false
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	w.Active.Pos.X += step
	if Collides(&w.Field, &w.Active) {
		w.Active.Pos.X -= step
		return false
	}
	return true
}

// RotateWithWallKick rotates the active piece (see Piece.Rotate) and, if the
// result collides, tries horizontal offsets +1, -2, +3, -4, ... from the
// current position, so the piece visits x+1, x-1, x+2, x-2 and so on. The
// search gives up after shape size + field width attempts and restores the
// piece exactly as it was. Returns whether the rotation happened.
func (w *World) RotateWithWallKick(dir int) bool {
	if w.State != Playing {
		return false
	}
	original := w.Active.Clone()
	w.Active.Rotate(dir)

	maxAttempts := w.Active.Size() + w.Field.Width()
	offset := 1
	for range maxAttempts {
		if !Collides(&w.Field, &w.Active) {
			return true
		}
		w.Active.Pos.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
	}
	if !Collides(&w.Field, &w.Active) {
		return true
	}
	w.Active = original
	return false
}

// SoftDrop moves the active piece down one row. If it cannot go down, it
// locks where it is. Either way the automatic drop timer starts over.
func (w *World) SoftDrop() {
	if w.State != Playing {
		return
	}
	w.drop()
	w.Accumulator = 0
}

// HardDrop drops the active piece as far as it goes, locks it and awards
// the hard drop bonus. Returns the number of rows the piece fell.
func (w *World) HardDrop() (rowsDropped int) {
	if w.State != Playing {
		return 0
	}
	for {
		w.Active.Pos.Y++
		if Collides(&w.Field, &w.Active) {
			w.Active.Pos.Y--
			break
		}
		rowsDropped++
	}
	w.lock(rowsDropped)
	w.Accumulator = 0
	return
}

// drop is one step of gravity.
func (w *World) drop() {
	w.Active.Pos.Y++
	if Collides(&w.Field, &w.Active) {
		w.Active.Pos.Y--
		w.lock(0)
	}
}
