package world

// Pt is a position in field coordinates. X grows to the right (columns) and
// Y grows downwards (rows), with (0, 0) being the top-left cell.
type Pt struct {
	X int
	Y int
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}
