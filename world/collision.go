package world

// Collides reports whether p cannot be where it is: some occupied cell of
// its shape is outside the field (left, right, above or below) or overlaps a
// locked cell. Out of bounds is a collision, never an indexing fault.
func Collides(f *Field, p *Piece) bool {
	size := p.Shape.Size()
	var i Pt
	for i.Y = 0; i.Y < size.Y; i.Y++ {
		for i.X = 0; i.X < size.X; i.X++ {
			if p.Shape.Get(i) == 0 {
				continue
			}
			pos := p.Pos.Plus(i)
			if !f.InBounds(pos) || f.Get(pos) != 0 {
				return true
			}
		}
	}
	return false
}
