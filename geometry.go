package main

import (
	"image"

	"github.com/marisvali/blockfall/world"
)

// Rectangle is an area of the screen, in pixels. Min is included, Max is
// not, like image.Rectangle.
type Rectangle struct {
	Min world.Pt
	Max world.Pt
}

func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{world.Pt{X: x, Y: y}, world.Pt{X: x + width, Y: y + height}}
}

func (r Rectangle) Width() int {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) ContainsPt(pt world.Pt) bool {
	return pt.X >= r.Min.X && pt.X < r.Max.X && pt.Y >= r.Min.Y && pt.Y < r.Max.Y
}

// Translate moves r by offset.
func (r Rectangle) Translate(offset world.Pt) Rectangle {
	return Rectangle{r.Min.Plus(offset), r.Max.Plus(offset)}
}

func (r Rectangle) ImageRect() image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
