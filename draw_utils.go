package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/marisvali/blockfall/world"
	"golang.org/x/image/font"
)

// SubImage returns a sub-region of screen.
// r is relative to screen: (0, 0) is the top-left pixel of screen, not of
// the window. ebitengine keeps the parent's coordinates in a sub-image, this
// doesn't.
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	minPt := screen.Bounds().Min
	r = r.Translate(world.Pt{X: minPt.X, Y: minPt.Y})
	return screen.SubImage(r.ImageRect()).(*ebiten.Image)
}

// FillRect fills r, given relative to screen.
func FillRect(screen *ebiten.Image, r Rectangle, c color.Color) {
	minPt := screen.Bounds().Min
	vector.DrawFilledRect(screen,
		float32(minPt.X+r.Min.X), float32(minPt.Y+r.Min.Y),
		float32(r.Width()), float32(r.Height()),
		c, false)
}

func StrokeRect(screen *ebiten.Image, r Rectangle, width float32, c color.Color) {
	minPt := screen.Bounds().Min
	vector.StrokeRect(screen,
		float32(minPt.X+r.Min.X), float32(minPt.Y+r.Min.Y),
		float32(r.Width()), float32(r.Height()),
		width, c, false)
}

// DrawText writes message inside screen, at the top or centered.
func DrawText(screen *ebiten.Image, face font.Face, message string,
	centerX bool, centerY bool, c color.Color) {
	// text.Draw takes the position of the text's origin, which is roughly
	// the lower-left corner of its bounds. Most of the text is above the
	// origin, a little bit (descenders) is below.
	textSize := text.BoundString(face, message)
	offsetX := 0
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	}
	offsetY := 0
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	}

	textX := screen.Bounds().Min.X + offsetX - textSize.Min.X
	textY := screen.Bounds().Min.Y + offsetY - textSize.Min.Y
	text.Draw(screen, message, face, textX, textY, c)
}

// Fade returns c with its alpha multiplied by alpha.
func Fade(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * alpha)
	return c
}
