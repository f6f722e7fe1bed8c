package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/blockfall/world"
)

var colorBackground = color.NRGBA{R: 24, G: 26, B: 33, A: 255}
var colorGameArea = color.NRGBA{R: 36, G: 39, B: 48, A: 255}
var colorEmptyCell = color.NRGBA{R: 16, G: 17, B: 22, A: 255}
var colorGrid = color.NRGBA{R: 44, G: 47, B: 58, A: 255}
var colorText = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
var colorFlash = color.NRGBA{R: 255, G: 255, B: 255, A: 140}
var colorBanner = color.NRGBA{R: 0, G: 0, B: 0, A: 190}
var colorDebugArea = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
var colorPlayBar = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
var colorPlayCursor = color.NRGBA{R: 251, G: 150, B: 32, A: 255}

// pieceColors is indexed by cell value, which is the piece type.
var pieceColors = [world.NumPieceTypes + 1]color.NRGBA{
	{},
	world.PieceT: {R: 160, G: 0, B: 240, A: 255},
	world.PieceI: {R: 0, G: 220, B: 240, A: 255},
	world.PieceS: {R: 0, G: 220, B: 0, A: 255},
	world.PieceZ: {R: 240, G: 0, B: 0, A: 255},
	world.PieceL: {R: 240, G: 160, B: 0, A: 255},
	world.PieceJ: {R: 0, G: 0, B: 240, A: 255},
	world.PieceO: {R: 240, G: 240, B: 0, A: 255},
}

func CellColor(val int) color.NRGBA {
	if val < 0 || val >= len(pieceColors) {
		return colorText
	}
	return pieceColors[val]
}

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	screen.Fill(colorBackground)

	game := SubImage(screen, g.gameArea)
	g.DrawPlayScreen(game)
	switch g.state {
	case PausedScreen:
		g.DrawBanner(game, "PAUSED", "P to continue")
	case Playback, DebugCrash:
		g.DrawDebugArea(SubImage(screen, g.debugArea))
	}
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image) {
	screen.Fill(colorGameArea)

	s := g.world.Snapshot()
	c := &g.world.Config
	cellSize := g.CellPixelSize

	g.DrawField(SubImage(screen, FieldArea(c, cellSize)), &s)
	g.DrawPanel(SubImage(screen, PanelArea(c, cellSize)), &s)

	if s.State == world.GameOver {
		g.DrawBanner(screen, "GAME OVER",
			fmt.Sprintf("score %d, R to restart", s.FinalScore))
	}
}

func (g *Gui) DrawField(screen *ebiten.Image, s *world.Snapshot) {
	cellSize := g.CellPixelSize
	var pt world.Pt
	for pt.Y = 0; pt.Y < len(s.Field); pt.Y++ {
		for pt.X = 0; pt.X < len(s.Field[pt.Y]); pt.X++ {
			r := CellRect(pt, cellSize)
			val := s.Cell(pt)
			switch {
			case val != 0:
				g.DrawCell(screen, r, CellColor(val))
			case s.IsGhost(pt):
				FillRect(screen, r, colorEmptyCell)
				StrokeRect(screen, r, 2, Fade(CellColor(int(s.ActiveType)), 0.6))
			default:
				FillRect(screen, r, colorEmptyCell)
				StrokeRect(screen, r, 1, colorGrid)
			}
		}
	}

	if f := g.visWorld.Current(); f != nil {
		// Fill would replace the cells, FillRect blends over them.
		FillRect(screen, NewRectangle(0, 0, screen.Bounds().Dx(),
			screen.Bounds().Dy()), Fade(colorFlash, f.Alpha()*0.5))
		DrawText(screen, g.defaultFont, f.Caption, true, true,
			Fade(colorText, f.Alpha()))
	}
}

// DrawCell draws an occupied cell with a darker border, so that neighboring
// cells of the same color stay distinguishable.
func (g *Gui) DrawCell(screen *ebiten.Image, r Rectangle, c color.NRGBA) {
	FillRect(screen, r, c)
	border := color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 255}
	StrokeRect(screen, r, float32(max(g.CellPixelSize/10, 1)), border)
}

func (g *Gui) DrawPanel(screen *ebiten.Image, s *world.Snapshot) {
	cellSize := g.CellPixelSize
	line := func(row int, msg string) {
		area := SubImage(screen,
			NewRectangle(0, row*cellSize, screen.Bounds().Dx(), cellSize))
		DrawText(area, g.smallFont, msg, false, true, colorText)
	}

	line(0, "NEXT")
	// The preview is a 4x4 box, the size of the largest shape, with the
	// next piece centered in it.
	box := SubImage(screen, NewRectangle(0, cellSize, 4*cellSize, 4*cellSize))
	box.Fill(colorEmptyCell)
	size := len(s.Next)
	offset := (4*cellSize - size*cellSize) / 2
	var pt world.Pt
	for pt.Y = 0; pt.Y < size; pt.Y++ {
		for pt.X = 0; pt.X < size; pt.X++ {
			if v := s.Next[pt.Y][pt.X]; v != 0 {
				r := CellRect(pt, cellSize).Translate(world.Pt{X: offset, Y: offset})
				g.DrawCell(box, r, CellColor(v))
			}
		}
	}

	line(6, fmt.Sprintf("SCORE %d", s.Score))
	line(7, fmt.Sprintf("LINES %d", s.Lines))
	line(8, fmt.Sprintf("LEVEL %d", s.Level))
	line(9, fmt.Sprintf("SPEED %dms", s.DropIntervalMs))
	line(11, fmt.Sprintf("BEST %d", g.bestScore))
	if g.state == Playback || g.state == DebugCrash {
		line(13, fmt.Sprintf("FRAME %d/%d", g.frameIdx,
			len(g.playthrough.History)))
	}
}

// DrawBanner darkens screen and writes a title with a hint under it.
func (g *Gui) DrawBanner(screen *ebiten.Image, title string, hint string) {
	h := screen.Bounds().Dy()
	w := screen.Bounds().Dx()
	FillRect(screen, NewRectangle(0, 0, w, h), colorBanner)
	DrawText(SubImage(screen, NewRectangle(0, h/2-2*g.CellPixelSize, w,
		2*g.CellPixelSize)), g.defaultFont, title, true, true, colorText)
	DrawText(SubImage(screen, NewRectangle(0, h/2, w, g.CellPixelSize)),
		g.smallFont, hint, true, true, colorText)
}

func (g *Gui) DrawDebugArea(screen *ebiten.Image) {
	screen.Fill(colorDebugArea)

	// Play bar.
	margin := g.CellPixelSize / 2
	barArea := NewRectangle(margin, margin, screen.Bounds().Dx()-2*margin,
		screen.Bounds().Dy()-2*margin)
	FillRect(screen, barArea, colorPlayBar)
	// Remember the region so that Update() can react when it's clicked.
	g.buttonPlaybackBar = barArea.Translate(g.debugArea.Min)

	// Play bar cursor.
	nFrames := max(len(g.playthrough.History), 1)
	cursorX := int(g.frameIdx) * barArea.Width() / nFrames
	FillRect(screen, NewRectangle(barArea.Min.X+cursorX-margin/4,
		barArea.Min.Y, margin/2, barArea.Height()), colorPlayCursor)
}
