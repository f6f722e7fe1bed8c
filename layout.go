package main

import "github.com/marisvali/blockfall/world"

// Visual areas
// ------------
//
// All sizes are multiples of CellPixelSize.
//
// - The field area: the grid of the World, one square per cell.
// - The panel area: to the right of the field. Next piece, score, level,
// lines.
// - The game area: the field and the panel, with a one cell margin around
// and between them. Its size depends only on the config.
// - The debug area: below the game area, only in Playback and DebugCrash.
// Holds the play bar.
// - The screen: the game area, the debug area and whatever margins are
// needed to fill the window. Its size is known only at run time.

const PanelWidthCells = 6
const DebugHeightCells = 2

func GameWidthCells(c *world.Config) int {
	return 1 + c.Width + 1 + PanelWidthCells + 1
}

func GameHeightCells(c *world.Config) int {
	return 1 + c.Height + 1
}

// FieldArea is relative to the game area.
func FieldArea(c *world.Config, cellSize int) Rectangle {
	return NewRectangle(cellSize, cellSize, c.Width*cellSize, c.Height*cellSize)
}

// PanelArea is relative to the game area.
func PanelArea(c *world.Config, cellSize int) Rectangle {
	return NewRectangle((c.Width+2)*cellSize, cellSize,
		PanelWidthCells*cellSize, c.Height*cellSize)
}

// CellRect is the square of a field cell, relative to the field area.
func CellRect(pt world.Pt, cellSize int) Rectangle {
	return NewRectangle(pt.X*cellSize, pt.Y*cellSize, cellSize, cellSize)
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	defer g.HandlePanic()

	// ebitengine scales the bitmap returned here to the window, keeping its
	// aspect ratio. So:
	// - return a bitmap with the aspect ratio of the window, so that the
	// whole window gets covered
	// - make it just large enough for the game area (plus the debug area)
	// to fit in it, centered
	// The World keeps the config it started with, even if data/config.yaml
	// was edited since.
	c := &g.world.Config
	gameWidth := GameWidthCells(c) * g.CellPixelSize
	gameHeight := GameHeightCells(c) * g.CellPixelSize
	totalHeight := gameHeight
	if g.enableDebugArea {
		totalHeight += DebugHeightCells * g.CellPixelSize
	}

	// If the window is thinner than the game, the widths match and there is
	// space left above and below. Otherwise the heights match.
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(gameWidth) / float64(totalHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = gameWidth
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = totalHeight
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	g.gameArea = NewRectangle(
		(screenWidth-gameWidth)/2,
		(screenHeight-totalHeight)/2,
		gameWidth,
		gameHeight)
	g.debugArea = NewRectangle(
		g.gameArea.Min.X,
		g.gameArea.Max.Y,
		gameWidth,
		DebugHeightCells*g.CellPixelSize)
	return
}
