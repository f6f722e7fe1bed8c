package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/blockfall/world"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Read over and over until a full read works. A file being saved in an
	// editor while we read it should not crash the game.
	// Reading from the embedded filesystem must crash right away though,
	// nothing is going to fix it.
	previousVal := CheckCrashes
	if g.folderWatcher.Folder != "" {
		CheckCrashes = false
	}
	var cfg GuiConfig
	for {
		CheckFailed = nil
		cfg = GuiConfig{World: world.DefaultConfig()}
		LoadYAML(g.FSys, "data/config.yaml", &cfg)
		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	// A complete file with a rejected config won't get better by reading it
	// again. Keep playing with the old config until the file is edited.
	if err := cfg.World.Validate(); err != nil {
		if g.world == nil {
			Check(err)
		}
		g.log.Error("rejected config, keeping the previous one", "err", err)
		return
	}
	g.GuiConfig = cfg

	if g.CellPixelSize <= 0 {
		g.CellPixelSize = 40
	}

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    float64(g.CellPixelSize) * 0.8,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
	g.smallFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    float64(g.CellPixelSize) * 0.5,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}

func (g *Gui) UpdateWindowSize() {
	width, height := ebiten.ScreenSizeInFullscreen()
	size := min(width, height) * 8 / 10
	c := &g.world.Config
	ebiten.SetWindowSize(size*GameWidthCells(c)/GameHeightCells(c), size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Blockfall")
}
