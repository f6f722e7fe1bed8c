package main

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/blockfall/world"
)

// Held keys repeat after RepeatDelayFrames, once every RepeatEveryFrames.
const RepeatDelayFrames = 12
const RepeatEveryFrames = 3

func (g *Gui) Update() error {
	defer g.HandlePanic()

	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys[:0])
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys[:0])

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		g.log.Info("reloaded data", "folder", g.folderWatcher.Folder)
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case PausedScreen:
		g.UpdatePausedScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	return nil
}

// TimeMs is the World clock at frame frameIdx.
func TimeMs(frameIdx int64) int64 {
	return frameIdx * 1000 / TPS
}

// PlayerInputFromKeys turns the keyboard state of one frame into the input
// of one World step.
func (g *Gui) PlayerInputFromKeys() (input world.PlayerInput) {
	input.TimeMs = TimeMs(g.frameIdx)
	input.MoveLeft = g.Repeating(ebiten.KeyArrowLeft) || g.Repeating(ebiten.KeyA)
	input.MoveRight = g.Repeating(ebiten.KeyArrowRight) || g.Repeating(ebiten.KeyD)
	input.SoftDrop = g.Repeating(ebiten.KeyArrowDown) || g.Repeating(ebiten.KeyS)
	input.RotateLeft = g.JustPressed(ebiten.KeyZ) || g.JustPressed(ebiten.KeyQ)
	input.RotateRight = g.JustPressed(ebiten.KeyArrowUp) ||
		g.JustPressed(ebiten.KeyX) || g.JustPressed(ebiten.KeyW)
	input.HardDrop = g.JustPressed(ebiten.KeySpace)
	input.Restart = g.JustPressed(ebiten.KeyR)
	return
}

func (g *Gui) UpdatePlayScreen() {
	if g.JustPressed(ebiten.KeyP) || g.JustPressed(ebiten.KeyEscape) {
		g.state = PausedScreen
		return
	}

	input := g.PlayerInputFromKeys()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	g.StepWorld(input)
	g.frameIdx++
}

// StepWorld steps the World and everything that follows it.
func (g *Gui) StepWorld(input world.PlayerInput) {
	g.world.Step(input)
	g.visWorld.Step(g.world)
	if g.world.JustGameOver {
		g.bestScore = max(g.bestScore, g.world.FinalScore)
		if g.state == PlayScreen {
			g.log.Info("game over",
				"score", g.world.FinalScore,
				"best", g.bestScore,
				"frame", g.frameIdx)
		}
	}
}

// UpdatePausedScreen freezes the World. No inputs are recorded and the
// frame counter stops, so the World's clock stops as well.
func (g *Gui) UpdatePausedScreen() {
	if g.JustPressed(ebiten.KeyP) || g.JustPressed(ebiten.KeyEscape) {
		g.state = PlayScreen
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

// Repeating is true on the frame key is pressed and then regularly while it
// stays pressed.
func (g *Gui) Repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= RepeatDelayFrames && (d-RepeatDelayFrames)%RepeatEveryFrames == 0
}

func (g *Gui) CursorPos() world.Pt {
	x, y := ebiten.CursorPosition()
	return world.Pt{X: x, Y: y}
}

func (g *Gui) LeftClickPressedOn(button Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return button.ContainsPt(g.CursorPos())
}

// Rewind replays the playthrough from the start up to, but not including,
// frame targetFrameIdx.
func (g *Gui) Rewind(targetFrameIdx int64) {
	g.world = NewWorldFromPlaythrough(g.playthrough)
	g.visWorld = VisWorld{}
	for i := range targetFrameIdx {
		g.StepWorld(g.playthrough.History[i])
	}
	g.frameIdx = targetFrameIdx
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Jump to where the user clicked on the play bar.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		dx := int64(g.CursorPos().X - g.buttonPlaybackBar.Min.X)
		targetFrameIdx = dx * nFrames / int64(g.buttonPlaybackBar.Width())
	}

	if g.Pressed(ebiten.KeyArrowLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShift
	} else if g.Repeating(ebiten.KeyArrowLeft) {
		targetFrameIdx -= g.FrameSkipArrow
	}

	if g.Pressed(ebiten.KeyArrowRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShift
	} else if g.Repeating(ebiten.KeyArrowRight) {
		targetFrameIdx += g.FrameSkipArrow
	}

	// nFrames means everything was played.
	targetFrameIdx = max(min(targetFrameIdx, nFrames), 0)

	// Unpausing at the end starts over.
	if !g.playbackPaused && targetFrameIdx == nFrames {
		targetFrameIdx = 0
	}

	if targetFrameIdx != g.frameIdx {
		g.Rewind(targetFrameIdx)
	}

	if !g.playbackPaused && g.frameIdx < nFrames {
		g.StepWorld(g.playthrough.History[g.frameIdx])
		g.frameIdx++
		if g.frameIdx == nFrames {
			g.playbackPaused = true
		}
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	if g.JustPressed(ebiten.KeyArrowRight) && g.frameIdx < nFrames {
		g.StepWorld(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}

	// Go to the previous frame. There is no better way than replaying
	// everything from the beginning.
	if g.JustPressed(ebiten.KeyArrowLeft) && g.frameIdx > 0 {
		g.Rewind(g.frameIdx - 1)
	}
}
