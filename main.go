package main

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/blockfall/world"
	"golang.org/x/image/font"
)

// ReleaseVersion labels an executable given to someone to play. It must
// change every time world.SimulationVersion or world.InputVersion change,
// and also whenever anything else the player experiences changes (colors,
// layout, key bindings), so that a recording can always be traced back to
// the build that produced it.
const ReleaseVersion = 1

// TPS is the number of Update calls per second. The World's clock is
// derived from the number of frames played, not from the wall clock, so a
// recorded playthrough replays exactly.
const TPS = 60

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	PausedScreen
	Playback
	DebugCrash
)

type Gui struct {
	GuiConfig
	world             *world.World
	visWorld          VisWorld
	FSys              FS
	folderWatcher     FolderWatcher
	defaultFont       font.Face
	smallFont         font.Face
	playthrough       world.Playthrough
	frameIdx          int64
	state             GameState
	playbackPaused    bool
	pressedKeys       []ebiten.Key
	justPressedKeys   []ebiten.Key // keys pressed in this frame
	FrameSkipArrow    int64
	FrameSkipShift    int64
	enableDebugArea   bool
	gameArea          Rectangle
	debugArea         Rectangle
	buttonPlaybackBar Rectangle
	bestScore         int
	log               *slog.Logger
}

type GuiConfig struct {
	StartState    string       `yaml:"StartState"`
	PlaybackFile  string       `yaml:"PlaybackFile"`
	RecordToFile  bool         `yaml:"RecordToFile"`
	RecordingFile string       `yaml:"RecordingFile"`
	CellPixelSize int          `yaml:"CellPixelSize"`
	Seed          int64        `yaml:"Seed"`
	World         world.Config `yaml:"World"`
}

func main() {
	var g Gui
	g.log = slog.New(slog.NewTextHandler(os.Stderr, nil)).
		With("release", ReleaseVersion)
	g.FrameSkipArrow = 1
	g.FrameSkipShift = 10

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		// Running from the source folder: the data can be edited while the
		// game runs and gets reloaded.
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		g.folderWatcher.FolderContentsChanged()
	}

	g.LoadGuiData()

	// A file given on the command line is always played back.
	if len(os.Args) == 2 {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Play":
		g.state = PlayScreen
		seed := g.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.playthrough = world.NewPlaythrough(g.World, seed)
	case "Playback":
		g.state = Playback
		g.enableDebugArea = true
		g.playthrough = LoadPlaythrough(g.PlaybackFile)
	case "DebugCrash":
		g.state = DebugCrash
		g.enableDebugArea = true
		g.playthrough = LoadPlaythrough(g.PlaybackFile)
	default:
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = NewWorldFromPlaythrough(g.playthrough)
	g.log.Info("starting",
		"state", g.StartState,
		"playthrough", g.playthrough.Id,
		"seed", g.playthrough.Seed,
		"frames", len(g.playthrough.History))

	// The last input caused the crash, so run everything except the last
	// input. Pressing a key then steps into the bug.
	if g.state == DebugCrash {
		g.frameIdx = max(int64(len(g.playthrough.History))-1, 0)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}

	ebiten.SetTPS(TPS)
	g.UpdateWindowSize()
	err := ebiten.RunGame(&g)
	Check(err)
}
