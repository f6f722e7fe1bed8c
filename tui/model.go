package main

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marisvali/blockfall/world"
)

// TickInterval is how often the World's clock advances. Gravity is never
// faster than MinDropIntervalMs, so this is plenty.
const TickInterval = 16 * time.Millisecond

// FlashDuration is how long the line clear caption stays up.
const FlashDurationMs = 600

type tickMsg time.Time

type Model struct {
	world       *world.World
	playthrough world.Playthrough
	log         *slog.Logger
	width       int
	height      int
	paused      bool
	// playMs is the World's clock: the time spent playing, pauses excluded.
	playMs       int64
	lastTick     time.Time
	bestScore    int
	flash        string
	flashUntilMs int64
}

func NewModel(c world.Config, seed int64, log *slog.Logger) (Model, error) {
	w, err := world.NewWorld(c, seed)
	if err != nil {
		return Model{}, err
	}
	return Model{
		world:       w,
		playthrough: world.NewPlaythrough(c, seed),
		log:         log,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Event maps a key to the World event it triggers.
func Event(key string) (world.Event, bool) {
	switch key {
	case "left", "h", "a":
		return world.MoveLeft, true
	case "right", "l", "d":
		return world.MoveRight, true
	case "down", "j", "s":
		return world.SoftDrop, true
	case "up", "x", "k", "w":
		return world.RotateRight, true
	case "z", "q":
		return world.RotateLeft, true
	case " ":
		return world.HardDrop, true
	case "r":
		return world.Restart, true
	}
	return 0, false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		t := time.Time(msg)
		if !m.lastTick.IsZero() && !m.paused {
			m.playMs += t.Sub(m.lastTick).Milliseconds()
		}
		m.lastTick = t
		if !m.paused {
			m.step(world.PlayerInput{TimeMs: m.playMs})
		}
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "p":
			m.paused = !m.paused
			m.log.Debug("pause", "paused", m.paused, "ms", m.playMs)
			return m, nil
		}
		if m.paused {
			return m, nil
		}
		if e, ok := Event(msg.String()); ok {
			m.step(world.PlayerInput{TimeMs: m.playMs}.With(e))
		}
	}
	return m, nil
}

// step feeds one input to the World and records it.
func (m *Model) step(input world.PlayerInput) {
	m.playthrough.History = append(m.playthrough.History, input)
	m.world.Step(input)

	if m.world.JustCleared > 0 {
		delta := world.LinesScore(m.world.JustCleared, m.world.Config.LineClearBase)
		m.flash = world.ClearCaption(m.world.JustCleared, delta)
		m.flashUntilMs = m.playMs + FlashDurationMs
		m.log.Debug("lines cleared", "rows", m.world.JustCleared,
			"score", m.world.Score, "level", m.world.Level)
	}
	if m.world.JustGameOver {
		m.bestScore = max(m.bestScore, m.world.FinalScore)
		m.log.Info("game over", "score", m.world.FinalScore,
			"games", m.world.GameOverCount)
	}
	if input.Restart {
		m.log.Info("restart")
	}
}

// Flash is the caption to show, empty when there is none.
func (m Model) Flash() string {
	if m.playMs >= m.flashUntilMs {
		return ""
	}
	return m.flash
}
