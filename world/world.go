package world

import "fmt"

type State int

const (
	Playing State = iota
	// Locking only exists while the lock sequence runs inside a single step.
	Locking
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Locking:
		return "Locking"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// World is the authoritative state of one game. It only changes through
// Step or the controller methods, and it never reads a clock or a global
// random source: the same Config, seed and inputs always produce the same
// sequence of states.
type World struct {
	Config Config
	Field  Field
	Active Piece
	Next   Piece
	Progress
	State State
	Rand  Rand

	// Accumulator is the time, in ms, since the last automatic drop.
	Accumulator int64
	LastTimeMs  int64
	ClockSet    bool

	// Events of the last step, for presenters. Step resets them.
	JustLocked   bool
	JustCleared  int
	JustGameOver bool

	// FinalScore is the score of the game that ended most recently.
	FinalScore    int
	GameOverCount int
}

func NewWorld(c Config, seed int64) (*World, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}
	w := &World{
		Config: c,
		Rand:   NewRand(seed),
	}
	w.newGame()
	return w, nil
}

// newGame starts from an empty field with fresh pieces and zero progress.
// The random generator keeps going, so consecutive games differ.
func (w *World) newGame() {
	w.Field = NewField(w.Config.Width, w.Config.Height)
	w.Progress = NewProgress(&w.Config)
	w.State = Playing
	w.Accumulator = 0
	w.Next = NewPiece(RandomPieceType(&w.Rand))
	w.spawn()
}

// Restart throws away the current game, over or not, and starts a new one.
func (w *World) Restart() {
	w.newGame()
}

// Step runs one tick: the input's events are applied in a fixed order, then
// the clock advances to input.TimeMs.
func (w *World) Step(input PlayerInput) {
	w.JustLocked = false
	w.JustCleared = 0
	w.JustGameOver = false

	if input.Restart {
		w.Restart()
	}
	if input.MoveLeft {
		w.MoveHorizontal(-1)
	}
	if input.MoveRight {
		w.MoveHorizontal(1)
	}
	if input.RotateLeft {
		w.RotateWithWallKick(-1)
	}
	if input.RotateRight {
		w.RotateWithWallKick(1)
	}
	if input.SoftDrop {
		w.SoftDrop()
	}
	if input.HardDrop {
		w.HardDrop()
	}
	w.Advance(input.TimeMs)
}

// Advance moves the clock to nowMs. The first call only records the time.
// When more than DropIntervalMs have accumulated, the active piece drops one
// row and the accumulator starts over.
func (w *World) Advance(nowMs int64) {
	if !w.ClockSet {
		w.ClockSet = true
		w.LastTimeMs = nowMs
		return
	}
	delta := max(nowMs-w.LastTimeMs, 0)
	w.LastTimeMs = nowMs
	if w.State != Playing {
		return
	}
	w.Accumulator += delta
	if w.Accumulator > w.DropIntervalMs {
		w.drop()
		w.Accumulator = 0
	}
}

// spawn makes Next the active piece at the top center of the field and
// draws a new Next. If the new active piece has no room, the game is over.
func (w *World) spawn() {
	w.Active = w.Next
	w.Active.Pos = Pt{w.Field.Width()/2 - w.Active.Size()/2, 0}
	w.Next = NewPiece(RandomPieceType(&w.Rand))
	if Collides(&w.Field, &w.Active) {
		w.gameOver()
	}
}

// lock merges the active piece into the field, clears full rows, updates
// the progress and brings in the next piece. hardDropRows is how far the
// piece fell in a hard drop, 0 for any other kind of lock.
func (w *World) lock(hardDropRows int) {
	w.State = Locking
	w.Field.Merge(&w.Active)
	w.JustLocked = true
	cleared := ResolveLines(&w.Field)
	w.JustCleared += cleared
	w.AddLines(cleared, &w.Config)
	w.AddHardDrop(hardDropRows, &w.Config)
	w.State = Playing
	w.spawn()
}

func (w *World) gameOver() {
	w.FinalScore = w.Score
	w.GameOverCount++
	w.Field.Reset()
	w.Progress.Reset(&w.Config)
	w.Accumulator = 0
	w.State = GameOver
	w.JustGameOver = true
}

// GhostY is the row the active piece would land on after a hard drop.
func (w *World) GhostY() int {
	ghost := w.Active
	for {
		ghost.Pos.Y++
		if Collides(&w.Field, &ghost) {
			return ghost.Pos.Y - 1
		}
	}
}
