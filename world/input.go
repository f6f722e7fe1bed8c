package world

import "fmt"

// PlayerInput is everything the outside world tells the World during one
// tick. TimeMs is the tick source's clock and must not go backwards. The
// struct is fixed-size so that a history of inputs can be stored as raw
// bytes in a Playthrough.
type PlayerInput struct {
	TimeMs      int64
	MoveLeft    bool
	MoveRight   bool
	RotateLeft  bool
	RotateRight bool
	SoftDrop    bool
	HardDrop    bool
	Restart     bool
}

// Event is a single discrete command from the player.
type Event int

const (
	MoveLeft Event = iota
	MoveRight
	RotateLeft
	RotateRight
	SoftDrop
	HardDrop
	Restart
)

func (e Event) String() string {
	switch e {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case RotateLeft:
		return "RotateLeft"
	case RotateRight:
		return "RotateRight"
	case SoftDrop:
		return "SoftDrop"
	case HardDrop:
		return "HardDrop"
	case Restart:
		return "Restart"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// With returns a copy of p that also carries event e.
func (p PlayerInput) With(e Event) PlayerInput {
	switch e {
	case MoveLeft:
		p.MoveLeft = true
	case MoveRight:
		p.MoveRight = true
	case RotateLeft:
		p.RotateLeft = true
	case RotateRight:
		p.RotateRight = true
	case SoftDrop:
		p.SoftDrop = true
	case HardDrop:
		p.HardDrop = true
	case Restart:
		p.Restart = true
	default:
		panic(fmt.Errorf("unknown event: %d", int(e)))
	}
	return p
}

func (p PlayerInput) EventOccurred() bool {
	return p.MoveLeft || p.MoveRight || p.RotateLeft || p.RotateRight ||
		p.SoftDrop || p.HardDrop || p.Restart
}
