package tetris

// Shift is a player-requested translation of the active piece.
type Shift int

const (
	ShiftLeft Shift = iota
	ShiftRight
	// ShiftDown performs one gravity step and restarts the drop timer.
	ShiftDown
)

func (s Shift) String() string {
	switch s {
	case ShiftLeft:
		return "left"
	case ShiftRight:
		return "right"
	case ShiftDown:
		return "down"
	default:
		return "unknown"
	}
}

// Rotation is a quarter-turn direction.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

func (r Rotation) String() string {
	switch r {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "unknown"
	}
}
