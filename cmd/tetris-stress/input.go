package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// RandomInput simulates a player mashing keys.
type RandomInput struct {
	rng  *rand.Rand
	rate float64
}

func NewRandomInput(rng *rand.Rand, rate float64) *RandomInput {
	return &RandomInput{rng: rng, rate: rate}
}

// Feed queues at most one action and reports whether it did.
func (r *RandomInput) Feed(cmds *session.Commands) bool {
	if r.rng.Float64() >= r.rate {
		return false
	}

	switch n := r.rng.IntN(100); {
	case n < 30:
		cmds.Shift(tetris.ShiftLeft)
	case n < 60:
		cmds.Shift(tetris.ShiftRight)
	case n < 72:
		cmds.Rotate(tetris.Clockwise)
	case n < 85:
		cmds.Rotate(tetris.CounterClockwise)
	case n < 95:
		cmds.Shift(tetris.ShiftDown)
	default:
		cmds.HardDrop()
	}
	return true
}
