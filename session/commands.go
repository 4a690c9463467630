package session

import "github.com/plus3/blockfall/tetris"

// Commands buffers player actions until the next frame, where they are
// applied to the game in the order they were queued.
type Commands struct {
	actions []action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type actionKind int

const (
	actionShift actionKind = iota
	actionRotate
	actionHardDrop
)

type action struct {
	kind     actionKind
	shift    tetris.Shift
	rotation tetris.Rotation
}

// Shift queues a shift of the falling piece.
func (c *Commands) Shift(dir tetris.Shift) {
	c.actions = append(c.actions, action{kind: actionShift, shift: dir})
}

// Rotate queues a rotation of the falling piece.
func (c *Commands) Rotate(r tetris.Rotation) {
	c.actions = append(c.actions, action{kind: actionRotate, rotation: r})
}

// HardDrop queues a hard drop.
func (c *Commands) HardDrop() {
	c.actions = append(c.actions, action{kind: actionHardDrop})
}

// Defer queues a function to run after the frame's actions were applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued actions, not counting deferred functions.
func (c *Commands) Len() int {
	return len(c.actions)
}

// Flush applies all queued actions to game, runs deferred functions and
// resets the buffer.
func (c *Commands) Flush(game *tetris.Game) {
	for _, a := range c.actions {
		switch a.kind {
		case actionShift:
			game.Shift(a.shift)
		case actionRotate:
			game.Rotate(a.rotation)
		case actionHardDrop:
			game.HardDrop()
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.reset()
}

func (c *Commands) reset() {
	c.actions = c.actions[:0]
	c.defers = c.defers[:0]
}
