package tetris

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 24

	// spawnBoxWidth is the bounding box width centred at spawn.
	spawnBoxWidth = 4
)

var (
	ErrBoardTooSmall   = errors.New("board too small")
	ErrInvalidInterval = errors.New("invalid move interval")
	ErrNilSource       = errors.New("nil piece source")
)

// kickOffsets are the horizontal shifts tried, in order, when a rotation
// does not fit in place.
var kickOffsets = [...]int{-1, 1, -2, 2}

// LockEvent describes a piece becoming part of the board.
type LockEvent struct {
	Shape Shape
	X, Y  int
	// Rows is the number of rows the lock cleared.
	Rows int
	// Points is the score awarded for the lock.
	Points int
	// Level is the level after the cleared rows were counted.
	Level    int
	GameOver bool
}

type config struct {
	width, height int
	board         *Board
	source        Source
	initial       time.Duration
	minimum       time.Duration
	step          time.Duration
	onLock        []func(LockEvent)
}

// Option configures a Game.
type Option func(*config)

// WithSize sets the board dimensions. Ignored when WithBoard is also given.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithBoard starts the game on an existing board. The game takes ownership
// of b. If the first piece does not fit at its spawn position the game
// starts out over.
func WithBoard(b *Board) Option {
	return func(c *config) {
		c.board = b
	}
}

// WithSource sets where new pieces come from.
func WithSource(src Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithRand draws pieces from a 7-bag over rng.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.source = NewBag(rng)
	}
}

// WithIntervals overrides the gravity timing: the interval at level 0, the
// floor it never drops below, and the reduction per level.
func WithIntervals(initial, minimum, step time.Duration) Option {
	return func(c *config) {
		c.initial = initial
		c.minimum = minimum
		c.step = step
	}
}

// WithLockHandler registers fn to be called after every lock. It may be
// given more than once; handlers run in the order they were added.
func WithLockHandler(fn func(LockEvent)) Option {
	return func(c *config) {
		if fn != nil {
			c.onLock = append(c.onLock, fn)
		}
	}
}

func (c *config) validate() error {
	var errs []error

	width, height := c.width, c.height
	if c.board != nil {
		width, height = c.board.Width(), c.board.Height()
	}
	if width < spawnBoxWidth || height <= SpawnRows {
		errs = append(errs, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrBoardTooSmall, width, height, spawnBoxWidth, SpawnRows+1))
	}

	if c.initial <= 0 || c.minimum <= 0 || c.step < 0 || c.minimum > c.initial {
		errs = append(errs, fmt.Errorf("%w: initial %s, minimum %s, step %s",
			ErrInvalidInterval, c.initial, c.minimum, c.step))
	}

	if c.source == nil {
		errs = append(errs, ErrNilSource)
	}

	return errors.Join(errs...)
}

// Game is the state machine of a single play session. It is not safe for
// concurrent use; one driver feeds it time and actions.
type Game struct {
	board  *Board
	source Source
	onLock []func(LockEvent)

	active  Piece
	preview Piece
	x, y    int

	score       int
	clearedRows int
	locks       int
	gameOver    bool

	interval        time.Duration
	elapsed         time.Duration
	initialInterval time.Duration
	minInterval     time.Duration
	intervalStep    time.Duration
}

// NewGame creates a game ready to play. Without options it uses a 10x24
// board and a randomly seeded bag.
func NewGame(opts ...Option) (*Game, error) {
	c := &config{
		width:   DefaultWidth,
		height:  DefaultHeight,
		initial: DefaultInitialInterval,
		minimum: DefaultMinInterval,
		step:    DefaultIntervalStep,
		source:  NewBag(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	board := c.board
	if board == nil {
		board = NewBoard(c.width, c.height)
	}

	g := &Game{
		board:           board,
		source:          c.source,
		onLock:          c.onLock,
		initialInterval: c.initial,
		minInterval:     c.minimum,
		intervalStep:    c.step,
	}
	g.start()
	return g, nil
}

func (g *Game) start() {
	g.score = 0
	g.clearedRows = 0
	g.locks = 0
	g.elapsed = 0
	g.interval = g.initialInterval

	g.preview = g.source.Next()
	g.active = g.source.Next()
	g.x, g.y = g.spawnX(), 0

	// a supplied board may already block the spawn position
	g.gameOver = Overlaps(g.active, g.board, g.x, g.y)
}

// Reset empties the board and starts over, keeping the source and options.
func (g *Game) Reset() {
	g.board.Reset()
	g.start()
}

func (g *Game) spawnX() int {
	return (g.board.Width() - spawnBoxWidth) / 2
}

func (g *Game) Score() int {
	return g.score
}

// Level is derived from the cumulative number of cleared rows.
func (g *Game) Level() int {
	return LevelFor(g.clearedRows)
}

// ClearedRows returns the cumulative number of rows cleared.
func (g *Game) ClearedRows() int {
	return g.clearedRows
}

// Locks returns how many pieces have been locked.
func (g *Game) Locks() int {
	return g.locks
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

// Board returns a snapshot of the settled grid. Changes to it do not reach
// the game.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Active returns a copy of the falling piece.
func (g *Game) Active() Piece {
	return g.active
}

// Position returns the board origin of the falling piece's bounding box.
func (g *Game) Position() (x, y int) {
	return g.x, g.y
}

// Preview returns a copy of the piece that spawns next.
func (g *Game) Preview() Piece {
	return g.preview
}

// MoveInterval returns the current gravity interval.
func (g *Game) MoveInterval() time.Duration {
	return g.interval
}

// Elapsed returns the time accumulated toward the next gravity step.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// GhostY returns the y the falling piece would land at if dropped straight down.
func (g *Game) GhostY() int {
	y := g.y
	for !Overlaps(g.active, g.board, g.x, y+1) {
		y++
	}
	return y
}

// Tick advances the drop timer by dt. Once a full interval has built up it is
// consumed and the piece falls one row; a single call never drops more than
// one row however large dt is. Negative deltas are ignored.
func (g *Game) Tick(dt time.Duration) {
	if g.gameOver || dt < 0 {
		return
	}

	g.elapsed += dt
	if g.elapsed >= g.interval {
		g.elapsed -= g.interval
		g.fall()
	}
}

// Shift moves the falling piece. Moves that do not fit are ignored. It panics
// on an unknown direction.
func (g *Game) Shift(dir Shift) {
	if g.gameOver {
		return
	}

	switch dir {
	case ShiftLeft:
		if !Overlaps(g.active, g.board, g.x-1, g.y) {
			g.x--
		}
	case ShiftRight:
		if !Overlaps(g.active, g.board, g.x+1, g.y) {
			g.x++
		}
	case ShiftDown:
		g.fall()
		g.elapsed = 0
	default:
		panic(fmt.Sprintf("tetris: invalid shift %d", int(dir)))
	}
}

// Rotate turns the falling piece, shifting it sideways by up to two columns
// if it does not fit in place. If no position fits the piece is left as is.
func (g *Game) Rotate(r Rotation) {
	if g.gameOver {
		return
	}

	rotated := g.active.Rotated(r)
	if !Overlaps(rotated, g.board, g.x, g.y) {
		g.active = rotated
		return
	}

	for _, dx := range kickOffsets {
		if !Overlaps(rotated, g.board, g.x+dx, g.y) {
			g.active = rotated
			g.x += dx
			return
		}
	}
}

// HardDrop drops the falling piece to its landing row and locks it.
func (g *Game) HardDrop() {
	if g.gameOver {
		return
	}

	g.y = g.GhostY()
	g.fall()
	g.elapsed = 0
}

// fall moves the piece down one row, or locks it when it is resting.
func (g *Game) fall() {
	if !Overlaps(g.active, g.board, g.x, g.y+1) {
		g.y++
		return
	}
	g.lock()
}

func (g *Game) lock() {
	g.board.Stamp(g.active, g.x, g.y)
	rows := g.board.ClearFullRows()
	g.clearedRows += rows
	g.locks++

	level := g.Level()
	g.interval = MoveIntervalFor(level, g.initialInterval, g.minInterval, g.intervalStep)

	points := LineScore(rows) * (level + 1)
	g.score += points

	event := LockEvent{
		Shape:  g.active.Shape(),
		X:      g.x,
		Y:      g.y,
		Rows:   rows,
		Points: points,
		Level:  level,
	}

	if g.board.IsOverTop() {
		g.gameOver = true
		event.GameOver = true
	} else {
		g.active = g.preview
		g.x, g.y = g.spawnX(), 0
		g.preview = g.source.Next()
	}

	for _, fn := range g.onLock {
		fn(event)
	}
}
