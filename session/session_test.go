package session_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPropagatesGameErrors(t *testing.T) {
	s, err := session.New(tetris.WithSize(2, 2))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, tetris.ErrBoardTooSmall)
}

func TestOnceAppliesCommandsBeforeGravity(t *testing.T) {
	s := newSession(t, oPieces())
	g := s.Game()

	s.Commands().Shift(tetris.ShiftDown)
	s.Once(g.MoveInterval())

	// the soft drop reset the timer before the tick added a full interval
	_, y := g.Position()
	assert.Equal(t, 2, y)
	assert.Equal(t, time.Duration(0), g.Elapsed())
}

func TestOnceTicksGame(t *testing.T) {
	s := newSession(t, oPieces())

	for i := 0; i < 10; i++ {
		s.Once(100 * time.Millisecond)
	}

	_, y := s.Game().Position()
	assert.Equal(t, 1, y)
	assert.Equal(t, 250*time.Millisecond, s.Game().Elapsed())
	assert.Equal(t, int64(10), s.Stats().Frames)
}

func TestStatsCountLocks(t *testing.T) {
	s := newSession(t, oPieces())

	for _, column := range []int{0, 2, 4, 6, 8} {
		x, _ := s.Game().Position()
		for ; x > column; x-- {
			s.Commands().Shift(tetris.ShiftLeft)
		}
		for ; x < column; x++ {
			s.Commands().Shift(tetris.ShiftRight)
		}
		s.Commands().HardDrop()
		s.Once(0)
	}

	stats := s.Stats()
	assert.Equal(t, int64(5), stats.Frames)
	assert.Equal(t, int64(5), stats.Locks)
	assert.Equal(t, int64(2), stats.Rows)
	assert.Equal(t, int64(1), stats.Games)
	assert.Equal(t, 100, stats.BestScore)
	assert.Equal(t, int64(5), stats.ShapeCount(tetris.ShapeO))
	assert.Equal(t, int64(0), stats.ShapeCount(tetris.ShapeI))
	assert.Equal(t, int64(4), stats.ClearCount(0))
	assert.Equal(t, int64(1), stats.ClearCount(2))
	assert.Equal(t, int64(0), stats.ClearCount(4))
}

func TestStatsPhases(t *testing.T) {
	s := newSession(t, oPieces())
	for i := 0; i < 3; i++ {
		s.Once(time.Millisecond)
	}

	stats := s.Stats()
	require.Len(t, stats.Phases, 2)
	assert.Equal(t, session.PhaseCommands, stats.Phases[0].Name)
	assert.Equal(t, session.PhaseTick, stats.Phases[1].Name)
	for _, p := range stats.Phases {
		assert.Equal(t, int64(3), p.Count)
		assert.LessOrEqual(t, p.Min, p.Avg)
		assert.LessOrEqual(t, p.Avg, p.Max)
	}
}

func TestStatsBeforeAnyFrame(t *testing.T) {
	s := newSession(t, oPieces())

	stats := s.Stats()
	assert.Zero(t, stats.Frames)
	for _, p := range stats.Phases {
		assert.Zero(t, p.Min)
		assert.Zero(t, p.Avg)
	}
	assert.Zero(t, stats.ShapeCount(tetris.ShapeO))

	var empty session.Stats
	assert.Zero(t, empty.ClearCount(1))
}

func TestResetKeepsLifetimeStats(t *testing.T) {
	s := newSession(t, oPieces())

	for !s.Game().GameOver() {
		s.Commands().HardDrop()
		s.Once(0)
	}
	locks := s.Stats().Locks

	s.Commands().Shift(tetris.ShiftLeft)
	s.Reset()

	assert.False(t, s.Game().GameOver())
	assert.Equal(t, 0, s.Commands().Len(), "pending commands are dropped")
	stats := s.Stats()
	assert.Equal(t, int64(2), stats.Games)
	assert.Equal(t, locks, stats.Locks)

	s.Commands().HardDrop()
	s.Once(0)
	assert.Equal(t, locks+1, s.Stats().Locks)
}

func TestCallerLockHandlerStillRuns(t *testing.T) {
	var events []tetris.LockEvent
	s := newSession(t, oPieces(), tetris.WithLockHandler(func(e tetris.LockEvent) {
		events = append(events, e)
	}))

	s.Commands().HardDrop()
	s.Once(0)

	assert.Len(t, events, 1)
	assert.Equal(t, int64(1), s.Stats().Locks)
}

func TestSeededSessionsMatch(t *testing.T) {
	play := func() []int {
		s := newSession(t, tetris.WithRand(rand.New(rand.NewPCG(3, 4))))
		shapes := make([]int, 0)
		for i := 0; i < 200 && !s.Game().GameOver(); i++ {
			if i%3 == 0 {
				s.Commands().Rotate(tetris.Clockwise)
			}
			s.Commands().HardDrop()
			s.Once(16 * time.Millisecond)
			shapes = append(shapes, int(s.Game().Active().Shape()))
		}
		return shapes
	}

	assert.Equal(t, play(), play())
}
