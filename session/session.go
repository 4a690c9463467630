package session

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Phase names reported in Stats.Phases, in frame order.
const (
	PhaseCommands = "commands"
	PhaseTick     = "tick"
)

// Session drives one game frame by frame: queued commands are applied first,
// then gravity advances by the frame's delta. Statistics survive Reset so a
// session can cover many games.
type Session struct {
	game     *tetris.Game
	commands *Commands

	frames    int64
	games     int64
	locks     int64
	rows      int64
	bestScore int

	phases []*Timer
	counts *lockCounts
}

// New creates a session around a new game built from opts.
func New(opts ...tetris.Option) (*Session, error) {
	s := &Session{
		commands: newCommands(),
		phases:   []*Timer{NewTimer(PhaseCommands), NewTimer(PhaseTick)},
		counts:   newLockCounts(),
		games:    1,
	}

	opts = append([]tetris.Option{tetris.WithLockHandler(s.recordLock)}, opts...)
	game, err := tetris.NewGame(opts...)
	if err != nil {
		return nil, err
	}
	s.game = game
	return s, nil
}

// Game returns the driven game for reading state.
func (s *Session) Game() *tetris.Game {
	return s.game
}

// Commands returns the buffer applied at the start of the next frame.
func (s *Session) Commands() *Commands {
	return s.commands
}

// Once runs one frame with the given delta.
func (s *Session) Once(dt time.Duration) {
	start := time.Now()
	s.commands.Flush(s.game)
	s.phases[0].Record(time.Since(start))

	start = time.Now()
	s.game.Tick(dt)
	s.phases[1].Record(time.Since(start))

	s.frames++
	s.bestScore = max(s.bestScore, s.game.Score())
}

// Reset starts a new game. Pending commands are dropped.
func (s *Session) Reset() {
	s.commands.reset()
	s.game.Reset()
	s.games++
}

func (s *Session) recordLock(e tetris.LockEvent) {
	s.locks++
	s.rows += int64(e.Rows)
	s.counts.add(e)
}

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats {
	stats := Stats{
		Frames:    s.frames,
		Games:     s.games,
		Locks:     s.locks,
		Rows:      s.rows,
		BestScore: max(s.bestScore, s.game.Score()),
		Phases:    make([]PhaseStats, len(s.phases)),
	}
	for i, p := range s.phases {
		stats.Phases[i] = p.Snapshot()
	}
	stats.shapes, stats.clears = s.counts.copy()
	return stats
}
