package session

import (
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// Stats is a snapshot of a session's bookkeeping.
type Stats struct {
	Frames int64
	Games  int64
	Locks  int64
	Rows   int64
	// BestScore is the highest final or current score seen.
	BestScore int
	Phases    []PhaseStats

	shapes *intmap.Map[tetris.Shape, int64]
	clears *intmap.Map[int, int64]
}

// PhaseStats holds timing for one part of a frame, or any other timed step.
type PhaseStats struct {
	Name  string
	Count int64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Last  time.Duration
	Total time.Duration
}

// ShapeCount returns how many pieces of shape were locked.
func (s Stats) ShapeCount(shape tetris.Shape) int64 {
	if s.shapes == nil {
		return 0
	}
	n, _ := s.shapes.Get(shape)
	return n
}

// ClearCount returns how many locks cleared exactly rows rows.
func (s Stats) ClearCount(rows int) int64 {
	if s.clears == nil {
		return 0
	}
	n, _ := s.clears.Get(rows)
	return n
}

// Timer keeps running min, max and average durations without storing
// samples.
type Timer struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func NewTimer(name string) *Timer {
	return &Timer{
		name: name,
		min:  time.Duration(1<<63 - 1),
	}
}

// Record adds one sample.
func (t *Timer) Record(d time.Duration) {
	t.count++
	t.last = d
	t.total += d

	if d < t.min {
		t.min = d
	}
	if d > t.max {
		t.max = d
	}
}

// Snapshot returns the samples so far. Min and Avg are zero before the first
// sample.
func (t *Timer) Snapshot() PhaseStats {
	stats := PhaseStats{
		Name:  t.name,
		Count: t.count,
		Max:   t.max,
		Last:  t.last,
		Total: t.total,
	}
	if t.count > 0 {
		stats.Min = t.min
		stats.Avg = t.total / time.Duration(t.count)
	}
	return stats
}

// maxClear is the most rows one lock can clear.
const maxClear = 4

// lockCounts tallies locks by shape and by rows cleared.
type lockCounts struct {
	shapes *intmap.Map[tetris.Shape, int64]
	clears *intmap.Map[int, int64]
}

func newLockCounts() *lockCounts {
	return &lockCounts{
		shapes: intmap.New[tetris.Shape, int64](tetris.ShapeCount),
		clears: intmap.New[int, int64](maxClear + 1),
	}
}

func (l *lockCounts) add(e tetris.LockEvent) {
	n, _ := l.shapes.Get(e.Shape)
	l.shapes.Put(e.Shape, n+1)

	n, _ = l.clears.Get(e.Rows)
	l.clears.Put(e.Rows, n+1)
}

func (l *lockCounts) copy() (*intmap.Map[tetris.Shape, int64], *intmap.Map[int, int64]) {
	shapes := intmap.New[tetris.Shape, int64](tetris.ShapeCount)
	for s := tetris.Shape(0); s < tetris.ShapeCount; s++ {
		if n, ok := l.shapes.Get(s); ok {
			shapes.Put(s, n)
		}
	}

	clears := intmap.New[int, int64](maxClear + 1)
	for rows := 0; rows <= maxClear; rows++ {
		if n, ok := l.clears.Get(rows); ok {
			clears.Put(rows, n)
		}
	}
	return shapes, clears
}
