package tetris

import "time"

const (
	// RowsPerLevel is how many cleared rows advance the level by one.
	RowsPerLevel = 5

	DefaultInitialInterval = 750 * time.Millisecond
	DefaultMinInterval     = 200 * time.Millisecond
	// DefaultIntervalStep is how much faster gravity gets per level.
	DefaultIntervalStep = 40 * time.Millisecond
)

var lineScores = [...]int{0, 40, 100, 300, 1200}

// LineScore returns the base points for clearing rows in a single lock.
// Counts outside 0..4 are worth nothing.
func LineScore(rows int) int {
	if rows < 0 || rows >= len(lineScores) {
		return 0
	}
	return lineScores[rows]
}

// LevelFor derives the level from the cumulative number of cleared rows.
func LevelFor(clearedRows int) int {
	return clearedRows / RowsPerLevel
}

// MoveIntervalFor returns the gravity interval at level, never below minimum.
func MoveIntervalFor(level int, initial, minimum, step time.Duration) time.Duration {
	return max(minimum, initial-step*time.Duration(level))
}
