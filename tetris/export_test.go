package tetris

// SetClearedRows lets tests start a game partway through a level.
func (g *Game) SetClearedRows(n int) {
	g.clearedRows = n
}
