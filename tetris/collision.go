package tetris

// Overlaps reports whether p placed with its origin at (x, y) would cover an
// occupied board cell or stick out of the board.
func Overlaps(p Piece, b *Board, x, y int) bool {
	for py := 0; py < p.size; py++ {
		for px := 0; px < p.size; px++ {
			if !p.cells[px+py*p.size] {
				continue
			}

			bx, by := x+px, y+py
			if !b.contains(bx, by) {
				return true
			}
			if b.cells[bx+by*b.width] != 0 {
				return true
			}
		}
	}

	return false
}
