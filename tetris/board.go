package tetris

import (
	"errors"
	"fmt"
)

// SpawnRows is the height of the spawn buffer at the top of the board. Any
// settled cell inside it after a lock ends the game.
const SpawnRows = 4

// ErrInvalidCells is returned by NewBoardFromCells for a malformed snapshot.
var ErrInvalidCells = errors.New("invalid board cells")

// Board is the well of settled cells. A cell holds 0 when empty or the
// locking piece's Shape+1.
type Board struct {
	width  int
	height int
	cells  []uint8
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// NewBoardFromCells creates a board from a row-major snapshot such as the
// one returned by Cells.
func NewBoardFromCells(width, height int, cells []uint8) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidCells, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrInvalidCells, len(cells), width, height)
	}
	for i, v := range cells {
		if v > ShapeCount {
			return nil, fmt.Errorf("%w: cell %d has value %d", ErrInvalidCells, i, v)
		}
	}
	b := NewBoard(width, height)
	copy(b.cells, cells)
	return b, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// CellAt returns the value stored at (x, y). It panics outside the board.
func (b *Board) CellAt(x, y int) uint8 {
	if !b.contains(x, y) {
		panic(fmt.Sprintf("tetris: board cell (%d, %d) out of range for %dx%d", x, y, b.width, b.height))
	}
	return b.cells[x+y*b.width]
}

// Cells returns a row-major copy of the grid.
func (b *Board) Cells() []uint8 {
	return append([]uint8(nil), b.cells...)
}

// Clone returns an independent copy of b.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  b.Cells(),
	}
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

func (b *Board) contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Stamp writes p's occupied cells at origin (x, y). The caller must have
// checked the placement with Overlaps.
func (b *Board) Stamp(p Piece, x, y int) {
	value := uint8(p.shape) + 1
	for _, c := range p.Cells() {
		bx, by := x+c.X, y+c.Y
		if !b.contains(bx, by) {
			panic(fmt.Sprintf("tetris: stamping %s at (%d, %d) leaves the board", p.shape, x, y))
		}
		b.cells[bx+by*b.width] = value
	}
}

// ClearFullRows empties every full row, then compacts the remaining rows
// downward, keeping their order. It returns the number of rows cleared.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			clear(b.row(y))
			cleared++
		}
	}
	if cleared > 0 {
		b.compact()
	}
	return cleared
}

// compact walks up from the bottom with two cursors: empty marks the lowest
// empty row and filled the nearest non-empty row above it. Their contents are
// swapped and both cursors move up until the top is reached.
func (b *Board) compact() {
	empty := b.height - 1
	for empty >= 0 && !b.rowEmpty(empty) {
		empty--
	}
	filled := empty - 1
	for filled >= 0 {
		if b.rowEmpty(filled) {
			filled--
			continue
		}
		b.swapRows(empty, filled)
		empty--
		filled--
	}
}

// IsOverTop reports whether any cell in the spawn buffer is occupied.
func (b *Board) IsOverTop() bool {
	for y := 0; y < SpawnRows && y < b.height; y++ {
		if !b.rowEmpty(y) {
			return true
		}
	}
	return false
}

func (b *Board) row(y int) []uint8 {
	return b.cells[y*b.width : (y+1)*b.width]
}

func (b *Board) rowFull(y int) bool {
	for _, v := range b.row(y) {
		if v == 0 {
			return false
		}
	}
	return true
}

func (b *Board) rowEmpty(y int) bool {
	for _, v := range b.row(y) {
		if v != 0 {
			return false
		}
	}
	return true
}

func (b *Board) swapRows(a, c int) {
	ra, rc := b.row(a), b.row(c)
	for i := range ra {
		ra[i], rc[i] = rc[i], ra[i]
	}
}
