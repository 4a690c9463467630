package tetris_test

import (
	"strings"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

// newBoard builds a board whose bottom rows are given as strings. '.' is an
// empty cell, '#' is value 1 and a digit is that value. Rows above the ones
// given are empty.
func newBoard(t *testing.T, width, height int, rows ...string) *tetris.Board {
	t.Helper()
	require.LessOrEqual(t, len(rows), height)

	cells := make([]uint8, width*height)
	top := height - len(rows)
	for i, row := range rows {
		require.Len(t, row, width, "row %d", i)
		for x, ch := range row {
			var v uint8
			switch {
			case ch == '.':
			case ch == '#':
				v = 1
			case ch >= '0' && ch <= '9':
				v = uint8(ch - '0')
			default:
				t.Fatalf("bad cell %q in row %d", ch, i)
			}
			cells[x+(top+i)*width] = v
		}
	}

	board, err := tetris.NewBoardFromCells(width, height, cells)
	require.NoError(t, err)
	return board
}

// rows renders a board back into the notation used by newBoard.
func rows(b *tetris.Board) []string {
	out := make([]string, b.Height())
	for y := 0; y < b.Height(); y++ {
		var sb strings.Builder
		for x := 0; x < b.Width(); x++ {
			v := b.CellAt(x, y)
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		out[y] = sb.String()
	}
	return out
}

// mask renders a piece's bounding box, one string per row.
func mask(p tetris.Piece) []string {
	out := make([]string, p.Size())
	for y := 0; y < p.Size(); y++ {
		var sb strings.Builder
		for x := 0; x < p.Size(); x++ {
			if p.CellAt(x, y) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		out[y] = sb.String()
	}
	return out
}

func allShapes() []tetris.Shape {
	shapes := make([]tetris.Shape, 0, tetris.ShapeCount)
	for s := tetris.Shape(0); s < tetris.ShapeCount; s++ {
		shapes = append(shapes, s)
	}
	return shapes
}

// boardWith builds a board where only the listed cells are occupied.
func boardWith(t *testing.T, width, height int, occupied ...tetris.Point) *tetris.Board {
	t.Helper()
	cells := make([]uint8, width*height)
	for _, p := range occupied {
		cells[p.X+p.Y*width] = 1
	}
	board, err := tetris.NewBoardFromCells(width, height, cells)
	require.NoError(t, err)
	return board
}

// boardWithout builds a board where every cell except the listed ones is occupied.
func boardWithout(t *testing.T, width, height int, free ...tetris.Point) *tetris.Board {
	t.Helper()
	cells := make([]uint8, width*height)
	for i := range cells {
		cells[i] = 1
	}
	for _, p := range free {
		cells[p.X+p.Y*width] = 0
	}
	board, err := tetris.NewBoardFromCells(width, height, cells)
	require.NoError(t, err)
	return board
}

func repeat(row string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = row
	}
	return out
}
