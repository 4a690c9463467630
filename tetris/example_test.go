package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// ExampleGame drives a game with a fixed piece sequence. Five O pieces laid
// side by side fill the two bottom rows of a 10-wide board, which clears them.
func ExampleGame() {
	game, err := tetris.NewGame(tetris.WithSource(tetris.NewSequence(tetris.ShapeO)))
	if err != nil {
		panic(err)
	}

	for _, column := range []int{0, 2, 4, 6, 8} {
		for x, _ := game.Position(); x > column; x-- {
			game.Shift(tetris.ShiftLeft)
		}
		for x, _ := game.Position(); x < column; x++ {
			game.Shift(tetris.ShiftRight)
		}
		game.HardDrop()
	}

	fmt.Println("locks:", game.Locks())
	fmt.Println("rows:", game.ClearedRows())
	fmt.Println("score:", game.Score())
	fmt.Println("level:", game.Level())

	// Output:
	// locks: 5
	// rows: 2
	// score: 100
	// level: 0
}

// ExampleBoard_ClearFullRows shows full rows being removed and the rows above
// them falling into the gap.
func ExampleBoard_ClearFullRows() {
	board, err := tetris.NewBoardFromCells(4, 4, []uint8{
		0, 3, 0, 0,
		1, 1, 1, 1,
		0, 0, 5, 0,
		2, 2, 2, 2,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("cleared:", board.ClearFullRows())
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			fmt.Print(board.CellAt(x, y))
		}
		fmt.Println()
	}

	// Output:
	// cleared: 2
	// 0000
	// 0000
	// 0300
	// 0050
}

// ExampleOverlaps tests a placement before committing it.
func ExampleOverlaps() {
	board := tetris.NewBoard(10, 24)
	piece := tetris.NewPiece(tetris.ShapeT)

	fmt.Println(tetris.Overlaps(piece, board, 0, 0))
	fmt.Println(tetris.Overlaps(piece, board, -1, 0))
	fmt.Println(tetris.Overlaps(piece, board, 7, 22))
	fmt.Println(tetris.Overlaps(piece, board, 7, 23))

	// Output:
	// false
	// true
	// false
	// true
}
