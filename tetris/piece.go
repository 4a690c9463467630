package tetris

import "fmt"

// Shape identifies one of the seven tetromino templates. The value doubles as
// the piece identity: a locked cell stores Shape+1.
type Shape int

const (
	ShapeI Shape = iota
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
	ShapeO
	ShapeT
)

// ShapeCount is the number of distinct templates.
const ShapeCount = 7

// maxPieceSize is the side of the largest bounding box (the I piece).
const maxPieceSize = 4

var shapeNames = [ShapeCount]string{"I", "L", "J", "S", "Z", "O", "T"}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Valid reports whether s names one of the seven templates.
func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

type template struct {
	size  int
	cells [maxPieceSize * maxPieceSize]bool
}

// templates are laid out row-major over size*size cells, index x + y*size.
var templates = [ShapeCount]template{
	ShapeI: {size: 4, cells: mask(
		0, 1, 0, 0,
		0, 1, 0, 0,
		0, 1, 0, 0,
		0, 1, 0, 0,
	)},
	ShapeL: {size: 3, cells: mask(
		0, 0, 1,
		1, 1, 1,
		0, 0, 0,
	)},
	ShapeJ: {size: 3, cells: mask(
		1, 0, 0,
		1, 1, 1,
		0, 0, 0,
	)},
	ShapeS: {size: 3, cells: mask(
		0, 1, 1,
		1, 1, 0,
		0, 0, 0,
	)},
	ShapeZ: {size: 3, cells: mask(
		1, 1, 0,
		0, 1, 1,
		0, 0, 0,
	)},
	ShapeO: {size: 2, cells: mask(
		1, 1,
		1, 1,
	)},
	ShapeT: {size: 3, cells: mask(
		0, 1, 0,
		1, 1, 1,
		0, 0, 0,
	)},
}

func mask(bits ...int) [maxPieceSize * maxPieceSize]bool {
	var cells [maxPieceSize * maxPieceSize]bool
	for i, b := range bits {
		cells[i] = b != 0
	}
	return cells
}

// Point is a local or board coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Piece is a tetromino in some orientation. It is a plain value: copying a
// Piece copies its mask.
type Piece struct {
	shape       Shape
	size        int
	orientation int
	cells       [maxPieceSize * maxPieceSize]bool
}

// NewPiece builds a piece in its spawn orientation.
func NewPiece(shape Shape) Piece {
	if !shape.Valid() {
		panic(fmt.Sprintf("tetris: invalid shape %d", int(shape)))
	}
	t := templates[shape]
	return Piece{
		shape: shape,
		size:  t.size,
		cells: t.cells,
	}
}

// Shape returns the template the piece was built from.
func (p Piece) Shape() Shape {
	return p.shape
}

// Size returns the side of the square bounding box (2, 3 or 4).
func (p Piece) Size() int {
	return p.size
}

// Orientation returns the number of clockwise quarter turns from spawn, 0 to 3.
func (p Piece) Orientation() int {
	return p.orientation
}

// CellAt reports whether the local cell (x, y) is occupied.
// It panics if the coordinate is outside the bounding box.
func (p Piece) CellAt(x, y int) bool {
	if x < 0 || x >= p.size || y < 0 || y >= p.size {
		panic(fmt.Sprintf("tetris: piece cell (%d, %d) out of range for size %d", x, y, p.size))
	}
	return p.cells[x+y*p.size]
}

// Cells returns the occupied local cells in row-major order.
func (p Piece) Cells() []Point {
	points := make([]Point, 0, 4)
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			if p.cells[x+y*p.size] {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Rotated returns a copy of p turned a quarter in direction r. The mask is
// transposed about its main diagonal, then rows are reversed for a clockwise
// turn or columns are reversed for a counter-clockwise one. It panics on an
// unknown direction.
func (p Piece) Rotated(r Rotation) Piece {
	if r != Clockwise && r != CounterClockwise {
		panic(fmt.Sprintf("tetris: invalid rotation %d", int(r)))
	}
	n := p.size
	out := p
	out.cells = [maxPieceSize * maxPieceSize]bool{}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			var src int
			if r == Clockwise {
				// transpose then mirror each row
				src = y + (n-1-x)*n
			} else {
				// transpose then mirror each column
				src = (n - 1 - y) + x*n
			}
			out.cells[x+y*n] = p.cells[src]
		}
	}
	if r == Clockwise {
		out.orientation = (p.orientation + 1) % 4
	} else {
		out.orientation = (p.orientation + 3) % 4
	}
	return out
}

// Rotate turns p in place.
func (p *Piece) Rotate(r Rotation) {
	*p = p.Rotated(r)
}
