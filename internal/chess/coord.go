package chess

import "fmt"

// Coord is a zero-based (file, rank) pair. It is also used as a vector for
// deltas and unit steps. Coord does no bounds checking; that is the board's job.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is shorthand for Coord{x, y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y}
}

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{c.X - o.X, c.Y - o.Y}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{c.X * k, c.Y * k}
}

// Mul multiplies componentwise.
func (c Coord) Mul(o Coord) Coord {
	return Coord{c.X * o.X, c.Y * o.Y}
}

// Equal reports componentwise equality.
func (c Coord) Equal(o Coord) bool {
	return c == o
}

// Abs returns the componentwise absolute value.
func (c Coord) Abs() Coord {
	return Coord{abs(c.X), abs(c.Y)}
}

// Sign returns the unit step towards c: each component is -1, 0 or 1.
// The zero vector yields the zero vector.
func (c Coord) Sign() Coord {
	return Coord{sign(c.X), sign(c.Y)}
}

// IsZero reports whether both components are zero.
func (c Coord) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// Chebyshev returns max(|x|, |y|), the number of king steps the vector spans.
func (c Coord) Chebyshev() int {
	a := c.Abs()
	if a.X > a.Y {
		return a.X
	}
	return a.Y
}

// String renders the coordinate as column letter plus 1-based row, e.g. "A1".
// Coordinates outside the letter range are rendered as "(x,y)".
func (c Coord) String() string {
	if c.X >= 0 && c.X < 26 && c.Y >= 0 {
		return fmt.Sprintf("%c%d", 'A'+c.X, c.Y+1)
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Unit direction vectors.
var (
	OrthogonalDirs = []Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	DiagonalDirs   = []Coord{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	KingDirs       = append(append([]Coord{}, OrthogonalDirs...), DiagonalDirs...)
	KnightOffsets  = []Coord{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
