// Package engine implements the move resolution for 2048 with multiplier
// tiles. A board holds positive power-of-two value tiles and negative
// multiplier tiles (-1/-2/-4, magnitude = factor). Every operation is a pure
// function of its inputs plus a caller-supplied RNG; the engine keeps no
// state between calls.
package engine

// BoardSize is the board dimension.
const BoardSize = 4

// MaxTile is the winning tile value. Value tiles never grow past it.
const MaxTile = 65536

// Board is a 4x4 grid of tile values. 0 means empty.
type Board [BoardSize][BoardSize]int

// Direction represents a move direction. The numeric values are the wire
// codes accepted at the external boundary and double as the clockwise
// quarter-turn count that maps the direction onto a downward slide.
type Direction int

const (
	DirDown  Direction = 0
	DirRight Direction = 1
	DirUp    Direction = 2
	DirLeft  Direction = 3
)

// Directions lists all four move directions.
var Directions = [4]Direction{DirDown, DirRight, DirUp, DirLeft}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// DirectionFromCode converts a numeric wire code to a Direction.
func DirectionFromCode(code int) (Direction, error) {
	if code < 0 || code > 3 {
		return 0, &DirectionError{Code: code}
	}
	return Direction(code), nil
}

// rotate returns b rotated clockwise by k quarter turns.
func rotate(b Board, k int) Board {
	var r Board
	switch k % 4 {
	case 0:
		return b
	case 1:
		for i := range BoardSize {
			for j := range BoardSize {
				r[j][BoardSize-1-i] = b[i][j]
			}
		}
	case 2:
		for i := range BoardSize {
			for j := range BoardSize {
				r[BoardSize-1-i][BoardSize-1-j] = b[i][j]
			}
		}
	case 3:
		for i := range BoardSize {
			for j := range BoardSize {
				r[BoardSize-1-j][i] = b[i][j]
			}
		}
	}
	return r
}

// emptyCells returns coordinates of all empty cells in row-major order.
func emptyCells(b Board) [][2]int {
	var cells [][2]int
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == 0 {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

// HighestValue returns the largest value tile on the board, 0 if none.
// Multiplier tiles are ignored.
func HighestValue(b Board) int {
	highest := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] > highest {
				highest = b[r][c]
			}
		}
	}
	return highest
}

// hasTile reports whether any cell of b equals v.
func hasTile(b Board, v int) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == v {
				return true
			}
		}
	}
	return false
}

// FromCells converts a row-major matrix into a Board, checking its shape.
func FromCells(cells [][]int) (Board, error) {
	var b Board
	if len(cells) != BoardSize {
		return b, &ShapeError{Rows: len(cells), Row: -1}
	}
	for r, row := range cells {
		if len(row) != BoardSize {
			return b, &ShapeError{Rows: len(cells), Row: r, Cols: len(row)}
		}
		copy(b[r][:], row)
	}
	return b, nil
}

// Cells converts the board back into a freshly allocated row-major matrix.
func (b Board) Cells() [][]int {
	cells := make([][]int, BoardSize)
	for r := range BoardSize {
		cells[r] = make([]int, BoardSize)
		copy(cells[r], b[r][:])
	}
	return cells
}
