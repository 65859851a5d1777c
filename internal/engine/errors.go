package engine

import "fmt"

// ShapeError reports input that is not a 4x4 matrix.
type ShapeError struct {
	Rows int // number of rows supplied
	Row  int // offending row index, -1 when the row count itself is wrong
	Cols int // cell count of the offending row
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("board must be 4x4: got %d rows", e.Rows)
	}
	return fmt.Sprintf("board must be 4x4: row %d has %d cells", e.Row, e.Cols)
}

// DirectionError reports a direction code outside 0-3.
type DirectionError struct {
	Code int
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("direction code must be 0-3, got %d", e.Code)
}

// InvalidTileError reports a cell value outside the tile domain.
type InvalidTileError struct {
	Value int
}

func (e *InvalidTileError) Error() string {
	return fmt.Sprintf("invalid tile value: %d", e.Value)
}
