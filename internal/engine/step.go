package engine

import "math/rand"

// Status is the terminal-state signal returned with each move.
type Status int

const (
	StatusContinue Status = iota
	StatusVictory
	StatusDefeat
)

// Wire codes for Status at the external boundary.
const (
	CodeContinue = 0
	CodeVictory  = 1
	CodeDefeat   = -1
)

// Code returns the numeric wire code for the status.
func (s Status) Code() int {
	switch s {
	case StatusVictory:
		return CodeVictory
	case StatusDefeat:
		return CodeDefeat
	default:
		return CodeContinue
	}
}

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusVictory:
		return "Victory"
	case StatusDefeat:
		return "Defeat"
	default:
		return "Continue"
	}
}

// StepResult is the outcome of a single move.
type StepResult struct {
	Board  Board
	Delta  int // score gained by this move, negative for multiplier merges
	Status Status
}

// Step resolves one move: slide and merge toward dir, then spawn one new
// tile if the board changed. Victory is a 65536 tile after the slide,
// checked before the spawn. Defeat is a move that changed nothing on a
// board where no direction changes anything. The input board is never
// mutated; on error it is returned unchanged.
func Step(b Board, dir Direction, rng *rand.Rand) (StepResult, error) {
	if dir < DirDown || dir > DirLeft {
		return StepResult{Board: b}, &DirectionError{Code: int(dir)}
	}

	next, delta := slideBoard(b, dir)
	victory := hasTile(next, MaxTile)
	moved := next != b

	if moved {
		Spawn(&next, rng)
	}

	status := StatusContinue
	switch {
	case victory:
		status = StatusVictory
	case !moved && isStuck(next):
		status = StatusDefeat
	}

	return StepResult{Board: next, Delta: delta, Status: status}, nil
}

// isStuck reports whether no direction changes the board.
func isStuck(b Board) bool {
	for _, d := range Directions {
		if next, _ := slideBoard(b, d); next != b {
			return false
		}
	}
	return true
}

// StepCells is the external-boundary form of Step: a row-major matrix and a
// numeric direction code in, a new matrix, score delta, and status code
// out. Shape and direction checks happen before anything else, so a failed
// call leaves no observable effect.
func StepCells(cells [][]int, dirCode int, rng *rand.Rand) ([][]int, int, int, error) {
	board, err := FromCells(cells)
	if err != nil {
		return nil, 0, 0, err
	}
	dir, err := DirectionFromCode(dirCode)
	if err != nil {
		return nil, 0, 0, err
	}

	res, err := Step(board, dir, rng)
	if err != nil {
		return nil, 0, 0, err
	}
	return res.Board.Cells(), res.Delta, res.Status.Code(), nil
}

// InitCells is the external-boundary form of Init.
func InitCells(rng *rand.Rand) [][]int {
	return Init(rng).Cells()
}
