package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func countOccupied(b Board) int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

func TestStepMergesAndSpawns(t *testing.T) {
	board := Board{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{4, 0, 0, 0},
	}

	res, err := Step(board, DirDown, testRNG())
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if res.Board[3][0] != 8 || res.Board[2][0] != 4 {
		t.Errorf("merged column wrong: %v", res.Board)
	}
	if res.Delta != 12 {
		t.Errorf("Delta = %d, want 12", res.Delta)
	}
	if res.Status != StatusContinue {
		t.Errorf("Status = %v, want Continue", res.Status)
	}
	if got := countOccupied(res.Board); got != 3 {
		t.Errorf("occupied cells = %d, want 2 merged + 1 spawned", got)
	}
}

func TestStepMultiplierMergeNegativeDelta(t *testing.T) {
	board := Board{
		{-1, 0, 0, 0},
		{-1, 0, 0, 0},
		{-2, 0, 0, 0},
		{-2, 0, 0, 0},
	}

	res, err := Step(board, DirDown, testRNG())
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if res.Board[3][0] != -4 || res.Board[2][0] != -2 {
		t.Errorf("merged column wrong: %v", res.Board)
	}
	if res.Delta != -6 {
		t.Errorf("Delta = %d, want -6", res.Delta)
	}
}

func TestStepNoOpNoSpawn(t *testing.T) {
	board := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{-4, 0, 0, 0},
		{-4, 0, 0, 0},
	}

	res, err := Step(board, DirDown, testRNG())
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if res.Board != board {
		t.Errorf("no-op move must return the input board:\ngot  %v\nwant %v", res.Board, board)
	}
	if res.Delta != 0 {
		t.Errorf("Delta = %d, want 0", res.Delta)
	}
	if res.Status != StatusContinue {
		t.Errorf("Status = %v, want Continue", res.Status)
	}
}

func TestStepVictoryBeforeSpawn(t *testing.T) {
	board := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{32768, 0, 0, 0},
		{32768, 0, 0, 0},
	}

	res, err := Step(board, DirDown, testRNG())
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if res.Status != StatusVictory {
		t.Errorf("Status = %v, want Victory", res.Status)
	}
	if res.Board[3][0] != MaxTile {
		t.Errorf("winning tile missing: %v", res.Board)
	}
	if res.Delta != MaxTile {
		t.Errorf("Delta = %d, want %d", res.Delta, MaxTile)
	}
}

func TestStepDefeat(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 2},
	}

	for _, dir := range Directions {
		res, err := Step(board, dir, testRNG())
		if err != nil {
			t.Fatalf("Step(%v) failed: %v", dir, err)
		}
		if res.Status != StatusDefeat {
			t.Errorf("%v: Status = %v, want Defeat", dir, res.Status)
		}
		if res.Board != board {
			t.Errorf("%v: defeat must return the input board unchanged", dir)
		}
		if res.Delta != 0 {
			t.Errorf("%v: Delta = %d, want 0", dir, res.Delta)
		}
	}
}

func TestStepBlockedMoveNotDefeat(t *testing.T) {
	// Down is a no-op but Left/Right can still merge the pair.
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 2, 2},
	}

	res, err := Step(board, DirDown, testRNG())
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if res.Status != StatusContinue {
		t.Errorf("Status = %v, want Continue", res.Status)
	}
	if res.Board != board {
		t.Error("blocked move must not mutate the board")
	}
}

func TestStepInvalidDirection(t *testing.T) {
	board := Board{{2}}

	_, err := Step(board, Direction(9), testRNG())
	var dirErr *DirectionError
	if !errors.As(err, &dirErr) {
		t.Fatalf("error = %v, want DirectionError", err)
	}
	if dirErr.Code != 9 {
		t.Errorf("DirectionError.Code = %d, want 9", dirErr.Code)
	}
}

func TestStepCells(t *testing.T) {
	cells := [][]int{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	next, delta, status, err := StepCells(cells, 0, testRNG())
	if err != nil {
		t.Fatalf("StepCells() failed: %v", err)
	}
	if next[3][0] != 4 {
		t.Errorf("merged tile missing: %v", next)
	}
	if delta != 4 {
		t.Errorf("delta = %d, want 4", delta)
	}
	if status != CodeContinue {
		t.Errorf("status = %d, want %d", status, CodeContinue)
	}

	// The caller's matrix stays untouched.
	if cells[3][0] != 0 {
		t.Error("StepCells must not mutate its input")
	}
}

func TestStepCellsBadShape(t *testing.T) {
	cells := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	_, _, _, err := StepCells(cells, 0, testRNG())
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("error = %v, want ShapeError", err)
	}
	if shapeErr.Rows != 3 {
		t.Errorf("ShapeError.Rows = %d, want 3", shapeErr.Rows)
	}
}

func TestStepCellsBadDirection(t *testing.T) {
	cells := InitCells(testRNG())

	_, _, _, err := StepCells(cells, 9, testRNG())
	var dirErr *DirectionError
	if !errors.As(err, &dirErr) {
		t.Fatalf("error = %v, want DirectionError", err)
	}
}

func TestStepDeterministic(t *testing.T) {
	board := Init(rand.New(rand.NewSource(7)))

	res1, err1 := Step(board, DirLeft, rand.New(rand.NewSource(99)))
	res2, err2 := Step(board, DirLeft, rand.New(rand.NewSource(99)))
	if err1 != nil || err2 != nil {
		t.Fatalf("Step() failed: %v / %v", err1, err2)
	}
	if res1.Board != res2.Board {
		t.Error("same seed must produce the same board")
	}
}
