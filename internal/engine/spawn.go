package engine

import "math/rand"

// Cumulative probability thresholds for new tile values.
const (
	spawnTwo  = 0.783  // value 2
	spawnFour = 0.861  // value 4
	spawnMul1 = 0.9728 // multiplier x1; the rest spawns x2
)

// Spawn places one new tile in a uniformly chosen empty cell of b. The
// value is drawn from the fixed distribution 2:78.3%, 4:7.8%, x1:11.18%,
// x2:2.72%. A full board is left untouched.
func Spawn(b *Board, rng *rand.Rand) {
	empty := emptyCells(*b)
	if len(empty) == 0 {
		return
	}

	cell := empty[rng.Intn(len(empty))]

	p := rng.Float64()
	var v int
	switch {
	case p < spawnTwo:
		v = 2
	case p < spawnFour:
		v = 4
	case p < spawnMul1:
		v = -1
	default:
		v = -2
	}

	b[cell[0]][cell[1]] = v
}

// Init returns the starting position for a new game: an empty board with
// two spawned tiles.
func Init(rng *rand.Rand) Board {
	var b Board
	Spawn(&b, rng)
	Spawn(&b, rng)
	return b
}
