package engine

import (
	"math"
	"math/rand"
	"testing"
)

func TestSpawnFillsOneEmptyCell(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	var b Board

	for i := 1; i <= BoardSize*BoardSize; i++ {
		Spawn(&b, rng)
		if got := countOccupied(b); got != i {
			t.Fatalf("after %d spawns: %d occupied cells", i, got)
		}
	}

	// Full board: spawning is a no-op.
	full := b
	Spawn(&b, rng)
	if b != full {
		t.Error("Spawn on a full board must do nothing")
	}
}

func TestSpawnValueDomain(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	allowed := map[int]bool{2: true, 4: true, -1: true, -2: true}

	for trial := 0; trial < 1000; trial++ {
		var b Board
		Spawn(&b, rng)
		for r := range BoardSize {
			for c := range BoardSize {
				if v := b[r][c]; v != 0 && !allowed[v] {
					t.Fatalf("spawned out-of-domain value %d", v)
				}
			}
		}
	}
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const trials = 200000

	counts := map[int]int{}
	for trial := 0; trial < trials; trial++ {
		var b Board
		Spawn(&b, rng)
		for r := range BoardSize {
			for c := range BoardSize {
				if b[r][c] != 0 {
					counts[b[r][c]]++
				}
			}
		}
	}

	expected := map[int]float64{
		2:  0.783,
		4:  0.078,
		-1: 0.1118,
		-2: 0.0272,
	}

	for v, want := range expected {
		got := float64(counts[v]) / trials
		if math.Abs(got-want) > 0.01 {
			t.Errorf("value %d frequency = %.4f, want %.4f +- 0.01", v, got, want)
		}
	}
}

func TestInit(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	for trial := 0; trial < 100; trial++ {
		b := Init(rng)
		if got := countOccupied(b); got != 2 {
			t.Fatalf("Init board has %d tiles, want 2: %v", got, b)
		}
		if err := Validate(b); err != nil {
			t.Fatalf("Init board invalid: %v", err)
		}
	}
}

func TestInitDeterministic(t *testing.T) {
	b1 := Init(rand.New(rand.NewSource(9)))
	b2 := Init(rand.New(rand.NewSource(9)))
	if b1 != b2 {
		t.Errorf("same seed should produce the same initial board:\n%v\nvs\n%v", b1, b2)
	}
}
