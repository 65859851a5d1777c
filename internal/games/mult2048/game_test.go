package mult2048

import (
	"testing"

	"github.com/vovakirdan/mult2048/internal/core"
	"github.com/vovakirdan/mult2048/internal/engine"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, mode Mode, seed int64) *Game {
	t.Helper()
	SetMode(mode)
	t.Cleanup(func() { SetMode(ModeCampaign) })

	g := &Game{}
	g.Reset(testConfig(seed))
	return g
}

func TestDeterministicReset(t *testing.T) {
	g1 := newTestGame(t, ModeCampaign, 12345)
	g2 := newTestGame(t, ModeCampaign, 12345)

	if g1.board != g2.board {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.board, g2.board)
	}
}

func TestCampaignProgression(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 42)

	// Board already holds the first target tile, any move completes the level
	g.board = engine.Board{
		{512, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)

	if !g.levelCleared {
		t.Fatal("Should detect level cleared when target tile exists")
	}

	// Advance past the banner
	g.levelClearedTicks = levelClearedDuration
	g.Step(core.NewInputFrame())

	if g.level != 1 {
		t.Errorf("Should advance to level 2, got level %d", g.level+1)
	}
	if g.levelCleared {
		t.Error("Level cleared flag should reset after advancing")
	}
}

func TestEndlessModeNoLevelClear(t *testing.T) {
	g := newTestGame(t, ModeEndless, 42)

	g.board = engine.Board{
		{8192, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)

	if g.levelCleared {
		t.Error("Endless mode should not have level cleared")
	}
	if g.won {
		t.Error("Endless mode should not win below 65536")
	}
}

func TestVictoryOnMaxTile(t *testing.T) {
	g := newTestGame(t, ModeEndless, 42)

	g.board = engine.Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{32768, 0, 0, 0},
		{32768, 0, 0, 0},
	}

	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)

	if !g.won {
		t.Error("Building 65536 should win the game")
	}
	if g.board[3][0] != 65536 {
		t.Errorf("Expected 65536 at bottom, got %d", g.board[3][0])
	}
}

func TestDefeatSetsGameOver(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 42)

	g.board = engine.Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 2},
	}

	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)

	if !g.gameOver {
		t.Error("Stuck board should set game over")
	}
}

func TestHeldDirectionMovesOnce(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 42)

	g.board = engine.Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)

	after := g.board
	g.Step(input)

	if g.board != after {
		t.Error("Holding a direction should process only one move")
	}

	// Releasing and pressing again moves once more
	g.Step(core.NewInputFrame())
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	if g.board == after {
		t.Error("A fresh press after release should process a move")
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 42)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("Pause action should pause the game")
	}

	before := g.board
	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)

	if g.board != before {
		t.Error("Moves should not apply while paused")
	}
}

func TestRestartResets(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 42)
	g.gameOver = true
	g.score = 100

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver {
		t.Error("Restart should clear game over")
	}
	if g.score != 0 {
		t.Errorf("Restart should reset score, got %d", g.score)
	}
}

func TestRestartKeepsSeededBoard(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 12345)
	initial := g.board

	// A two-tile board always has some direction that moves it
	for _, a := range []core.Action{core.ActionDown, core.ActionRight, core.ActionUp, core.ActionLeft} {
		input := core.NewInputFrame()
		input.Set(a)
		g.Step(input)
		g.Step(core.NewInputFrame())
		if g.board != initial {
			break
		}
	}
	if g.board == initial {
		t.Fatal("Move should change the board before restarting")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.board != initial {
		t.Errorf("Restart with a fixed seed should replay the same board:\n%v\nvs\n%v", g.board, initial)
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, ModeCampaign, 42)

	snap := g.Snapshot()

	if snap.Mode != "campaign" {
		t.Errorf("Snapshot Mode = %s, want campaign", snap.Mode)
	}
	if snap.Level != 1 {
		t.Errorf("Snapshot Level = %d, want 1", snap.Level)
	}
	if snap.Target != 512 {
		t.Errorf("Snapshot Target = %d, want 512", snap.Target)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
}

func TestTileLabel(t *testing.T) {
	tests := []struct {
		val  int
		want string
	}{
		{2, "2"},
		{65536, "65536"},
		{-1, "x1"},
		{-2, "x2"},
		{-4, "x4"},
	}

	for _, tt := range tests {
		if got := tileLabel(tt.val); got != tt.want {
			t.Errorf("tileLabel(%d) = %s, want %s", tt.val, got, tt.want)
		}
	}
}

func TestLevelCount(t *testing.T) {
	if LevelCount() != 8 {
		t.Errorf("LevelCount() = %d, want 8", LevelCount())
	}
}

func TestLevelNames(t *testing.T) {
	names := LevelNames()
	if len(names) != 8 {
		t.Fatalf("LevelNames() length = %d, want 8", len(names))
	}
	if names[0] != "First Steps" {
		t.Errorf("First level name = %s, want First Steps", names[0])
	}
}
