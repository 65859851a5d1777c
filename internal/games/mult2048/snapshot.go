package mult2048

import "github.com/vovakirdan/mult2048/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign" or "endless"
	Level   int    // Current level (1-indexed for display)
	Target  int    // Current target tile value, 0 in endless
	Score   int
	Board   engine.Board
	MaxTile int // Highest value tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	target := 0
	if g.mode == ModeCampaign {
		target = g.currentTarget()
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   g.level + 1,
		Target:  target,
		Score:   g.score,
		Board:   g.board,
		MaxTile: engine.HighestValue(g.board),
		State:   state,
	}
}
