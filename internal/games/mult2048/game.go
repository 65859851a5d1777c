package mult2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mult2048/internal/core"
	"github.com/vovakirdan/mult2048/internal/engine"
	"github.com/vovakirdan/mult2048/internal/registry"
)

// Mode selects how a session ends.
type Mode string

const (
	// ModeCampaign advances through configured target tiles level by level.
	ModeCampaign Mode = "campaign"
	// ModeEndless plays until the board locks up or 65536 is built.
	ModeEndless Mode = "endless"
)

var selectedMode = ModeCampaign

// SetMode sets the mode for the next game created through the registry.
func SetMode(m Mode) {
	selectedMode = m
}

const (
	minScreenW = 40
	minScreenH = 16

	// Ticks the "level cleared" banner stays on screen.
	levelClearedDuration = 90
)

// Game is the arcade adapter around the move engine.
type Game struct {
	cfg  core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	mode   Mode
	levels []Level
	level  int // index into levels, campaign only

	board engine.Board
	score int

	screenW, screenH int
	useColor         bool

	gameOver      bool
	won           bool
	paused        bool
	tooSmall      bool
	moveProcessed bool

	levelCleared      bool
	levelClearedTicks int
}

func init() {
	registry.Register("mult2048", func() registry.Game {
		return &Game{}
	})
}

// ID returns the score bucket for the current mode. Endless runs are
// ranked separately from campaign runs.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "mult2048_endless"
	}
	return "mult2048"
}

func (g *Game) Title() string { return "Mult 2048" }

// Reset starts a fresh session using the configured mode and start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0

	g.mode = selectedMode
	levels, render := loadLevels()
	g.levels = levels
	g.useColor = render.UseColor

	g.level = 0
	if g.mode == ModeCampaign && selectedStartLevel > 0 && len(g.levels) > 0 {
		g.level = core.Clamp(selectedStartLevel-1, 0, len(g.levels)-1)
	}

	g.board = engine.Init(g.rng)
	g.score = 0

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH

	g.gameOver = false
	g.won = false
	g.paused = false
	g.moveProcessed = false
	g.levelCleared = false
	g.levelClearedTicks = 0
}

// Step advances the game by one tick, applying at most one move.
func (g *Game) Step(in core.InputFrame) core.TickResult {
	g.tick++

	// Restart reuses the original config, so a seeded session replays the
	// same board.
	if in.Has(core.ActionRestart) {
		g.Reset(g.cfg)
		return g.result()
	}

	if g.gameOver || g.won || g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.levelCleared {
		g.levelClearedTicks++
		if g.levelClearedTicks >= levelClearedDuration || in.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return g.result()
	}

	dir, ok := directionFrom(in)
	if ok && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	} else if !ok {
		g.moveProcessed = false
	}

	return g.result()
}

// directionFrom maps movement actions to a slide direction. Down wins over
// later actions when several arrive in one frame.
func directionFrom(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	}
	return 0, false
}

func (g *Game) processMove(dir engine.Direction) {
	res, err := engine.Step(g.board, dir, g.rng)
	if err != nil {
		return
	}
	g.board = res.Board
	g.score += res.Delta

	switch res.Status {
	case engine.StatusVictory:
		g.won = true
		return
	case engine.StatusDefeat:
		g.gameOver = true
		return
	}

	if g.mode == ModeCampaign {
		target := g.currentTarget()
		if target > 0 && engine.HighestValue(g.board) >= target {
			if g.level == len(g.levels)-1 {
				g.won = true
			} else {
				g.levelCleared = true
				g.levelClearedTicks = 0
			}
		}
	}
}

// advanceLevel moves to the next campaign level keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearedTicks = 0
	if g.level < len(g.levels)-1 {
		g.level++
	}
}

// currentTarget returns the target tile for the current level, or 0 when
// there are no configured levels.
func (g *Game) currentTarget() int {
	if g.level < 0 || g.level >= len(g.levels) {
		return 0
	}
	return g.levels[g.level].Target
}

// currentLevelName returns the display name of the current level.
func (g *Game) currentLevelName() string {
	if g.level < 0 || g.level >= len(g.levels) {
		return ""
	}
	return g.levels[g.level].Name
}

func (g *Game) result() core.TickResult {
	return core.TickResult{State: g.State()}
}

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}
