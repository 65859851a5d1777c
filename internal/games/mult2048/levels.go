// Package mult2048 implements a 2048 variant with multiplier tiles, in
// campaign and endless modes. The move resolution lives in internal/engine;
// this package adapts it to the arcade platform.
package mult2048

import (
	"github.com/vovakirdan/mult2048/internal/config"
)

// Level defines a campaign level with a target value tile.
type Level struct {
	ID     int
	Name   string
	Target int
}

// Package-level variables set by the CLI before game creation.
var (
	selectedStartLevel int
	configPath         string
)

// SetStartLevel sets the starting level (1-based). 0 means start from the
// beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// loadLevels returns the campaign levels and render options from config.
func loadLevels() ([]Level, config.RenderConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}

	levels := make([]Level, len(cfg.Campaign.Levels))
	for i, lvl := range cfg.Campaign.Levels {
		levels[i] = Level{ID: lvl.ID, Name: lvl.Name, Target: lvl.Target}
	}
	return levels, cfg.Render
}

// LevelCount returns the number of campaign levels in the default config.
func LevelCount() int {
	levels, _ := loadLevels()
	return len(levels)
}

// LevelNames returns the names of all campaign levels.
func LevelNames() []string {
	levels, _ := loadLevels()
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the target tile of each campaign level.
func LevelTargets() []int {
	levels, _ := loadLevels()
	targets := make([]int, len(levels))
	for i, lvl := range levels {
		targets[i] = lvl.Target
	}
	return targets
}
