// Package config provides YAML-based configuration loading for the
// mult2048 game: campaign levels and render options.
package config

// GameConfig contains all configuration for the mult2048 game.
type GameConfig struct {
	Campaign CampaignConfig `yaml:"campaign"`
	Render   RenderConfig   `yaml:"render"`
}

// CampaignConfig defines the campaign level progression.
type CampaignConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LevelConfig defines one campaign level with a target value tile.
type LevelConfig struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Target int    `yaml:"target"` // Target value tile to reach
}

// RenderConfig defines display options.
type RenderConfig struct {
	UseColor bool `yaml:"use_color"` // Colorize tiles by kind and magnitude
}

// Valid reports whether the config is usable: at least one campaign level
// with ascending positive targets.
func (c GameConfig) Valid() bool {
	if len(c.Campaign.Levels) == 0 {
		return false
	}
	prev := 0
	for _, lvl := range c.Campaign.Levels {
		if lvl.Target <= prev {
			return false
		}
		prev = lvl.Target
	}
	return true
}
