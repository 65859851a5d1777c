package config

import (
	_ "embed"
)

//go:embed defaults/mult2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration, used when no YAML
// file is available and the embedded default fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Campaign: CampaignConfig{
			Levels: []LevelConfig{
				{ID: 1, Name: "First Steps", Target: 512},
				{ID: 2, Name: "Getting Serious", Target: 1024},
				{ID: 3, Name: "Classic", Target: 2048},
				{ID: 4, Name: "Beyond Classic", Target: 4096},
				{ID: 5, Name: "Deep Stack", Target: 8192},
				{ID: 6, Name: "Multiplier Master", Target: 16384},
				{ID: 7, Name: "Endgame", Target: 32768},
				{ID: 8, Name: "The Last Tile", Target: 65536},
			},
		},
		Render: RenderConfig{
			UseColor: true,
		},
	}
}
