package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze chase configuration.
func DefaultMazeConfig() MazeConfig {
	const tile = 24.0
	return MazeConfig{
		Board: MazeBoard{
			Rows:     21,
			Cols:     28,
			TileSize: tile,
		},
		Movement: MazeMovement{
			SeekerSpeed:     120,
			PursuerSpeed:    110,
			VulnerableSpeed: 80,
			WallRadius:      tile * 0.35,
			SnapTolerance:   0.5,
			TurnStep:        2,
			MaxDelta:        0.033,
			CacheEnabled:    true,
		},
		Rules: MazeRules{
			CommonReward:      10,
			SpecialReward:     50,
			PursuerBonus:      200,
			VulnerableSeconds: 8,
			CatchDistance:     tile * 0.6,
			TrailSeconds:      0.3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mazechase":
		return defaultMazeYAML
	default:
		return nil
	}
}
