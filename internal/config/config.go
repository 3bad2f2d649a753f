// Package config provides YAML-based configuration loading and
// difficulty management for the maze chase game.
package config

import "fmt"

// MazeConfig contains all configuration for the maze chase game.
type MazeConfig struct {
	Board      MazeBoard        `yaml:"board"`
	Movement   MazeMovement     `yaml:"movement"`
	Rules      MazeRules        `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeBoard defines the grid dimensions and tile size.
type MazeBoard struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	TileSize float64 `yaml:"tile_size"`
}

// MazeMovement defines speeds (units per second) and collision geometry.
type MazeMovement struct {
	SeekerSpeed     float64 `yaml:"seeker_speed"`
	PursuerSpeed    float64 `yaml:"pursuer_speed"`
	VulnerableSpeed float64 `yaml:"vulnerable_speed"`
	WallRadius      float64 `yaml:"wall_radius"`
	SnapTolerance   float64 `yaml:"snap_tolerance"`
	TurnStep        float64 `yaml:"turn_step"`
	MaxDelta        float64 `yaml:"max_delta"` // seconds
	CacheEnabled    bool    `yaml:"cache_enabled"`
}

// MazeRules defines scoring and round timing.
type MazeRules struct {
	CommonReward      int     `yaml:"common_reward"`
	SpecialReward     int     `yaml:"special_reward"`
	PursuerBonus      int     `yaml:"pursuer_bonus"`
	VulnerableSeconds float64 `yaml:"vulnerable_seconds"`
	CatchDistance     float64 `yaml:"catch_distance"`
	TrailSeconds      float64 `yaml:"trail_seconds"`
}

// Minimum board size the default maze geometry fits into.
const (
	MinRows = 15
	MinCols = 20
)

// Validate reports the first setting that cannot produce a playable round.
func (c MazeConfig) Validate() error {
	b, m, r := c.Board, c.Movement, c.Rules
	switch {
	case b.Rows < MinRows || b.Cols < MinCols:
		return fmt.Errorf("config: board %dx%d is smaller than %dx%d", b.Rows, b.Cols, MinRows, MinCols)
	case b.TileSize <= 0:
		return fmt.Errorf("config: tile_size must be positive, got %v", b.TileSize)
	case m.SeekerSpeed <= 0 || m.PursuerSpeed <= 0 || m.VulnerableSpeed <= 0:
		return fmt.Errorf("config: speeds must be positive")
	case m.WallRadius <= 0 || m.WallRadius >= b.TileSize/2:
		return fmt.Errorf("config: wall_radius %v must be in (0, %v)", m.WallRadius, b.TileSize/2)
	case m.MaxDelta <= 0:
		return fmt.Errorf("config: max_delta must be positive, got %v", m.MaxDelta)
	case r.CatchDistance <= 0:
		return fmt.Errorf("config: catch_distance must be positive, got %v", r.CatchDistance)
	case r.VulnerableSeconds < 0:
		return fmt.Errorf("config: vulnerable_seconds must not be negative")
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to pursuer speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
