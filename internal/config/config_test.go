package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg MazeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("mazechase"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMazeConfig()) {
		t.Errorf("embedded defaults drifted from DefaultMazeConfig:\n%+v\n%+v", cfg, DefaultMazeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no defaults")
	}
}

func TestLoadMazeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	data := "movement:\n  pursuer_speed: 90\nrules:\n  vulnerable_seconds: 6\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Movement.PursuerSpeed != 90 || cfg.Rules.VulnerableSeconds != 6 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Movement.SeekerSpeed != 120 || cfg.Board.Rows != 21 {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadMazeErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	small := filepath.Join(dir, "small.yaml")
	os.WriteFile(broken, []byte("board: [1, 2"), 0o644)
	os.WriteFile(small, []byte("board:\n  rows: 5\n"), 0o644)

	testCases := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", broken, "failed to parse"},
		{"invalid board", small, "smaller than"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadMaze(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected %q in %v", tc.want, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*MazeConfig)
		ok     bool
	}{
		{"defaults", func(*MazeConfig) {}, true},
		{"zero tile", func(c *MazeConfig) { c.Board.TileSize = 0 }, false},
		{"negative speed", func(c *MazeConfig) { c.Movement.PursuerSpeed = -1 }, false},
		{"radius at half tile", func(c *MazeConfig) { c.Movement.WallRadius = 12 }, false},
		{"no catch distance", func(c *MazeConfig) { c.Rules.CatchDistance = 0 }, false},
		{"narrow board", func(c *MazeConfig) { c.Board.Cols = 19 }, false},
		{"catch differs from radius", func(c *MazeConfig) { c.Rules.CatchDistance = 30 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyMazePreset(t *testing.T) {
	testCases := []struct {
		preset     DifficultyPreset
		enabled    bool
		level      float64
		vulnerable float64
	}{
		{DifficultyEasy, true, 0.0, 10},
		{DifficultyNormal, true, 0.3, 8},
		{DifficultyHard, true, 0.7, 5},
		{DifficultyFixed, false, 0.0, 8},
	}

	for _, tc := range testCases {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMazeConfig()
			ApplyMazePreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Rules.VulnerableSeconds != tc.vulnerable {
				t.Errorf("vulnerable seconds = %v, want %v", cfg.Rules.VulnerableSeconds, tc.vulnerable)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, err)
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultMazeConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("level at start = %v", got)
	}
	if got := dm.Level(1500, 0); got != 0.5 {
		t.Errorf("level at half progression = %v", got)
	}
	if got := dm.Level(99999, 0); got != 1 {
		t.Errorf("level must clamp at 1, got %v", got)
	}
	if got := dm.Speed(100, 3000, 0); got != 120 {
		t.Errorf("speed at max = %v, want 120", got)
	}

	if !dm.IsEnabled() {
		t.Error("default progression should be enabled")
	}

	cfg.Enabled = false
	cfg.InitialLevel = 0.7
	fixed := NewDifficultyManager(cfg)
	if got := fixed.Level(3000, 0); got != 0.7 {
		t.Errorf("disabled progression should stay at the initial level, got %v", got)
	}
	if fixed.IsEnabled() {
		t.Error("manager should report disabled")
	}

	cfg.Enabled = true
	cfg.InitialLevel = 0
	cfg.Progression.Type = "time"
	cfg.Progression.MaxAt = 600
	byTime := NewDifficultyManager(cfg)
	if got := byTime.Level(99999, 300); got != 0.5 {
		t.Errorf("time progression should count ticks, got %v", got)
	}
}

func TestMarshalUsesYAMLKeys(t *testing.T) {
	data, err := DefaultMazeConfig().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "wall_radius: 8.4") {
		t.Errorf("expected snake_case keys in output:\n%s", data)
	}
}
