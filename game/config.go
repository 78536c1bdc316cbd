package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the session configuration. Arena dimensions are fixed for the
// whole session once the game starts.
type Config struct {
	// ScreenWidth is the arena and window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the arena and window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// SpawnInterval is the enemy spawn timer period in seconds
	SpawnInterval float64 `yaml:"spawn_interval"`

	// LevelUpScore is the score threshold that triggers the one-shot theme
	// switch from space to army
	LevelUpScore int `yaml:"level_up_score"`

	// FireCooldownTicks is the minimum number of simulation ticks between
	// shots while the fire key is held
	FireCooldownTicks int `yaml:"fire_cooldown_ticks"`

	// PlayerWidth is the player's bounding box width in pixels
	PlayerWidth float64 `yaml:"player_width"`

	// PlayerHeight is the player's bounding box height in pixels
	PlayerHeight float64 `yaml:"player_height"`

	// PlayerSpeed is the player's movement speed in pixels per tick
	PlayerSpeed float64 `yaml:"player_speed"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       800,
		ScreenHeight:      600,
		SpawnInterval:     1.0,
		LevelUpScore:      5,
		FireCooldownTicks: 18, // ~300ms at 60 TPS
		PlayerWidth:       50,
		PlayerHeight:      30,
		PlayerSpeed:       5,
	}
}

// LoadConfig reads a YAML file and overlays it on the defaults, so a config
// file only needs to name the fields it changes.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate rejects configurations the core is allowed to assume away
// per-frame. It runs once at session start.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("arena dimensions must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %v", c.SpawnInterval)
	}
	if c.LevelUpScore <= 0 {
		return fmt.Errorf("level-up score must be positive, got %d", c.LevelUpScore)
	}
	if c.FireCooldownTicks < 0 {
		return fmt.Errorf("fire cooldown must be non-negative, got %d", c.FireCooldownTicks)
	}
	if c.PlayerWidth <= 0 || c.PlayerHeight <= 0 || c.PlayerSpeed <= 0 {
		return fmt.Errorf("player dimensions and speed must be positive")
	}
	return nil
}
