package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("screen_width: 1024\nlevel_up_score: 10\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 1024, config.ScreenWidth)
	require.Equal(t, 10, config.LevelUpScore)
	// Untouched fields keep their defaults.
	require.Equal(t, 600, config.ScreenHeight)
	require.Equal(t, 1.0, config.SpawnInterval)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative arena width", "screen_width: -800\n"},
		{"zero arena height", "screen_height: 0\n"},
		{"zero spawn interval", "spawn_interval: 0\n"},
		{"negative threshold", "level_up_score: -1\n"},
		{"zero player speed", "player_speed: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := LoadConfig(path)
			require.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
