package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSettings_MissingFileGivesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)

	settings, err = LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettings_ReadsFile(t *testing.T) {
	path := writeSettings(t, `
seed = 1234
log_level = "debug"
turret_targeting = "first_in_range"
start_paused = false
enemy_defs = "enemies.json"
`)
	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), settings.Seed)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, TargetingFirstInRange, settings.TurretTargeting)
	assert.False(t, settings.StartPaused)
	assert.Equal(t, "enemies.json", settings.EnemyDefs)
	assert.Equal(t, "scores.json", settings.ScoreFile, "unset keys keep defaults")
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown targeting": `turret_targeting = "closest"`,
		"malformed":         `seed = = 1`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			settings, err := LoadSettings(writeSettings(t, body))
			assert.Error(t, err)
			assert.Equal(t, DefaultSettings(), settings)
		})
	}
}
