package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-base-defense/internal/component"
)

func restoreLibrary(t *testing.T) {
	saved := make(map[component.EnemyKind]EnemyDefinition, len(EnemyLibrary))
	for k, v := range EnemyLibrary {
		saved[k] = v
	}
	t.Cleanup(func() { EnemyLibrary = saved })
}

func writeDefs(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "enemies.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEnemyDefinitions_OverridesByName(t *testing.T) {
	restoreLibrary(t)
	path := writeDefs(t, `[{"name": "pawn", "health": 75, "speed": 30, "size": {"X": 12, "Y": 12}}]`)

	n, err := LoadEnemyDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pawn := EnemyLibrary[component.KindPawn]
	assert.Equal(t, "Pawn", pawn.Name)
	assert.Equal(t, component.KindPawn, pawn.Kind)
	assert.Equal(t, int64(75), pawn.Health)
	assert.Equal(t, 30.0, pawn.Speed)
	assert.Equal(t, SpritePawn, pawn.Sprite, "sprite falls back to the built-in one")
	assert.Equal(t, 0.15, pawn.Scale)
	assert.Equal(t, int64(50), EnemyLibrary[component.KindStinger].Health)
}

func TestLoadEnemyDefinitions_RejectsWholeFile(t *testing.T) {
	restoreLibrary(t)
	tests := map[string]string{
		"unknown name": `[{"name": "pawn", "health": 75, "speed": 30, "size": {"X": 1, "Y": 1}}, {"name": "Knight", "health": 1, "speed": 1, "size": {"X": 1, "Y": 1}}]`,
		"zero health":  `[{"name": "pawn", "health": 75, "speed": 30, "size": {"X": 1, "Y": 1}}, {"name": "Rogue", "health": 0, "speed": 1, "size": {"X": 1, "Y": 1}}]`,
		"malformed":    `{"name": "pawn"`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadEnemyDefinitions(writeDefs(t, body))
			assert.Error(t, err)
			assert.Equal(t, int64(50), EnemyLibrary[component.KindPawn].Health, "nothing applied")
		})
	}

	_, err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
