// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadEnemyDefinitions reads an enemy definitions file and overrides matching
// entries of EnemyLibrary by name. Returns the number of overridden archetypes.
func LoadEnemyDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	byName := make(map[string]EnemyDefinition, len(EnemyLibrary))
	for _, def := range EnemyLibrary {
		byName[strings.ToLower(def.Name)] = def
	}
	// Сначала проверяем весь файл, чтобы не применить его частично.
	for _, def := range enemyDefs {
		if _, ok := byName[strings.ToLower(def.Name)]; !ok {
			return 0, fmt.Errorf("unknown enemy %q in %s", def.Name, path)
		}
		if def.Health <= 0 || def.Speed < 0 || def.Size.X <= 0 || def.Size.Y <= 0 {
			return 0, fmt.Errorf("invalid stats for enemy %q in %s", def.Name, path)
		}
	}
	for _, def := range enemyDefs {
		base := byName[strings.ToLower(def.Name)]
		def.Kind = base.Kind
		def.Name = base.Name
		if def.Sprite == "" {
			def.Sprite = base.Sprite
		}
		if def.Scale == 0 {
			def.Scale = base.Scale
		}
		EnemyLibrary[def.Kind] = def
	}
	return len(enemyDefs), nil
}
