package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings — параметры запуска, читаемые из TOML-файла.
type Settings struct {
	Seed            int64  `toml:"seed"`
	LogLevel        string `toml:"log_level"`
	ScoreFile       string `toml:"score_file"`
	AssetsDir       string `toml:"assets_dir"`
	TurretTargeting string `toml:"turret_targeting"`
	StartPaused     bool   `toml:"start_paused"`
	EnemyDefs       string `toml:"enemy_defs"` // JSON с переопределением архетипов; пусто — встроенная таблица
}

const (
	TargetingStored       = "stored"
	TargetingFirstInRange = "first_in_range"
)

// DefaultSettings возвращает значения по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:        "info",
		ScoreFile:       "scores.json",
		AssetsDir:       "assets",
		TurretTargeting: TargetingStored,
		StartPaused:     true,
	}
}

// LoadSettings читает файл поверх значений по умолчанию.
// Отсутствующий файл не считается ошибкой.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}
	if _, err := toml.Decode(string(data), &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to decode settings file %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

// Validate проверяет значения, которые нельзя молча подменить.
func (s Settings) Validate() error {
	switch s.TurretTargeting {
	case TargetingStored, TargetingFirstInRange:
	default:
		return fmt.Errorf("unknown turret_targeting %q", s.TurretTargeting)
	}
	return nil
}
