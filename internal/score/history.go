// internal/score/history.go
package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Record — итог одного забега.
type Record struct {
	RunID      string    `json:"run_id"`
	BaseLevel  int64     `json:"base_level"`
	TimeAlive  uint64    `json:"time_alive"`
	Kills      int       `json:"kills"`
	Parts      int       `json:"parts"`
	RecordedAt time.Time `json:"recorded_at"`
}

// History — список результатов, сохраняемый в JSON-файл.
// Пустой путь означает историю только в памяти.
type History struct {
	path    string
	records []Record
}

// Load читает историю из файла. Отсутствующий файл даёт пустую историю.
func Load(path string) (*History, error) {
	h := &History{path: path}
	if path == "" {
		return h, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return h, fmt.Errorf("failed to read score history: %w", err)
	}
	if err := json.Unmarshal(data, &h.records); err != nil {
		h.records = nil
		return h, fmt.Errorf("failed to decode score history %s: %w", path, err)
	}
	return h, nil
}

// Append добавляет запись и сохраняет историю. Запись остаётся в памяти,
// даже если сохранить файл не удалось.
func (h *History) Append(rec Record) error {
	h.records = append(h.records, rec)
	return h.save()
}

// Records возвращает записи в порядке добавления.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Best возвращает до n лучших записей: выше уровень, затем дольше жизнь.
func (h *History) Best(n int) []Record {
	out := h.Records()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BaseLevel != out[j].BaseLevel {
			return out[i].BaseLevel > out[j].BaseLevel
		}
		return out[i].TimeAlive > out[j].TimeAlive
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Len — число записей.
func (h *History) Len() int { return len(h.records) }

func (h *History) save() error {
	if h.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(h.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode score history: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(h.path), ".scores-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp score file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write score history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write score history: %w", err)
	}
	if err := os.Rename(tmp.Name(), h.path); err != nil {
		return fmt.Errorf("failed to replace score history %s: %w", h.path, err)
	}
	return nil
}
