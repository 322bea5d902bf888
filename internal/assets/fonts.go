// internal/assets/fonts.go
package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFace загружает TTF-шрифт из assets/fonts. Если файла нет, используется
// встроенный растровый шрифт.
func LoadFace(assetsDir, name string, size float64, logger *slog.Logger) font.Face {
	face, err := loadOpenType(filepath.Join(assetsDir, "fonts", name), size)
	if err != nil {
		logger.Warn("font unavailable, using basicfont", "font", name, "err", err)
		return basicfont.Face7x13
	}
	return face
}

func loadOpenType(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build font face %s: %w", path, err)
	}
	return face, nil
}
