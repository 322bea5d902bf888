// internal/assets/sprites.go
package assets

import (
	"fmt"
	"image/color"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "golang.org/x/image/webp"

	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
)

// fallbackSize — сторона квадрата-заглушки для отсутствующего спрайта.
const fallbackSize = 64

// SpriteStore загружает и кэширует спрайты из каталога Sprites.
// Отсутствующий файл заменяется цветным квадратом.
type SpriteStore struct {
	dir    string
	images map[string]*ebiten.Image
	logger *slog.Logger
}

func NewSpriteStore(assetsDir string, logger *slog.Logger) *SpriteStore {
	return &SpriteStore{
		dir:    filepath.Join(assetsDir, "Sprites"),
		images: make(map[string]*ebiten.Image),
		logger: logger,
	}
}

// Get возвращает спрайт по идентификатору, загружая его при первом обращении.
func (s *SpriteStore) Get(id string) *ebiten.Image {
	if img, ok := s.images[id]; ok {
		return img
	}
	img, err := s.load(id)
	if err != nil {
		s.logger.Warn("sprite missing, using placeholder", "sprite", id, "err", err)
		img = placeholder(fallbackColor(id))
	}
	s.images[id] = img
	return img
}

func (s *SpriteStore) load(id string) (*ebiten.Image, error) {
	for _, ext := range []string{".png", ".webp"} {
		path := filepath.Join(s.dir, id+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("no sprite file for %q in %s", id, s.dir)
}

func placeholder(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(fallbackSize, fallbackSize)
	img.Fill(c)
	return img
}

func fallbackColor(id string) color.RGBA {
	key := "enemy"
	switch id {
	case defs.SpritePlayer:
		key = "player"
	case defs.SpriteBase:
		key = "base"
	case defs.SpriteBullet:
		key = "bullet"
	case defs.SpriteDeacon:
		key = "deacon"
	case defs.SpriteBuildingCommand, defs.SpriteBuildingHangar, defs.SpriteBuildingDepot, defs.SpriteTurret:
		key = "building"
	case defs.SpritePartBlue:
		return config.TierColors[0]
	case defs.SpritePartRed:
		return config.TierColors[1]
	case defs.SpritePartGreen:
		return config.TierColors[2]
	}
	return config.FallbackColors[key]
}
