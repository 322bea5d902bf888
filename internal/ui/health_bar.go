// internal/ui/health_bar.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-base-defense/internal/config"
	"go-base-defense/pkg/render"
)

// HealthBar — полоса здоровья с подписью.
type HealthBar struct {
	X, Y          float32
	Width, Height float32
	Label         string
	Color         color.RGBA
}

func NewHealthBar(x, y, width, height float32, label string, clr color.RGBA) *HealthBar {
	return &HealthBar{X: x, Y: y, Width: width, Height: height, Label: label, Color: clr}
}

// Draw рисует заполнение пропорционально health/maxHealth.
func (b *HealthBar) Draw(screen *ebiten.Image, health, maxHealth int64, face font.Face) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, render.DarkenColor(b.Color), false)
	if maxHealth > 0 && health > 0 {
		frac := float32(health) / float32(maxHealth)
		if frac > 1 {
			frac = 1
		}
		vector.DrawFilledRect(screen, b.X, b.Y, b.Width*frac, b.Height, b.Color, false)
	}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, config.HUDTextColor, false)
	label := fmt.Sprintf("%s %d/%d", b.Label, max(health, 0), maxHealth)
	text.Draw(screen, label, face, int(b.X)+4, int(b.Y+b.Height)-3, config.HUDTextColor)
}
