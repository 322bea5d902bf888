// internal/ui/recipe_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/pkg/render"
)

const (
	RecipeCircleRadius  = 9.0
	RecipeCircleSpacing = 6.0
)

// RecipeIndicator показывает требуемые детали по порядку: собранные залиты
// цветом ранга, ожидаемые обведены.
type RecipeIndicator struct {
	X, Y float32
}

func NewRecipeIndicator(x, y float32) *RecipeIndicator {
	return &RecipeIndicator{X: x, Y: y}
}

func (i *RecipeIndicator) Draw(screen *ebiten.Image, required []component.PartTier, collected int) {
	for j, tier := range required {
		cx := i.X + RecipeCircleRadius + float32(j)*(2*RecipeCircleRadius+RecipeCircleSpacing)
		cy := i.Y + RecipeCircleRadius
		clr := config.TierColors[int(tier)%len(config.TierColors)]
		if j < collected {
			vector.DrawFilledCircle(screen, cx, cy, RecipeCircleRadius, clr, true)
		} else {
			vector.DrawFilledCircle(screen, cx, cy, RecipeCircleRadius, render.WithAlpha(render.DarkenColor(clr), 160), true)
		}
		vector.StrokeCircle(screen, cx, cy, RecipeCircleRadius, 2, clr, true)
	}
}
