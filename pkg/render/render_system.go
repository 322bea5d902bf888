// pkg/render/render_system.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-base-defense/internal/component"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/types"
)

// SpriteSource выдаёт изображение по идентификатору спрайта.
type SpriteSource interface {
	Get(id string) *ebiten.Image
}

// RenderSystem рисует сущности ECS. Только чтение: состояние мира не меняется.
type RenderSystem struct {
	ecs         *entity.ECS
	sprites     SpriteSource
	ShowHitbox  bool
	hitboxColor color.RGBA
}

func NewRenderSystem(ecs *entity.ECS, sprites SpriteSource) *RenderSystem {
	return &RenderSystem{
		ecs:         ecs,
		sprites:     sprites,
		hitboxColor: color.RGBA{255, 255, 0, 160},
	}
}

// Draw рисует слои снизу вверх: постройки, база, детали, враги, спутники, снаряды, игрок.
func (r *RenderSystem) Draw(screen *ebiten.Image) {
	r.drawLayer(screen, entity.SortedIDs(r.ecs.BaseBuildings))
	r.drawLayer(screen, entity.SortedIDs(r.ecs.Turrets))
	r.drawLayer(screen, entity.SortedIDs(r.ecs.Bases))
	r.drawLayer(screen, entity.SortedIDs(r.ecs.Parts))
	r.drawLayer(screen, entity.SortedIDs(r.ecs.Enemies))
	r.drawLayer(screen, entity.SortedIDs(r.ecs.Deacons))
	r.drawLayer(screen, entity.SortedIDs(r.ecs.Projectiles))
	r.drawLayer(screen, entity.SortedIDs(r.ecs.Players))

	if r.ShowHitbox {
		r.drawHitboxes(screen)
	}
}

func (r *RenderSystem) drawLayer(screen *ebiten.Image, ids []types.EntityID) {
	for _, id := range ids {
		t, ok := r.ecs.Transforms[id]
		if !ok {
			continue
		}
		sprite, ok := r.ecs.Sprites[id]
		if !ok {
			continue
		}
		r.drawSprite(screen, r.sprites.Get(sprite.ID), t)
	}
}

func (r *RenderSystem) drawSprite(screen, img *ebiten.Image, t *component.Transform) {
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.Position.X, t.Position.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawHitboxes(screen *ebiten.Image) {
	box := func(id types.EntityID, half component.Vec2) {
		t, ok := r.ecs.Transforms[id]
		if !ok {
			return
		}
		vector.StrokeRect(screen,
			float32(t.Position.X-half.X), float32(t.Position.Y-half.Y),
			float32(2*half.X), float32(2*half.Y), 1, r.hitboxColor, false)
	}
	for id, e := range r.ecs.Enemies {
		box(id, e.Size)
	}
	for id, d := range r.ecs.Deacons {
		box(id, d.Size)
	}
	for id, p := range r.ecs.Projectiles {
		box(id, p.Size)
	}
	for id, p := range r.ecs.Parts {
		box(id, p.Size)
	}
	for id, p := range r.ecs.Players {
		box(id, p.Size)
	}
	for id, b := range r.ecs.Bases {
		box(id, b.Size)
	}
}
