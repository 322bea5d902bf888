// internal/system/projectile.go
package system

import (
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/utils"
)

// ProjectileSystem двигает снаряды и удаляет их по времени жизни или за краем поля.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	stats, scaled := defs.BulletStats{}, false
	if base, _, ok := s.ecs.Base(); ok {
		stats, scaled = defs.BulletStatsFor(base.Level), true
	}

	const margin = config.BulletSize / 2
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		p := s.ecs.Projectiles[id]
		t, ok := s.ecs.Transforms[id]
		if !ok {
			s.ecs.DestroyEntity(id)
			continue
		}
		// Урон и скорость следуют текущему уровню базы, а не уровню в момент выстрела.
		if scaled {
			p.Speed = stats.Speed
			p.Damage = stats.Damage
		}
		if s.ecs.GameTime-p.SpawnTime >= config.BulletLifetime {
			s.ecs.DestroyEntity(id)
			continue
		}
		t.Position = t.Position.Add(p.Direction.Scale(p.Speed * deltaTime))
		t.Rotation = utils.FacingRotation(p.Direction)

		pos := t.Position
		if pos.X < margin || pos.X > config.ScreenWidth-margin ||
			pos.Y < margin || pos.Y > config.ScreenHeight-margin {
			s.ecs.DestroyEntity(id)
		}
	}
}
