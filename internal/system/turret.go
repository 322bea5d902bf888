// internal/system/turret.go
package system

import (
	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/interfaces"
	"go-base-defense/internal/types"
	"go-base-defense/internal/utils"
)

// TurretSystem наводит турели базы и стреляет по общему таймеру перезарядки.
type TurretSystem struct {
	ecs   *entity.ECS
	audio interfaces.AudioPlayer
}

func NewTurretSystem(ecs *entity.ECS, audio interfaces.AudioPlayer) *TurretSystem {
	return &TurretSystem{ecs: ecs, audio: audio}
}

func (s *TurretSystem) Update(deltaTime float64) {
	if len(s.ecs.Turrets) == 0 {
		return
	}
	fire := s.ecs.Timers != nil && s.ecs.Timers.Turret.JustFinished()
	enemies := entity.SortedIDs(s.ecs.Enemies)

	for _, id := range entity.SortedIDs(s.ecs.Turrets) {
		turret := s.ecs.Turrets[id]
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		if !s.ecs.Alive(turret.Target) {
			turret.Target = s.firstInRange(t.Position, enemies)
		}
		if !fire {
			continue
		}

		var aim types.EntityID
		switch turret.Mode {
		case component.TargetFirstInRange:
			aim = s.firstInRange(t.Position, enemies)
		default:
			if !s.inRange(t.Position, turret.Target) {
				turret.Target = s.firstInRange(t.Position, enemies)
			}
			aim = turret.Target
		}
		if aim == types.NoEntity {
			continue
		}
		target := s.ecs.Transforms[aim]
		dir := target.Position.Sub(t.Position).Normalize()
		if dir.Length() == 0 {
			continue
		}
		SpawnBullet(s.ecs, t.Position, dir, config.PlayerBulletDamage)
		t.Rotation = utils.FacingRotation(dir)
		s.audio.Play(defs.SoundTurretFire)
	}
}

func (s *TurretSystem) inRange(from component.Vec2, id types.EntityID) bool {
	if _, ok := s.ecs.Enemies[id]; !ok {
		return false
	}
	t, ok := s.ecs.Transforms[id]
	return ok && t.Position.Distance(from) < config.TurretRadar
}

// firstInRange — первый по порядку идентификаторов враг в радиусе радара.
func (s *TurretSystem) firstInRange(from component.Vec2, enemies []types.EntityID) types.EntityID {
	for _, id := range enemies {
		if s.inRange(from, id) {
			return id
		}
	}
	return types.NoEntity
}
