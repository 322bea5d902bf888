// internal/system/enemy_behavior.go
package system

import (
	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/utils"
)

// EnemyBehaviorSystem двигает врагов и применяет способности по их варианту.
type EnemyBehaviorSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewEnemyBehaviorSystem(ecs *entity.ECS, rng *utils.PRNGService) *EnemyBehaviorSystem {
	return &EnemyBehaviorSystem{ecs: ecs, rng: rng}
}

func (s *EnemyBehaviorSystem) Update(deltaTime float64) {
	_, baseT, ok := s.ecs.Base()
	if !ok {
		return
	}
	abilityFired := s.ecs.Timers != nil && s.ecs.Timers.Ability.JustFinished()
	basePos := baseT.Position

	// Порождённые в этом кадре враги начинают двигаться со следующего.
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy, ok := s.ecs.Enemies[id]
		if !ok {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		s.step(enemy, t, basePos, abilityFired, deltaTime)
	}
}

func (s *EnemyBehaviorSystem) step(enemy *component.Enemy, t *component.Transform, basePos component.Vec2, abilityFired bool, deltaTime float64) {
	now := s.ecs.GameTime
	def := defs.EnemyLibrary[enemy.Variant.Kind()]

	switch v := enemy.Variant.(type) {
	case component.Pawn, component.Stinger:
		dir := s.jittered(basePos.Sub(t.Position).Normalize(), defs.JitterFor(v.Kind()))
		move(t, dir, enemy.Speed, deltaTime)
		t.Rotation = utils.FacingRotation(dir)

	case component.Splitter:
		if v.SplitCount == 0 || now-v.LastRedirect > config.SplitterRedirectInterval {
			v.Direction = basePos.Sub(t.Position).Normalize()
			if v.SplitCount > 0 {
				v.LastRedirect = now
			}
		}
		enemy.Variant = v
		move(t, v.Direction, enemy.Speed, deltaTime)
		t.Rotation += def.SpinRate

	case component.Rogue:
		if _, playerT, ok := s.ecs.Player(); ok {
			move(t, playerT.Position.Sub(t.Position).Normalize(), enemy.Speed, deltaTime)
			t.Rotation -= def.SpinRate
		} else {
			move(t, basePos.Sub(t.Position).Normalize(), enemy.Speed, deltaTime)
			t.Rotation += def.SpinRate
		}

	case component.Bishop:
		if abilityFired {
			for i := 0; i < defs.DeaconDefinition.SpawnCount; i++ {
				dir := component.Vec2{X: s.rng.Range(-1, 1), Y: s.rng.Range(-1, 1)}.Normalize()
				SpawnDeacon(s.ecs, t.Position, dir)
			}
		}
		move(t, basePos.Sub(t.Position).Normalize(), enemy.Speed, deltaTime)
		t.Rotation += def.SpinRate

	case component.Propagator:
		if abilityFired {
			s.spawnBrood(t.Position)
			return
		}
		move(t, basePos.Sub(t.Position).Normalize(), enemy.Speed, deltaTime)
		t.Rotation += def.SpinRate

	case component.Neonate:
		if now-v.SpawnTime > config.NeonateGestation {
			v.Direction = s.jittered(basePos.Sub(t.Position).Normalize(), defs.JitterFor(component.KindNeonate))
			enemy.Variant = v
		}
		move(t, v.Direction, enemy.Speed, deltaTime)
		t.Rotation = utils.FacingRotation(v.Direction)
	}
}

// spawnBrood выпускает выводок Propagator, по одному Neonate на каждое смещение.
func (s *EnemyBehaviorSystem) spawnBrood(pos component.Vec2) {
	for _, offset := range defs.NeonateOffsets {
		SpawnEnemy(s.ecs, component.Neonate{
			Direction: offset.Normalize(),
			SpawnTime: s.ecs.GameTime,
		}, pos)
	}
}

func (s *EnemyBehaviorSystem) jittered(dir component.Vec2, amount float64) component.Vec2 {
	if amount == 0 {
		return dir
	}
	return dir.Add(component.Vec2{X: s.rng.Range(-amount, amount), Y: s.rng.Range(-amount, amount)})
}

func move(t *component.Transform, dir component.Vec2, speed, deltaTime float64) {
	t.Position = t.Position.Add(dir.Scale(speed * deltaTime))
}
