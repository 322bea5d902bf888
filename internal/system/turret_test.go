package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/types"
)

var turretPos = component.Vec2{X: 300, Y: 600}

func spawnTurret(w *world, mode component.TargetMode) types.EntityID {
	return SpawnBuilding(w.ecs, 5, turretPos, defs.BuildingSpawn{Turret: true, Sprite: defs.SpriteTurret}, mode)
}

// fireTurrets продвигает общий таймер до срабатывания и запускает систему.
func fireTurrets(w *world, ts *TurretSystem) {
	w.ecs.Timers.Turret.Tick(config.TurretCooldown)
	ts.Update(0)
}

// lastBulletDirection — направление самого нового снаряда.
func lastBulletDirection(t *testing.T, w *world) component.Vec2 {
	ids := entity.SortedIDs(w.ecs.Projectiles)
	require.NotEmpty(t, ids)
	return w.ecs.Projectiles[ids[len(ids)-1]].Direction
}

func TestTurret_StoredTargetIsKept(t *testing.T) {
	w := newWorld()
	ts := NewTurretSystem(w.ecs, w.audio)
	turret := spawnTurret(w, component.TargetStored)
	first := SpawnEnemy(w.ecs, component.Pawn{}, turretPos.Add(component.Vec2{X: 100}))
	SpawnEnemy(w.ecs, component.Pawn{}, turretPos.Add(component.Vec2{Y: -50}))

	ts.Update(0)
	assert.Equal(t, first, w.ecs.Turrets[turret].Target)
	assert.Empty(t, w.ecs.Projectiles, "no shot before cooldown")

	fireTurrets(w, ts)
	require.Len(t, w.ecs.Projectiles, 1)
	assert.Equal(t, component.Vec2{X: 1}, lastBulletDirection(t, w))
	assert.Contains(t, w.audio.clips, defs.SoundTurretFire)
}

func TestTurret_StoredTargetReacquiredWhenOutOfRange(t *testing.T) {
	w := newWorld()
	ts := NewTurretSystem(w.ecs, w.audio)
	turret := spawnTurret(w, component.TargetStored)
	first := SpawnEnemy(w.ecs, component.Pawn{}, turretPos.Add(component.Vec2{X: 100}))
	second := SpawnEnemy(w.ecs, component.Pawn{}, turretPos.Add(component.Vec2{Y: -50}))
	ts.Update(0)

	w.ecs.Transforms[first].Position = turretPos.Add(component.Vec2{X: config.TurretRadar + 1})
	fireTurrets(w, ts)
	assert.Equal(t, second, w.ecs.Turrets[turret].Target)
	assert.Equal(t, component.Vec2{Y: -1}, lastBulletDirection(t, w))
}

func TestTurret_StaleTargetReacquired(t *testing.T) {
	w := newWorld()
	ts := NewTurretSystem(w.ecs, w.audio)
	turret := spawnTurret(w, component.TargetStored)
	first := SpawnEnemy(w.ecs, component.Pawn{}, turretPos.Add(component.Vec2{X: 100}))
	ts.Update(0)
	require.Equal(t, first, w.ecs.Turrets[turret].Target)

	w.ecs.DestroyEntity(first)
	replacement := SpawnEnemy(w.ecs, component.Pawn{}, turretPos.Add(component.Vec2{X: -100}))
	require.Equal(t, first.Index(), replacement.Index(), "slot is reused")

	ts.Update(0)
	assert.Equal(t, replacement, w.ecs.Turrets[turret].Target)
}

func TestTurret_FirstInRangeMode(t *testing.T) {
	w := newWorld()
	ts := NewTurretSystem(w.ecs, w.audio)
	spawnTurret(w, component.TargetFirstInRange)
	first := SpawnEnemy(w.ecs, component.Pawn{}, turretPos.Add(component.Vec2{X: 100}))
	SpawnEnemy(w.ecs, component.Pawn{}, turretPos.Add(component.Vec2{Y: -50}))

	fireTurrets(w, ts)
	assert.Equal(t, component.Vec2{X: 1}, lastBulletDirection(t, w))

	w.ecs.Transforms[first].Position = turretPos.Add(component.Vec2{X: 500})
	fireTurrets(w, ts)
	assert.Equal(t, component.Vec2{Y: -1}, lastBulletDirection(t, w))
}

func TestTurret_NothingInRange(t *testing.T) {
	w := newWorld()
	ts := NewTurretSystem(w.ecs, w.audio)
	spawnTurret(w, component.TargetStored)
	SpawnEnemy(w.ecs, component.Pawn{}, turretPos.Add(component.Vec2{X: config.TurretRadar}))

	fireTurrets(w, ts)
	assert.Empty(t, w.ecs.Projectiles, "radar range is exclusive")
}
