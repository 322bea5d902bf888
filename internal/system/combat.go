// internal/system/combat.go
package system

import (
	"log/slog"

	"go-base-defense/internal/component"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/event"
	"go-base-defense/internal/interfaces"
	"go-base-defense/internal/types"
	"go-base-defense/internal/utils"
)

// CombatSystem разрешает все столкновения кадра. Удаление мгновенное:
// сущность, уничтоженная раньше в этом кадре, дальше не участвует.
type CombatSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	audio           interfaces.AudioPlayer
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewCombatSystem(ecs *entity.ECS, rng *utils.PRNGService, audio interfaces.AudioPlayer, eventDispatcher *event.Dispatcher, logger *slog.Logger) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		rng:             rng,
		audio:           audio,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	s.bulletsVsEnemies()
	s.bulletsVsDeacons()
	s.enemiesVsBase()
	s.enemiesVsPlayer()
	s.playerVsParts()
}

func (s *CombatSystem) bulletsVsEnemies() {
	enemies := entity.SortedIDs(s.ecs.Enemies)
	for _, bulletID := range entity.SortedIDs(s.ecs.Projectiles) {
		bullet := s.ecs.Projectiles[bulletID]
		bt, ok := s.ecs.Transforms[bulletID]
		if !ok {
			continue
		}
		for _, enemyID := range enemies {
			enemy, ok := s.ecs.Enemies[enemyID]
			if !ok {
				continue
			}
			et := s.ecs.Transforms[enemyID]
			if !utils.AABBOverlap(bt.Position, bullet.Size, et.Position, enemy.Size) {
				continue
			}
			s.ecs.DestroyEntity(bulletID)
			enemy.Health -= bullet.Damage
			if enemy.Health <= 0 {
				s.killEnemy(enemyID, enemy, et.Position)
			}
			break
		}
	}
}

// killEnemy применяет посмертный эффект варианта и удаляет врага.
func (s *CombatSystem) killEnemy(id types.EntityID, enemy *component.Enemy, pos component.Vec2) {
	kind := enemy.Variant.Kind()
	data := event.EnemyKilledData{Kind: kind.String(), X: pos.X, Y: pos.Y}

	switch v := enemy.Variant.(type) {
	case component.Splitter:
		if child, ok := defs.SplitterChildren[v.SplitCount]; ok {
			for i := 0; i < defs.SplitterChildCount; i++ {
				s.spawnSplitterChild(v.SplitCount+1, child, pos.Add(defs.SplitterChildOffset))
			}
			data.Offspring = defs.SplitterChildCount
			s.audio.Play(defs.SoundSplit)
		}
		if v.SplitCount == 1 {
			data.Reward = s.rollReward(kind, pos)
		}
	case component.Neonate:
	default:
		data.Reward = s.rollReward(kind, pos)
	}

	s.ecs.DestroyEntity(id)
	s.audio.Play(defs.SoundEnemyDeath)
	s.logger.Debug("enemy killed", "kind", data.Kind, "reward", data.Reward, "offspring", data.Offspring)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
}

func (s *CombatSystem) spawnSplitterChild(generation int, child defs.SplitterChild, pos component.Vec2) {
	dir := component.Vec2{X: s.rng.Range(-1, 1), Y: s.rng.Range(-1, 1)}
	id := SpawnEnemy(s.ecs, component.Splitter{
		SplitCount:   generation,
		LastRedirect: s.ecs.GameTime,
		Direction:    dir,
	}, pos)
	enemy := s.ecs.Enemies[id]
	enemy.Health = child.Health
	enemy.Speed = child.Speed
	enemy.Size = child.Size
	s.ecs.Transforms[id].Scale = child.Scale
}

// rollReward бросает шанс выпадения и, при успехе, ранг детали.
func (s *CombatSystem) rollReward(kind component.EnemyKind, pos component.Vec2) bool {
	table, ok := defs.RewardTables[kind]
	if !ok || !s.rng.Chance(table.Chance) {
		return false
	}
	SpawnPart(s.ecs, table.Tiers.Pick(s.rng.Float64()), pos)
	return true
}

func (s *CombatSystem) bulletsVsDeacons() {
	deacons := entity.SortedIDs(s.ecs.Deacons)
	for _, bulletID := range entity.SortedIDs(s.ecs.Projectiles) {
		bullet := s.ecs.Projectiles[bulletID]
		bt, ok := s.ecs.Transforms[bulletID]
		if !ok {
			continue
		}
		for _, deaconID := range deacons {
			deacon, ok := s.ecs.Deacons[deaconID]
			if !ok {
				continue
			}
			dt := s.ecs.Transforms[deaconID]
			if !utils.AABBOverlap(bt.Position, bullet.Size, dt.Position, deacon.Size) {
				continue
			}
			s.ecs.DestroyEntity(bulletID)
			s.ecs.DestroyEntity(deaconID)
			s.audio.Play(defs.SoundDeaconShot)
			break
		}
	}
}

func (s *CombatSystem) enemiesVsBase() {
	base, baseT, ok := s.ecs.Base()
	if !ok {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		t := s.ecs.Transforms[id]
		if !utils.AABBOverlap(t.Position, enemy.Size, baseT.Position, base.Size) {
			continue
		}
		base.Health -= enemy.Health
		s.ecs.DestroyEntity(id)
		s.audio.Play(defs.SoundBaseHit)
		if base.Health <= 0 && !s.ecs.Over {
			s.ecs.Over = true
			result := event.GameOverData{
				TimeAlive: uint64(s.ecs.SessionTime - base.SpawnTime),
				BaseLevel: base.Level,
			}
			s.audio.Play(defs.SoundBaseDestroyed)
			s.logger.Info("base destroyed", "time_alive", result.TimeAlive, "base_level", result.BaseLevel)
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: result})
		}
	}
}

func (s *CombatSystem) enemiesVsPlayer() {
	player, playerT, ok := s.ecs.Player()
	if !ok {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		t := s.ecs.Transforms[id]
		if !utils.AABBOverlap(t.Position, enemy.Size, playerT.Position, player.Size) {
			continue
		}
		player.Health -= enemy.Health
		s.ecs.DestroyEntity(id)
		s.audio.Play(defs.SoundPlayerHit)
		if player.Health <= 0 {
			s.respawnPlayer(player, playerT)
		}
	}
}

// respawnPlayer возвращает игрока к базе с полным здоровьем.
func (s *CombatSystem) respawnPlayer(player *component.Player, t *component.Transform) {
	if _, baseT, ok := s.ecs.Base(); ok {
		t.Position = baseT.Position
	}
	player.Health = player.MaxHealth
	s.audio.Play(defs.SoundPlayerRespawn)
	s.logger.Debug("player respawned", "x", t.Position.X, "y", t.Position.Y)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerRespawned})
}

func (s *CombatSystem) playerVsParts() {
	player, playerT, ok := s.ecs.Player()
	if !ok {
		return
	}
	base, _, hasBase := s.ecs.Base()
	for _, id := range entity.SortedIDs(s.ecs.Parts) {
		part := s.ecs.Parts[id]
		t := s.ecs.Transforms[id]
		if !utils.AABBOverlap(t.Position, part.Size, playerT.Position, player.Size) {
			continue
		}
		collected := *part
		s.ecs.DestroyEntity(id)
		if hasBase {
			base.Parts = append(base.Parts, collected)
		}
		s.audio.Play(defs.PartPickupSounds[collected.Tier])
		s.eventDispatcher.Dispatch(event.Event{Type: event.PartCollected, Data: collected})
	}
}
