package system

import (
	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/types"
)

// SpawnBase создаёт базу в центре поля и регистрирует её в сессии.
func SpawnBase(ecs *entity.ECS) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{
		Position: component.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
		Scale:    0.3,
	}
	ecs.Sprites[id] = &component.Sprite{ID: defs.SpriteBase}
	ecs.Bases[id] = &component.Base{
		Health:    config.BaseHealth,
		Level:     1,
		MaxParts:  config.BaseMaxParts,
		Size:      component.Vec2{X: config.BaseHalfSize, Y: config.BaseHalfSize},
		SpawnTime: ecs.SessionTime,
	}
	ecs.BaseID = id
	return id
}

// SpawnPlayer создаёт игрока ниже базы и регистрирует его в сессии.
func SpawnPlayer(ecs *entity.ECS) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{
		Position: component.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight * config.PlayerSpawnFraction},
		Scale:    0.2,
	}
	ecs.Sprites[id] = &component.Sprite{ID: defs.SpritePlayer}
	ecs.Players[id] = &component.Player{
		Health:    config.PlayerHealth,
		MaxHealth: config.PlayerHealth,
		Speed:     config.PlayerSpeed,
		Size:      component.Vec2{X: config.PlayerHalfSize, Y: config.PlayerHalfSize},
	}
	ecs.PlayerID = id
	return id
}

// SpawnEnemy создаёт врага по определению архетипа с заданным вариантом.
func SpawnEnemy(ecs *entity.ECS, variant component.EnemyType, pos component.Vec2) types.EntityID {
	def := defs.EnemyLibrary[variant.Kind()]
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos, Scale: def.Scale}
	ecs.Sprites[id] = &component.Sprite{ID: def.Sprite}
	ecs.Enemies[id] = &component.Enemy{
		Health:  def.Health,
		Variant: variant,
		Speed:   def.Speed,
		Size:    def.Size,
	}
	return id
}

// SpawnDeacon создаёт спутника Bishop.
func SpawnDeacon(ecs *entity.ECS, pos, direction component.Vec2) types.EntityID {
	d := defs.DeaconDefinition
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos, Scale: d.Scale}
	ecs.Sprites[id] = &component.Sprite{ID: defs.SpriteDeacon}
	ecs.Deacons[id] = &component.Deacon{
		Speed:     d.Speed,
		Size:      d.Size,
		Direction: direction,
		SpawnTime: ecs.GameTime,
	}
	return id
}

// SpawnBullet выпускает снаряд из from в направлении direction.
func SpawnBullet(ecs *entity.ECS, from, direction component.Vec2, damage int64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: from, Scale: 0.2}
	ecs.Sprites[id] = &component.Sprite{ID: defs.SpriteBullet}
	ecs.Projectiles[id] = &component.Projectile{
		Speed:     config.BulletSpeed,
		Direction: direction,
		Size:      component.Vec2{X: config.BulletHalfSize, Y: config.BulletHalfSize},
		Damage:    damage,
		SpawnTime: ecs.GameTime,
	}
	return id
}

// SpawnPart оставляет деталь в точке pos.
func SpawnPart(ecs *entity.ECS, tier component.PartTier, pos component.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos, Scale: 0.2}
	ecs.Sprites[id] = &component.Sprite{ID: defs.PartSprites[tier]}
	ecs.Parts[id] = &component.Part{
		Tier:         tier,
		Size:         defs.PartSize,
		CreationTime: ecs.GameTime,
	}
	return id
}

// SpawnBuilding ставит постройку или турель со смещением от базы.
func SpawnBuilding(ecs *entity.ECS, level int64, origin component.Vec2, b defs.BuildingSpawn, mode component.TargetMode) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{
		Position: origin.Add(b.Offset),
		Rotation: b.Rotation,
		Scale:    b.Scale,
	}
	ecs.Sprites[id] = &component.Sprite{ID: b.Sprite}
	if b.Turret {
		ecs.Turrets[id] = &component.Turret{Mode: mode}
	} else {
		ecs.BaseBuildings[id] = &component.BaseBuilding{Level: level}
	}
	return id
}
