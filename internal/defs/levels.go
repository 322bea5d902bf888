package defs

import (
	"math"

	"go-base-defense/internal/component"
)

// BuildingSpawn — постройка, появляющаяся рядом с базой при повышении уровня.
type BuildingSpawn struct {
	Offset   component.Vec2
	Turret   bool
	Sprite   string
	Scale    float64
	Rotation float64
}

// LevelEffect — разовые эффекты при достижении уровня.
// Нулевые BlasterCooldown и BaseSize означают «без изменений».
type LevelEffect struct {
	BlasterCooldown float64
	PlayerSpeed     float64
	PlayerMaxHealth int64
	BaseHealth      int64
	BaseSize        float64
	Buildings       []BuildingSpawn
	Clip            string
}

// LevelEffects — эффекты уровней 2–6. Для уровня 7 и выше эффектов нет.
var LevelEffects = map[int64]LevelEffect{
	2: {
		BlasterCooldown: 0.4, PlayerSpeed: 300, PlayerMaxHealth: 150, BaseHealth: 1000, BaseSize: 55,
		Buildings: []BuildingSpawn{{Offset: component.Vec2{X: 34, Y: -5}, Sprite: SpriteBuildingCommand, Scale: 0.2}},
		Clip:      SoundLevelUp2,
	},
	3: {
		BlasterCooldown: 0.3, PlayerSpeed: 350, PlayerMaxHealth: 200, BaseHealth: 1500, BaseSize: 60,
		Buildings: []BuildingSpawn{{Offset: component.Vec2{X: -24, Y: 6}, Sprite: SpriteBuildingHangar, Scale: 0.4}},
		Clip:      SoundLevelUp3,
	},
	4: {
		BlasterCooldown: 0.2, PlayerSpeed: 400, PlayerMaxHealth: 250, BaseHealth: 2000, BaseSize: 65,
		Buildings: []BuildingSpawn{{Offset: component.Vec2{X: -15, Y: 25}, Sprite: SpriteBuildingDepot, Scale: 0.5}},
		Clip:      SoundLevelUp3,
	},
	5: {
		BlasterCooldown: 0.1, PlayerSpeed: 450, PlayerMaxHealth: 300, BaseHealth: 2500, BaseSize: 70,
		Buildings: []BuildingSpawn{{Offset: component.Vec2{X: 5, Y: 27}, Turret: true, Sprite: SpriteTurret, Scale: 0.3, Rotation: -math.Pi}},
		Clip:      SoundLevelUp5,
	},
	6: {
		PlayerSpeed: 500, PlayerMaxHealth: 300, BaseHealth: 3000,
		Buildings: []BuildingSpawn{
			{Offset: component.Vec2{X: 15, Y: -36}, Turret: true, Sprite: SpriteTurret, Scale: 0.3},
			{Offset: component.Vec2{X: 15, Y: -30}, Sprite: SpriteBuildingDepot, Scale: 0.4},
		},
		Clip: SoundLevelUp6,
	},
}

// RecipeRolls — распределение рангов рецепта по уровню базы.
var RecipeRolls = map[int64]TierRoll{
	1: {{component.TierBlue, 1}},
	2: {{component.TierRed, 0.3}, {component.TierBlue, 1}},
	3: {{component.TierRed, 0.4}, {component.TierBlue, 1}},
	4: {{component.TierRed, 0.5}, {component.TierBlue, 1}},
	5: {{component.TierGreen, 0.3}, {component.TierRed, 0.5}, {component.TierBlue, 1}},
	6: {{component.TierGreen, 0.5}, {component.TierRed, 1}},
}

// HighLevelRecipeRoll — равные трети для уровня 7 и выше.
var HighLevelRecipeRoll = TierRoll{{component.TierGreen, 1.0 / 3.0}, {component.TierRed, 2.0 / 3.0}, {component.TierBlue, 1}}

// RecipeRollFor возвращает распределение для уровня.
func RecipeRollFor(level int64) TierRoll {
	if roll, ok := RecipeRolls[level]; ok {
		return roll
	}
	if level < 1 {
		return RecipeRolls[1]
	}
	return HighLevelRecipeRoll
}

// BulletStats — скорость и урон снаряда на уровне базы.
type BulletStats struct {
	Speed  float64
	Damage int64
}

var bulletStats = map[int64]BulletStats{
	1: {Speed: 300, Damage: 50},
	2: {Speed: 350, Damage: 60},
	3: {Speed: 400, Damage: 70},
	4: {Speed: 450, Damage: 80},
	5: {Speed: 500, Damage: 90},
	6: {Speed: 550, Damage: 100},
}

// BulletStatsFor возвращает характеристики снаряда для уровня базы.
func BulletStatsFor(level int64) BulletStats {
	if s, ok := bulletStats[level]; ok {
		return s
	}
	if level < 1 {
		return bulletStats[1]
	}
	return BulletStats{Speed: 600, Damage: 100}
}

// BaseMaxHealthFor — запас здоровья базы на уровне: значение из таблицы
// последнего достигнутого уровня с эффектом.
func BaseMaxHealthFor(level int64, initial int64) int64 {
	best := initial
	for l := int64(2); l <= level; l++ {
		if effect, ok := LevelEffects[l]; ok {
			best = effect.BaseHealth
		}
	}
	return best
}
