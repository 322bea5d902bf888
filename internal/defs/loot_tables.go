// internal/defs/loot_tables.go
package defs

import "go-base-defense/internal/component"

// RewardTable — шанс выпадения детали при гибели врага и распределение её ранга.
type RewardTable struct {
	Chance float64 // 1 и больше — выпадает всегда, без броска
	Tiers  TierRoll
}

// RewardTables по архетипу. Для Splitter таблица применяется только к поколению 1.
var RewardTables = map[component.EnemyKind]RewardTable{
	component.KindPawn:       {Chance: 0.1, Tiers: TierRoll{{component.TierBlue, 1}}},
	component.KindStinger:    {Chance: 0.1, Tiers: TierRoll{{component.TierRed, 1}}},
	component.KindRogue:      {Chance: 0.2, Tiers: TierRoll{{component.TierRed, 0.4}, {component.TierBlue, 1}}},
	component.KindSplitter:   {Chance: 0.3, Tiers: TierRoll{{component.TierRed, 0.5}, {component.TierBlue, 1}}},
	component.KindBishop:     {Chance: 0.3, Tiers: TierRoll{{component.TierGreen, 0.25}, {component.TierRed, 0.5}, {component.TierBlue, 1}}},
	component.KindPropagator: {Chance: 1, Tiers: TierRoll{{component.TierGreen, 0.4}, {component.TierRed, 0.5}, {component.TierBlue, 1}}},
}

// PartSize — половинные размеры детали.
var PartSize = component.Vec2{X: 15, Y: 15}

// PartSprites — спрайт детали по рангу.
var PartSprites = map[component.PartTier]string{
	component.TierBlue:  SpritePartBlue,
	component.TierRed:   SpritePartRed,
	component.TierGreen: SpritePartGreen,
}

// PartPickupSounds — звук подбора по рангу.
var PartPickupSounds = map[component.PartTier]string{
	component.TierBlue:  SoundPickupBlue,
	component.TierRed:   SoundPickupRed,
	component.TierGreen: SoundPickupGreen,
}
