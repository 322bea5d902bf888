// internal/component/player.go
package component

// Player хранит параметры управляемого корабля.
type Player struct {
	Health    int64
	MaxHealth int64
	Speed     float64
	Size      Vec2
}

// Base — защищаемая постройка; её уровень масштабирует всю игру.
type Base struct {
	Health        int64
	Level         int64
	Parts         []Part
	PartsRequired []PartTier
	MaxParts      int
	LeveledUp     bool
	Size          Vec2
	SpawnTime     float64 // по часам сессии (ECS.SessionTime)
}

// PushPartRequired добавляет ранг в рецепт, не превышая MaxParts.
func (b *Base) PushPartRequired(tier PartTier) bool {
	if len(b.PartsRequired) >= b.MaxParts {
		return false
	}
	b.PartsRequired = append(b.PartsRequired, tier)
	return true
}

// ClearRecipe сбрасывает и собранные детали, и рецепт.
func (b *Base) ClearRecipe() {
	b.Parts = b.Parts[:0]
	b.PartsRequired = b.PartsRequired[:0]
}
