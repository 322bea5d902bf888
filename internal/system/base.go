// internal/system/base.go
package system

import (
	"log/slog"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/event"
	"go-base-defense/internal/interfaces"
	"go-base-defense/internal/utils"
)

// BaseSystem ведёт прогрессию базы: рецепт деталей, повышение уровня и его эффекты.
type BaseSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	audio           interfaces.AudioPlayer
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
	turretMode      component.TargetMode
}

func NewBaseSystem(ecs *entity.ECS, rng *utils.PRNGService, audio interfaces.AudioPlayer, eventDispatcher *event.Dispatcher, logger *slog.Logger, turretMode component.TargetMode) *BaseSystem {
	return &BaseSystem{
		ecs:             ecs,
		rng:             rng,
		audio:           audio,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		turretMode:      turretMode,
	}
}

func (s *BaseSystem) Update(deltaTime float64) {
	base, baseT, ok := s.ecs.Base()
	if !ok {
		return
	}
	s.refillRecipe(base)
	CheckRecipe(base)
	if base.LeveledUp {
		s.applyLevelEffects(base, baseT)
	}
}

// refillRecipe разыгрывает новый рецепт, когда прежний израсходован.
func (s *BaseSystem) refillRecipe(base *component.Base) {
	if len(base.PartsRequired) > 0 {
		return
	}
	roll := defs.RecipeRollFor(base.Level)
	for i := 0; i < base.MaxParts; i++ {
		base.PushPartRequired(roll.Pick(s.rng.Float64()))
	}
}

// CheckRecipe сверяет собранные детали с рецептом по порядку. Любое расхождение
// сбрасывает обе последовательности; полное совпадение повышает уровень.
// Возвращает true, если уровень повышен.
func CheckRecipe(base *component.Base) bool {
	if len(base.Parts) > len(base.PartsRequired) {
		base.ClearRecipe()
		return false
	}
	for i, part := range base.Parts {
		if part.Tier != base.PartsRequired[i] {
			base.ClearRecipe()
			return false
		}
	}
	if len(base.PartsRequired) == 0 || len(base.Parts) != len(base.PartsRequired) {
		return false
	}
	base.ClearRecipe()
	base.MaxParts = min(base.MaxParts+1, config.MaxPartsCap)
	base.Level++
	base.LeveledUp = true
	return true
}

// applyLevelEffects применяет разовые эффекты нового уровня. Без игрока шаг
// откладывается: флаг LeveledUp остаётся до его появления.
func (s *BaseSystem) applyLevelEffects(base *component.Base, baseT *component.Transform) {
	player, _, ok := s.ecs.Player()
	if !ok {
		return
	}
	base.LeveledUp = false

	if effect, ok := defs.LevelEffects[base.Level]; ok {
		if effect.BlasterCooldown > 0 && s.ecs.Timers != nil {
			s.ecs.Timers.Blaster.SetDuration(effect.BlasterCooldown)
		}
		player.Speed = effect.PlayerSpeed
		player.MaxHealth = effect.PlayerMaxHealth
		player.Health = effect.PlayerMaxHealth
		base.Health = effect.BaseHealth
		if effect.BaseSize > 0 {
			base.Size = component.Vec2{X: effect.BaseSize, Y: effect.BaseSize}
		}
		for _, b := range effect.Buildings {
			SpawnBuilding(s.ecs, base.Level, baseT.Position, b, s.turretMode)
		}
		if effect.Clip != "" {
			s.audio.Play(effect.Clip)
		}
	}

	s.logger.Info("base leveled up", "level", base.Level, "max_parts", base.MaxParts)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BaseLeveledUp, Data: base.Level})
}
