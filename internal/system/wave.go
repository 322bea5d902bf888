// internal/system/wave.go
package system

import (
	"log/slog"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/event"
	"go-base-defense/internal/utils"
)

// WaveSystem выпускает волны врагов по срабатыванию таймера волн.
type WaveSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewWaveSystem(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger *slog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// NewWave возвращает состояние директора на начало сессии.
func NewWave() *component.Wave {
	return &component.Wave{
		Timer:      component.NewTimer(config.WaveCooldown, true),
		EnemyCount: defs.InitialEnemyCount,
		Variants:   defs.InitialVariants(),
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	for i := 0; i < wave.Timer.TimesFinished(); i++ {
		AdvanceWave(wave)
		for n := 0; n < wave.EnemyCount+1; n++ {
			s.spawnEnemy(wave)
		}
		s.logger.Info("wave started", "wave", wave.Number, "enemies", wave.EnemyCount+1, "pool", len(wave.Variants))
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: wave.Number})
	}
}

// AdvanceWave увеличивает номер волны и применяет пороговое изменение пула.
func AdvanceWave(wave *component.Wave) {
	wave.Number++
	pattern, ok := defs.WavePatterns[wave.Number]
	if !ok {
		wave.EnemyCount = defs.CeilingEnemyCount
		return
	}
	wave.EnemyCount = pattern.EnemyCount
	if pattern.DropOldest && len(wave.Variants) > 0 {
		wave.Variants = wave.Variants[1:]
	}
	wave.Variants = append(wave.Variants, pattern.Unlock)
}

// CalculateProbabilities возвращает треугольные веса для пула из n вариантов:
// i-й по старшинству получает (n-i)/(n(n+1)/2). n ограничено сверху.
func CalculateProbabilities(n int) []float64 {
	if n > defs.MaxWeightedVariants {
		n = defs.MaxWeightedVariants
	}
	if n <= 0 {
		return nil
	}
	total := float64(n*(n+1)) / 2
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = float64(n-i) / total
	}
	return weights
}

// ChooseVariant выбирает вариант из пула по треугольному распределению.
func ChooseVariant(variants []component.EnemyKind, rng *utils.PRNGService) component.EnemyKind {
	weights := CalculateProbabilities(len(variants))
	if len(weights) == 0 {
		return component.KindPawn
	}
	return variants[rng.ChooseWeighted(weights)]
}

// EdgeSpawnPosition — случайная точка на одной из четырёх сторон поля за его краем.
func EdgeSpawnPosition(rng *utils.PRNGService) component.Vec2 {
	const w, h, off = config.ScreenWidth, config.ScreenHeight, config.SpawnEdgeOffset
	switch rng.Intn(4) {
	case 0: // верх
		return component.Vec2{X: rng.Float64() * w, Y: -off}
	case 1: // низ
		return component.Vec2{X: rng.Float64() * w, Y: h + off}
	case 2: // лево
		return component.Vec2{X: -off, Y: rng.Float64() * h}
	default: // право
		return component.Vec2{X: w + off, Y: rng.Float64() * h}
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	pos := EdgeSpawnPosition(s.rng)
	kind := ChooseVariant(wave.Variants, s.rng)
	id := SpawnEnemy(s.ecs, NewVariant(kind, s.ecs.GameTime), pos)
	s.logger.Debug("enemy spawned", "id", id, "kind", kind, "x", pos.X, "y", pos.Y)
}

// NewVariant строит начальное значение варианта для архетипа.
func NewVariant(kind component.EnemyKind, now float64) component.EnemyType {
	switch kind {
	case component.KindStinger:
		return component.Stinger{}
	case component.KindSplitter:
		return component.Splitter{LastRedirect: now}
	case component.KindRogue:
		return component.Rogue{}
	case component.KindBishop:
		return component.Bishop{}
	case component.KindPropagator:
		return component.Propagator{}
	case component.KindNeonate:
		return component.Neonate{SpawnTime: now}
	default:
		return component.Pawn{}
	}
}
