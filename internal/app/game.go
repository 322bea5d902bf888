// internal/app/game.go
package app

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/event"
	"go-base-defense/internal/interfaces"
	"go-base-defense/internal/score"
	"go-base-defense/internal/system"
	"go-base-defense/internal/utils"
)

// Game holds the session state and runs the simulation systems in frame order.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Settings        config.Settings
	Scores          *score.History

	TimerSystem         *system.TimerSystem
	WaveSystem          *system.WaveSystem
	EnemyBehaviorSystem *system.EnemyBehaviorSystem
	DeaconSystem        *system.DeaconSystem
	PlayerSystem        *system.PlayerSystem
	TurretSystem        *system.TurretSystem
	ProjectileSystem    *system.ProjectileSystem
	CombatSystem        *system.CombatSystem
	PartSystem          *system.PartSystem
	BaseSystem          *system.BaseSystem

	input  interfaces.Input
	audio  interfaces.AudioPlayer
	logger *slog.Logger

	// Session state
	stats      *SessionStats
	mode       component.GameState
	active     bool
	runID      string
	lastResult *event.GameOverData
}

// NewGame собирает системы. Сессия начинается отдельно через StartSession.
func NewGame(settings config.Settings, input interfaces.Input, audio interfaces.AudioPlayer, scores *score.History, logger *slog.Logger) *Game {
	if input == nil {
		input = interfaces.NopInput{}
	}
	if audio == nil {
		audio = interfaces.NopAudio{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if scores == nil {
		scores, _ = score.Load("")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Settings:        settings,
		Scores:          scores,
		input:           input,
		audio:           audio,
		logger:          logger,
		mode:            component.Paused,
	}

	g.TimerSystem = system.NewTimerSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, rng, eventDispatcher, logger)
	g.EnemyBehaviorSystem = system.NewEnemyBehaviorSystem(ecs, rng)
	g.DeaconSystem = system.NewDeaconSystem(ecs, audio, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, input, audio)
	g.TurretSystem = system.NewTurretSystem(ecs, audio)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, rng, audio, eventDispatcher, logger)
	g.PartSystem = system.NewPartSystem(ecs)
	g.BaseSystem = system.NewBaseSystem(ecs, rng, audio, eventDispatcher, logger, turretMode(settings.TurretTargeting))

	g.stats = newSessionStats(func() float64 { return ecs.SessionTime })

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener, event.GameOver)

	logger.Debug("game created", "seed", rng.Seed(), "turret_targeting", settings.TurretTargeting)
	return g
}

func turretMode(s string) component.TargetMode {
	if s == config.TargetingFirstInRange {
		return component.TargetFirstInRange
	}
	return component.TargetStored
}

// StartSession сбрасывает мир и создаёт базу, игрока, директор волн и таймеры.
func (g *Game) StartSession() {
	g.ECS.Clear()
	system.SpawnBase(g.ECS)
	system.SpawnPlayer(g.ECS)
	g.ECS.Wave = system.NewWave()
	g.ECS.Timers = &component.SessionTimers{
		Ability: component.NewTimer(config.EnemyAbilityCycle, true),
		Blaster: component.NewTimer(config.BlasterCooldown, true),
		Turret:  component.NewTimer(config.TurretCooldown, true),
	}
	g.runID = uuid.NewString()
	g.lastResult = nil
	g.stats.reset()
	g.EventDispatcher.Subscribe(g.stats, event.SessionEvents...)
	g.active = true
	g.mode = component.Running
	if g.Settings.StartPaused {
		g.mode = component.Paused
	}
	g.logger.Info("session started", "run_id", g.runID, "mode", g.mode)
}

// EndSession удаляет все сущности сессии.
func (g *Game) EndSession() {
	if !g.active {
		return
	}
	g.logger.Info("session ended", "run_id", g.runID, "entities", g.ECS.Count(),
		"kills", g.stats.Kills, "parts", g.stats.PartsCollected)
	g.EventDispatcher.Unsubscribe(g.stats)
	g.ECS.Clear()
	g.active = false
	g.mode = component.Paused
}

// Update progresses the session by one frame.
func (g *Game) Update(deltaTime float64) {
	if !g.active || g.ECS.Over {
		return
	}
	g.ECS.SessionTime += deltaTime

	if g.input.IsKeyJustPressed(interfaces.KeySpace) {
		g.TogglePause()
	}
	if g.mode == component.Paused {
		return
	}
	if g.input.IsKeyJustPressed(interfaces.KeyTab) {
		g.CheatLevelUp()
	}

	g.ECS.GameTime += deltaTime

	g.TimerSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.EnemyBehaviorSystem.Update(deltaTime)
	g.DeaconSystem.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime)
	g.TurretSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.PartSystem.Update(deltaTime)
	g.BaseSystem.Update(deltaTime)
}

// TogglePause переключает Running/Paused.
func (g *Game) TogglePause() {
	if g.mode == component.Paused {
		g.mode = component.Running
	} else {
		g.mode = component.Paused
	}
	g.logger.Debug("pause toggled", "mode", g.mode)
}

// CheatLevelUp поднимает уровень базы в обход рецепта; эффекты применятся
// на ближайшем шаге прогрессии.
func (g *Game) CheatLevelUp() {
	base, _, ok := g.ECS.Base()
	if !ok {
		return
	}
	base.Level++
	base.LeveledUp = true
	g.logger.Debug("cheat level up", "level", base.Level)
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		if result, ok := e.Data.(event.GameOverData); ok {
			l.game.recordResult(result)
		}
	}
}

func (g *Game) recordResult(result event.GameOverData) {
	g.lastResult = &result
	rec := score.Record{
		RunID:      g.runID,
		BaseLevel:  result.BaseLevel,
		TimeAlive:  result.TimeAlive,
		Kills:      g.stats.Kills,
		Parts:      g.stats.PartsCollected,
		RecordedAt: time.Now().UTC(),
	}
	if err := g.Scores.Append(rec); err != nil {
		g.logger.Warn("score history not saved", "err", err)
	}
}

// --- Public Accessors ---

func (g *Game) IsPaused() bool            { return g.mode == component.Paused }
func (g *Game) Mode() component.GameState { return g.mode }
func (g *Game) IsActive() bool            { return g.active }
func (g *Game) IsOver() bool              { return g.ECS.Over }
func (g *Game) RunID() string             { return g.runID }
func (g *Game) GetGameTime() float64      { return g.ECS.GameTime }

// Stats — счётчики текущего или последнего забега.
func (g *Game) Stats() SessionStats { return *g.stats }

// Banner — текущее объявление HUD (новая волна, уровень базы, потеря корабля).
func (g *Game) Banner() (string, bool) { return g.stats.Banner() }

// LastResult — итог завершившегося забега, если он был.
func (g *Game) LastResult() (event.GameOverData, bool) {
	if g.lastResult == nil {
		return event.GameOverData{}, false
	}
	return *g.lastResult, true
}

// TimeAlive — секунды с появления базы по часам сессии, паузы включены.
// После разрушения базы возвращает зафиксированный итог.
func (g *Game) TimeAlive() float64 {
	if g.lastResult != nil {
		return float64(g.lastResult.TimeAlive)
	}
	base, _, ok := g.ECS.Base()
	if !ok {
		return 0
	}
	return g.ECS.SessionTime - base.SpawnTime
}
