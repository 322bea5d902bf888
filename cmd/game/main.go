// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/logging"
	"go-base-defense/internal/score"
	"go-base-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "settings.toml", "path to the TOML settings file")
	flag.Parse()

	settings, settingsErr := config.LoadSettings(*configPath)
	logger := logging.Init(os.Stderr, settings.LogLevel)
	if settingsErr != nil {
		logger.Warn("using default settings", "path", *configPath, "err", settingsErr)
	}

	if settings.EnemyDefs != "" {
		n, err := defs.LoadEnemyDefinitions(settings.EnemyDefs)
		if err != nil {
			logger.Warn("enemy definitions not applied", "path", settings.EnemyDefs, "err", err)
		} else {
			logger.Info("enemy definitions loaded", "path", settings.EnemyDefs, "count", n)
		}
	}

	scores, err := score.Load(settings.ScoreFile)
	if err != nil {
		logger.Warn("score history reset", "path", settings.ScoreFile, "err", err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	ctx := state.NewContext(settings, scores, logger)
	sm.SetState(state.NewMenuState(sm, ctx))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Base Defense")
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
