// internal/state/context.go
package state

import (
	"log/slog"

	"golang.org/x/image/font"

	"go-base-defense/internal/app"
	"go-base-defense/internal/assets"
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/score"
)

// Context — ресурсы, общие для всех экранов приложения.
type Context struct {
	Settings  config.Settings
	Logger    *slog.Logger
	Sprites   *assets.SpriteStore
	Audio     *assets.AudioPlayer
	Scores    *score.History
	Face      font.Face
	TitleFace font.Face
	Game      *app.Game
}

// NewContext собирает ресурсы и игровую логику. Сессия не запускается.
func NewContext(settings config.Settings, scores *score.History, logger *slog.Logger) *Context {
	sprites := assets.NewSpriteStore(settings.AssetsDir, logger)
	audio := assets.NewAudioPlayer(settings.AssetsDir, defs.AllSounds, logger)
	return &Context{
		Settings:  settings,
		Logger:    logger,
		Sprites:   sprites,
		Audio:     audio,
		Scores:    scores,
		Face:      assets.LoadFace(settings.AssetsDir, "kenvector_future.ttf", 14, logger),
		TitleFace: assets.LoadFace(settings.AssetsDir, "kenvector_future.ttf", 28, logger),
		Game:      app.NewGame(settings, &EbitenInput{}, audio, scores, logger),
	}
}
