// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/ui"
	"go-base-defense/pkg/render"
)

// GameState — экран активной сессии.
type GameState struct {
	sm       *StateMachine
	ctx      *Context
	renderer *render.RenderSystem
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	return &GameState{
		sm:       sm,
		ctx:      ctx,
		renderer: render.NewRenderSystem(ctx.Game.ECS, ctx.Sprites),
		hud:      ui.NewHUD(ctx.Face, ctx.TitleFace),
	}
}

func (g *GameState) Enter() {
	g.ctx.Game.StartSession()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sm.SetState(NewMenuState(g.sm, g.ctx))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.renderer.ShowHitbox = !g.renderer.ShowHitbox
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctx.Logger.Info("audio toggled", "muted", g.ctx.Audio.ToggleMute())
	}

	g.ctx.Game.Update(deltaTime)

	if result, ok := g.ctx.Game.LastResult(); ok {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, result))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen)
	g.hud.Draw(screen, g.hudData())
}

func (g *GameState) hudData() ui.HUDData {
	game := g.ctx.Game
	d := ui.HUDData{
		Paused:    game.IsPaused(),
		TimeAlive: game.TimeAlive(),
		Kills:     game.Stats().Kills,
	}
	if banner, ok := game.Banner(); ok {
		d.Banner = banner
	}
	if base, _, ok := game.ECS.Base(); ok {
		d.BaseHealth = base.Health
		d.BaseMaxHealth = defs.BaseMaxHealthFor(base.Level, config.BaseHealth)
		d.BaseLevel = base.Level
		d.PartsRequired = base.PartsRequired
		d.PartsCollected = len(base.Parts)
	}
	if player, _, ok := game.ECS.Player(); ok {
		d.PlayerHealth = player.Health
		d.PlayerMaxHealth = player.MaxHealth
	}
	if wave := game.ECS.Wave; wave != nil {
		d.Wave = wave.Number
		_, d.ThresholdWave = defs.WavePatterns[wave.Number]
	}
	return d
}

func (g *GameState) Exit() {
	g.ctx.Game.EndSession()
}
