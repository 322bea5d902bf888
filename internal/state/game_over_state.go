// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-base-defense/internal/app"
	"go-base-defense/internal/config"
	"go-base-defense/internal/event"
	"go-base-defense/internal/ui"
)

const scoreTableSize = 10

// GameOverState — экран итогов забега.
type GameOverState struct {
	sm     *StateMachine
	ctx    *Context
	result event.GameOverData
	stats  app.SessionStats
	table  *ui.ScoreTable
}

func NewGameOverState(sm *StateMachine, ctx *Context, result event.GameOverData) *GameOverState {
	return &GameOverState{
		sm:     sm,
		ctx:    ctx,
		result: result,
		table:  ui.NewScoreTable(config.ScreenHeight/2 + 20),
	}
}

func (s *GameOverState) Enter() {
	s.stats = s.ctx.Game.Stats()
	s.ctx.Logger.Info("game over", "base_level", s.result.BaseLevel, "time_alive", s.result.TimeAlive,
		"kills", s.stats.Kills, "parts", s.stats.PartsCollected)
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.Quit()
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	lines := []string{
		"BASE DESTROYED",
		fmt.Sprintf("level %d   survived %ds", s.result.BaseLevel, s.result.TimeAlive),
		fmt.Sprintf("%d kills   %d parts   %d ships lost", s.stats.Kills, s.stats.PartsCollected, s.stats.Respawns),
		"G  play again   M  menu   ESC  quit",
	}
	for i, line := range lines {
		face := s.ctx.Face
		if i == 0 {
			face = s.ctx.TitleFace
		}
		b := text.BoundString(face, line)
		text.Draw(screen, line, face, cx-b.Dx()/2, 140+i*36, config.HUDTextColor)
	}
	s.table.Draw(screen, s.ctx.Scores.Best(scoreTableSize), s.ctx.Face)
}

func (s *GameOverState) Exit() {}
