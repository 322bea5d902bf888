// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-base-defense/internal/config"
)

// MenuState — главное меню.
type MenuState struct {
	sm  *StateMachine
	ctx *Context
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

func (m *MenuState) Enter() {
	m.ctx.Logger.Debug("entered main menu")
}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.sm.Quit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	cy := config.ScreenHeight / 2
	title := "BASE DEFENSE"
	b := text.BoundString(m.ctx.TitleFace, title)
	text.Draw(screen, title, m.ctx.TitleFace, cx-b.Dx()/2, cy-40, config.HUDTextColor)
	for i, line := range []string{"G  start", "ESC  quit", "WASD move   LMB shoot   SPACE pause"} {
		b := text.BoundString(m.ctx.Face, line)
		text.Draw(screen, line, m.ctx.Face, cx-b.Dx()/2, cy+i*24, config.HUDTextColor)
	}
}

func (m *MenuState) Exit() {}
