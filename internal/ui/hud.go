// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
)

// HUDData — снимок состояния сессии для отрисовки.
type HUDData struct {
	BaseHealth      int64
	BaseMaxHealth   int64
	BaseLevel       int64
	PartsRequired   []component.PartTier
	PartsCollected  int
	PlayerHealth    int64
	PlayerMaxHealth int64
	Wave            int
	ThresholdWave   bool
	TimeAlive       float64
	Kills           int
	Banner          string
	Paused          bool
}

// HUD собирает индикаторы игрового экрана.
type HUD struct {
	face         font.Face
	titleFace    font.Face
	baseBar      *HealthBar
	playerBar    *HealthBar
	recipe       *RecipeIndicator
	wave         *WaveIndicator
	panelHeight  float32
	panelPadding int
}

func NewHUD(face, titleFace font.Face) *HUD {
	return &HUD{
		face:         face,
		titleFace:    titleFace,
		baseBar:      NewHealthBar(10, 10, 220, 16, "BASE", config.FallbackColors["base"]),
		playerBar:    NewHealthBar(10, 32, 220, 16, "SHIP", config.FallbackColors["player"]),
		recipe:       NewRecipeIndicator(250, 12),
		wave:         NewWaveIndicator(config.ScreenWidth/2, 36),
		panelHeight:  56,
		panelPadding: 10,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, h.panelHeight, config.HUDPanelColor, false)

	h.baseBar.Draw(screen, d.BaseHealth, d.BaseMaxHealth, h.face)
	h.playerBar.Draw(screen, d.PlayerHealth, d.PlayerMaxHealth, h.face)
	h.recipe.Draw(screen, d.PartsRequired, d.PartsCollected)
	text.Draw(screen, fmt.Sprintf("LEVEL %d", d.BaseLevel), h.face, 250, 48, config.HUDTextColor)
	h.wave.Draw(screen, d.Wave, d.ThresholdWave, h.titleFace)

	clock := fmt.Sprintf("%02d:%02d", int(d.TimeAlive)/60, int(d.TimeAlive)%60)
	b := text.BoundString(h.face, clock)
	text.Draw(screen, clock, h.face, config.ScreenWidth-b.Dx()-h.panelPadding, 24, config.HUDTextColor)
	kills := fmt.Sprintf("KILLS %d", d.Kills)
	b = text.BoundString(h.face, kills)
	text.Draw(screen, kills, h.face, config.ScreenWidth-b.Dx()-h.panelPadding, 46, config.HUDTextColor)

	if d.Banner != "" && !d.Paused {
		drawCentered(screen, d.Banner, h.titleFace, config.ScreenWidth/2, config.ScreenHeight/3, config.HUDTextColor)
	}

	if d.Paused {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		drawCentered(screen, "PAUSED", h.titleFace, config.ScreenWidth/2, config.ScreenHeight/2, config.HUDTextColor)
		drawCentered(screen, "SPACE resume   N mute   M menu   ESC quit", h.face, config.ScreenWidth/2, config.ScreenHeight/2+28, config.HUDTextColor)
	}
}
