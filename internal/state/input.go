// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/interfaces"
)

// EbitenInput реализует interfaces.Input поверх опроса ebiten.
type EbitenInput struct{}

var keyMap = map[interfaces.Key]ebiten.Key{
	interfaces.KeyW:     ebiten.KeyW,
	interfaces.KeyA:     ebiten.KeyA,
	interfaces.KeyS:     ebiten.KeyS,
	interfaces.KeyD:     ebiten.KeyD,
	interfaces.KeySpace: ebiten.KeySpace,
	interfaces.KeyTab:   ebiten.KeyTab,
}

var mouseMap = map[interfaces.MouseButton]ebiten.MouseButton{
	interfaces.MouseButtonLeft:  ebiten.MouseButtonLeft,
	interfaces.MouseButtonRight: ebiten.MouseButtonRight,
}

func (EbitenInput) IsKeyPressed(key interfaces.Key) bool {
	k, ok := keyMap[key]
	return ok && ebiten.IsKeyPressed(k)
}

func (EbitenInput) IsKeyJustPressed(key interfaces.Key) bool {
	k, ok := keyMap[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

func (EbitenInput) IsMouseButtonPressed(button interfaces.MouseButton) bool {
	b, ok := mouseMap[button]
	return ok && ebiten.IsMouseButtonPressed(b)
}

// CursorPosition возвращает курсор в координатах поля; вне окна ok=false.
func (EbitenInput) CursorPosition() (component.Vec2, bool) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= config.ScreenWidth || y >= config.ScreenHeight {
		return component.Vec2{}, false
	}
	return component.Vec2{X: float64(x), Y: float64(y)}, true
}
