// internal/interfaces/game_context.go
package interfaces

import "go-base-defense/internal/component"

// Key — клавиши, которые опрашивает симуляция.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyTab
)

// MouseButton — кнопки мыши, которые опрашивает симуляция.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// Input — источник ввода. Реализуется адаптером движка.
type Input interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	IsMouseButtonPressed(button MouseButton) bool
	// CursorPosition возвращает курсор в мировых координатах; ok=false, если курсор вне окна.
	CursorPosition() (pos component.Vec2, ok bool)
}

// AudioPlayer проигрывает короткие звуки без ожидания результата.
type AudioPlayer interface {
	Play(clip string)
}

// NopInput — ввод без нажатий.
type NopInput struct{}

func (NopInput) IsKeyPressed(Key) bool                 { return false }
func (NopInput) IsKeyJustPressed(Key) bool             { return false }
func (NopInput) IsMouseButtonPressed(MouseButton) bool { return false }
func (NopInput) CursorPosition() (component.Vec2, bool) {
	return component.Vec2{}, false
}

// NopAudio — проигрыватель без звука.
type NopAudio struct{}

func (NopAudio) Play(string) {}
