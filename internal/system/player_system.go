// internal/system/player_system.go
package system

import (
	"math"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/interfaces"
	"go-base-defense/internal/utils"
)

// PlayerSystem — управление кораблём игрока: движение WASD и стрельба по курсору.
type PlayerSystem struct {
	ecs   *entity.ECS
	input interfaces.Input
	audio interfaces.AudioPlayer
}

func NewPlayerSystem(ecs *entity.ECS, input interfaces.Input, audio interfaces.AudioPlayer) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, input: input, audio: audio}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	player, t, ok := s.ecs.Player()
	if !ok {
		return
	}
	s.move(player, t, deltaTime)
	confine(t)
	s.shoot(t)
}

func (s *PlayerSystem) move(player *component.Player, t *component.Transform, deltaTime float64) {
	var dir component.Vec2
	// Поворот берётся от последней нажатой клавиши в порядке W, A, S, D.
	if s.input.IsKeyPressed(interfaces.KeyW) {
		dir.Y -= 1
		t.Rotation = 0
	}
	if s.input.IsKeyPressed(interfaces.KeyA) {
		dir.X -= 1
		t.Rotation = -math.Pi / 2
	}
	if s.input.IsKeyPressed(interfaces.KeyS) {
		dir.Y += 1
		t.Rotation = math.Pi
	}
	if s.input.IsKeyPressed(interfaces.KeyD) {
		dir.X += 1
		t.Rotation = math.Pi / 2
	}
	if dir.Length() == 0 {
		return
	}
	t.Position = t.Position.Add(dir.Normalize().Scale(player.Speed * deltaTime))
}

// confine удерживает игрока в пределах поля каждый кадр, как бы он ни сместился.
func confine(t *component.Transform) {
	half := config.PlayerSize / 2
	t.Position.X = utils.Clamp(t.Position.X, half, config.ScreenWidth-half)
	t.Position.Y = utils.Clamp(t.Position.Y, half, config.ScreenHeight-half)
}

func (s *PlayerSystem) shoot(t *component.Transform) {
	if s.ecs.Timers == nil || !s.ecs.Timers.Blaster.JustFinished() {
		return
	}
	if !s.input.IsMouseButtonPressed(interfaces.MouseButtonLeft) {
		return
	}
	cursor, ok := s.input.CursorPosition()
	if !ok {
		return
	}
	dir := cursor.Sub(t.Position).Normalize()
	if dir.Length() == 0 {
		return
	}
	SpawnBullet(s.ecs, t.Position, dir, config.PlayerBulletDamage)
	t.Rotation = utils.FacingRotation(dir)
	s.audio.Play(defs.SoundShoot)
}
