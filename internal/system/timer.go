package system

import "go-base-defense/internal/entity"

// TimerSystem продвигает все таймеры сессии. Запускается первым в кадре,
// чтобы остальные системы видели согласованные флаги срабатывания.
type TimerSystem struct {
	ecs *entity.ECS
}

func NewTimerSystem(ecs *entity.ECS) *TimerSystem {
	return &TimerSystem{ecs: ecs}
}

func (s *TimerSystem) Update(deltaTime float64) {
	if s.ecs.Wave != nil {
		s.ecs.Wave.Timer.Tick(deltaTime)
	}
	if t := s.ecs.Timers; t != nil {
		t.Ability.Tick(deltaTime)
		t.Blaster.Tick(deltaTime)
		t.Turret.Tick(deltaTime)
	}
}
