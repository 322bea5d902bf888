// internal/system/deacon.go
package system

import (
	"math"

	bt "github.com/joeycumines/go-behaviortree"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/defs"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/event"
	"go-base-defense/internal/interfaces"
	"go-base-defense/internal/types"
	"go-base-defense/internal/utils"
)

// deaconTick — контекст одного тика дерева для одного спутника.
type deaconTick struct {
	id        types.EntityID
	deacon    *component.Deacon
	transform *component.Transform
	target    types.EntityID
	deltaTime float64
}

// DeaconSystem управляет спутниками Bishop деревом поведения:
// созревание, поиск союзника, сближение, лечение при контакте; иначе ожидание.
type DeaconSystem struct {
	ecs             *entity.ECS
	audio           interfaces.AudioPlayer
	eventDispatcher *event.Dispatcher

	root    bt.Node
	current *deaconTick
}

func NewDeaconSystem(ecs *entity.ECS, audio interfaces.AudioPlayer, eventDispatcher *event.Dispatcher) *DeaconSystem {
	s := &DeaconSystem{
		ecs:             ecs,
		audio:           audio,
		eventDispatcher: eventDispatcher,
	}
	s.root = bt.New(
		bt.Selector,
		bt.New(
			bt.Sequence,
			bt.New(s.matured),
			bt.New(s.acquire),
			bt.New(s.approach),
			bt.New(s.heal),
		),
		bt.New(s.hold),
	)
	return s
}

func (s *DeaconSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Deacons) {
		deacon, ok := s.ecs.Deacons[id]
		if !ok {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		s.current = &deaconTick{id: id, deacon: deacon, transform: t, deltaTime: deltaTime}
		// Листья не возвращают ошибок.
		_, _ = s.root.Tick()
		if s.ecs.Alive(id) {
			t.Rotation += config.DeaconSpinRate
		}
	}
	s.current = nil
}

// matured: первую секунду спутник не двигается и никого не ищет.
func (s *DeaconSystem) matured([]bt.Node) (bt.Status, error) {
	if s.ecs.GameTime-s.current.deacon.SpawnTime < config.DeaconIdleTime {
		return bt.Failure, nil
	}
	return bt.Success, nil
}

// acquire выбирает ближайшего врага, кроме Bishop, в радиусе поиска.
func (s *DeaconSystem) acquire([]bt.Node) (bt.Status, error) {
	pos := s.current.transform.Position
	best := types.NoEntity
	bestDist := math.Inf(1)
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if enemy.Variant.Kind() == component.KindBishop {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		if d := t.Position.Distance(pos); d <= config.DeaconSeekRadius && d < bestDist {
			best, bestDist = id, d
		}
	}
	if best == types.NoEntity {
		return bt.Failure, nil
	}
	s.current.target = best
	return bt.Success, nil
}

func (s *DeaconSystem) approach([]bt.Node) (bt.Status, error) {
	c := s.current
	target := s.ecs.Transforms[c.target]
	c.deacon.Speed = defs.DeaconDefinition.SeekSpeed
	c.deacon.Direction = target.Position.Sub(c.transform.Position).Normalize()
	move(c.transform, c.deacon.Direction, c.deacon.Speed, c.deltaTime)
	return bt.Success, nil
}

// heal: при контакте спутник растворяется, а враг лечится и ускоряется навсегда.
func (s *DeaconSystem) heal([]bt.Node) (bt.Status, error) {
	c := s.current
	enemy := s.ecs.Enemies[c.target]
	target := s.ecs.Transforms[c.target]
	if !utils.AABBOverlap(target.Position, enemy.Size, c.transform.Position, c.deacon.Size) {
		return bt.Running, nil
	}
	enemy.Health += defs.DeaconDefinition.HealAmount
	enemy.Speed += defs.DeaconDefinition.SpeedBoost
	s.ecs.DestroyEntity(c.id)
	s.audio.Play(defs.SoundDeaconHeal)
	s.eventDispatcher.Dispatch(event.Event{Type: event.DeaconConsumed, Data: c.target})
	return bt.Success, nil
}

func (s *DeaconSystem) hold([]bt.Node) (bt.Status, error) {
	s.current.deacon.Speed = 0
	return bt.Success, nil
}
