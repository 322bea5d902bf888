package system

import (
	"io"
	"log/slog"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/entity"
	"go-base-defense/internal/event"
	"go-base-defense/internal/interfaces"
	"go-base-defense/internal/types"
	"go-base-defense/internal/utils"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type recordingAudio struct {
	clips []string
}

func (a *recordingAudio) Play(clip string) { a.clips = append(a.clips, clip) }

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type scriptedInput struct {
	held        map[interfaces.Key]bool
	justPressed map[interfaces.Key]bool
	mouse       bool
	cursor      component.Vec2
	cursorOK    bool
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{
		held:        make(map[interfaces.Key]bool),
		justPressed: make(map[interfaces.Key]bool),
	}
}

func (in *scriptedInput) IsKeyPressed(k interfaces.Key) bool     { return in.held[k] }
func (in *scriptedInput) IsKeyJustPressed(k interfaces.Key) bool { return in.justPressed[k] }
func (in *scriptedInput) IsMouseButtonPressed(b interfaces.MouseButton) bool {
	return b == interfaces.MouseButtonLeft && in.mouse
}
func (in *scriptedInput) CursorPosition() (component.Vec2, bool) { return in.cursor, in.cursorOK }

// world — минимальная сессия: база, игрок и таймеры.
type world struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	audio      *recordingAudio
	dispatcher *event.Dispatcher
	events     *eventRecorder
}

func newWorld() *world {
	ecs := entity.NewECS()
	ecs.Timers = &component.SessionTimers{
		Ability: component.NewTimer(config.EnemyAbilityCycle, true),
		Blaster: component.NewTimer(config.BlasterCooldown, true),
		Turret:  component.NewTimer(config.TurretCooldown, true),
	}
	SpawnBase(ecs)
	SpawnPlayer(ecs)

	w := &world{
		ecs:        ecs,
		rng:        utils.NewPRNGService(42),
		audio:      &recordingAudio{},
		dispatcher: event.NewDispatcher(),
		events:     &eventRecorder{},
	}
	w.dispatcher.Subscribe(w.events, event.GameOver)
	w.dispatcher.Subscribe(w.events, event.SessionEvents...)
	return w
}

func (w *world) base() (*component.Base, *component.Transform) {
	b, t, ok := w.ecs.Base()
	if !ok {
		panic("no base")
	}
	return b, t
}

func (w *world) player() (*component.Player, *component.Transform) {
	p, t, ok := w.ecs.Player()
	if !ok {
		panic("no player")
	}
	return p, t
}

func (w *world) combat() *CombatSystem {
	return NewCombatSystem(w.ecs, w.rng, w.audio, w.dispatcher, testLogger)
}

func (w *world) enemiesOfKind(kind component.EnemyKind) []types.EntityID {
	var ids []types.EntityID
	for _, id := range entity.SortedIDs(w.ecs.Enemies) {
		if w.ecs.Enemies[id].Variant.Kind() == kind {
			ids = append(ids, id)
		}
	}
	return ids
}
