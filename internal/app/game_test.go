package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-base-defense/internal/component"
	"go-base-defense/internal/config"
	"go-base-defense/internal/event"
	"go-base-defense/internal/interfaces"
	"go-base-defense/internal/system"
)

const frame = 0.25

// tapInput отдаёт нажатия, поставленные в очередь, ровно на один кадр.
type tapInput struct {
	interfaces.NopInput
	taps map[interfaces.Key]bool
}

func (in *tapInput) tap(key interfaces.Key) { in.taps[key] = true }

func (in *tapInput) IsKeyJustPressed(key interfaces.Key) bool {
	if in.taps[key] {
		delete(in.taps, key)
		return true
	}
	return false
}

type gameOverCounter struct{ n int }

func (c *gameOverCounter) OnEvent(event.Event) { c.n++ }

func newTestGame(t *testing.T, startPaused bool) (*Game, *tapInput) {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Seed = 42
	settings.StartPaused = startPaused
	input := &tapInput{taps: map[interfaces.Key]bool{}}
	g := NewGame(settings, input, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.StartSession()
	return g, input
}

func TestGame_PropagatorDestroysBase(t *testing.T) {
	g, _ := newTestGame(t, false)
	counter := &gameOverCounter{}
	g.EventDispatcher.Subscribe(event.GameOver, counter)

	for i := 0; i < 40; i++ {
		g.Update(frame)
	}
	require.Equal(t, 10.0, g.GetGameTime())
	assert.Empty(t, g.ECS.Enemies, "no wave before 15s")

	_, baseT, ok := g.ECS.Base()
	require.True(t, ok)
	system.SpawnEnemy(g.ECS, system.NewVariant(component.KindPropagator, g.ECS.GameTime), baseT.Position)

	g.Update(frame)

	base, _, _ := g.ECS.Base()
	assert.Equal(t, int64(0), base.Health)
	assert.True(t, g.IsOver())
	assert.Equal(t, 1, counter.n)

	result, ok := g.LastResult()
	require.True(t, ok)
	assert.Equal(t, event.GameOverData{TimeAlive: 10, BaseLevel: 1}, result)
	require.Equal(t, 1, g.Scores.Len())
	assert.Equal(t, g.RunID(), g.Scores.Records()[0].RunID)

	for i := 0; i < 10; i++ {
		g.Update(frame)
	}
	assert.Equal(t, 10.25, g.GetGameTime(), "simulation stops after game over")
	assert.Equal(t, 1, counter.n)
}

func TestGame_StartsPausedAndSpaceToggles(t *testing.T) {
	g, input := newTestGame(t, true)
	assert.True(t, g.IsPaused())
	assert.NotEmpty(t, g.RunID())

	g.Update(frame)
	assert.Zero(t, g.GetGameTime())

	input.tap(interfaces.KeySpace)
	g.Update(frame)
	assert.False(t, g.IsPaused())
	assert.Equal(t, frame, g.GetGameTime())

	input.tap(interfaces.KeySpace)
	g.Update(frame)
	assert.True(t, g.IsPaused())
	assert.Equal(t, frame, g.GetGameTime())
}

func TestGame_CheatLevelUpAppliesEffects(t *testing.T) {
	g, input := newTestGame(t, false)

	input.tap(interfaces.KeyTab)
	g.Update(frame)

	base, _, _ := g.ECS.Base()
	player, _, ok := g.ECS.Player()
	require.True(t, ok)
	assert.Equal(t, int64(2), base.Level)
	assert.False(t, base.LeveledUp)
	assert.Equal(t, int64(1000), base.Health)
	assert.Equal(t, 300.0, player.Speed)
	assert.Equal(t, int64(150), player.MaxHealth)
	assert.Equal(t, 0.4, g.ECS.Timers.Blaster.Duration)
	assert.Len(t, g.ECS.BaseBuildings, 1)
}

func TestGame_EndSessionClearsWorld(t *testing.T) {
	g, _ := newTestGame(t, false)
	for i := 0; i < 64; i++ {
		g.Update(frame)
	}
	require.NotEmpty(t, g.ECS.Enemies, "first wave spawned at 15s")

	g.EndSession()
	assert.False(t, g.IsActive())
	assert.Empty(t, g.ECS.Enemies)
	assert.Empty(t, g.ECS.Transforms)
	assert.Zero(t, g.ECS.Count())

	g.Update(frame)
	assert.Zero(t, g.GetGameTime())

	g.StartSession()
	assert.True(t, g.IsActive())
	_, _, ok := g.ECS.Base()
	assert.True(t, ok)
}

func TestGame_TimeAliveIncludesPausedTime(t *testing.T) {
	g, input := newTestGame(t, true)
	for i := 0; i < 40; i++ {
		g.Update(frame)
	}
	input.tap(interfaces.KeySpace)
	g.Update(frame)
	g.Update(frame)
	require.False(t, g.IsPaused())
	assert.Equal(t, 0.5, g.GetGameTime())
	assert.Equal(t, 10.5, g.TimeAlive())

	_, baseT, _ := g.ECS.Base()
	system.SpawnEnemy(g.ECS, component.Propagator{}, baseT.Position)
	g.Update(frame)

	result, ok := g.LastResult()
	require.True(t, ok)
	assert.EqualValues(t, 10, result.TimeAlive)
	assert.Equal(t, 10.0, g.TimeAlive(), "frozen at the recorded result")
}

func TestGame_CheatIgnoredWhilePaused(t *testing.T) {
	g, input := newTestGame(t, true)

	input.tap(interfaces.KeyTab)
	g.Update(frame)
	base, _, _ := g.ECS.Base()
	assert.Equal(t, int64(1), base.Level)
	assert.False(t, base.LeveledUp)
}

func TestGame_SessionStatsFollowEvents(t *testing.T) {
	g, input := newTestGame(t, false)
	_, baseT, _ := g.ECS.Base()

	pawn := system.SpawnEnemy(g.ECS, component.Pawn{}, component.Vec2{X: 100, Y: 100})
	g.ECS.Enemies[pawn].Health = 10
	// За кадр снаряд второго уровня пролетает 87.5 и встречает пешку.
	system.SpawnBullet(g.ECS, component.Vec2{X: 12.5, Y: 100}, component.Vec2{X: 1}, 50)
	input.tap(interfaces.KeyTab)
	g.Update(frame)

	stats := g.Stats()
	assert.Equal(t, 1, stats.Kills)
	assert.Equal(t, int64(2), stats.Level)
	banner, ok := g.Banner()
	assert.True(t, ok)
	assert.Equal(t, "BASE LEVEL 2", banner)

	for i := 0; i < 8; i++ {
		g.Update(frame)
	}
	_, ok = g.Banner()
	assert.False(t, ok, "banner expires after two seconds")

	system.SpawnEnemy(g.ECS, component.Propagator{}, baseT.Position)
	system.SpawnEnemy(g.ECS, component.Propagator{}, baseT.Position)
	system.SpawnEnemy(g.ECS, component.Propagator{}, baseT.Position)
	g.Update(frame)
	require.True(t, g.IsOver())
	require.Equal(t, 1, g.Scores.Len())
	assert.Equal(t, 1, g.Scores.Records()[0].Kills)

	g.EndSession()
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled})
	assert.Equal(t, 1, g.Stats().Kills, "stats stop listening when the session ends")

	g.StartSession()
	assert.Zero(t, g.Stats().Kills)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled})
	assert.Equal(t, 1, g.Stats().Kills)
}
