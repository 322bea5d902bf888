package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	seen []Event
}

func (l *countingListener) OnEvent(e Event) { l.seen = append(l.seen, e) }

func TestDispatcher_SubscribeAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	first := &countingListener{}
	second := &countingListener{}
	d.Subscribe(first, WaveStarted, GameOver)
	d.Subscribe(second, WaveStarted)
	d.Subscribe(first, WaveStarted)

	d.Dispatch(Event{Type: WaveStarted, Data: 2})
	assert.Len(t, first.seen, 1, "duplicate subscription is ignored")
	assert.Len(t, second.seen, 1)
	assert.Equal(t, 2, first.seen[0].Data)

	d.Unsubscribe(first)
	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: GameOver, Data: GameOverData{BaseLevel: 3}})
	assert.Len(t, first.seen, 1, "unsubscribed from every type")
	assert.Len(t, second.seen, 2)

	d.Dispatch(Event{Type: PartCollected})
}

// selfRemoving отписывается при первом событии.
type selfRemoving struct {
	d    *Dispatcher
	seen int
}

func (l *selfRemoving) OnEvent(Event) {
	l.seen++
	l.d.Unsubscribe(l)
}

func TestDispatcher_UnsubscribeInsideHandler(t *testing.T) {
	d := NewDispatcher()
	remover := &selfRemoving{d: d}
	after := &countingListener{}
	d.Subscribe(remover, EnemyKilled)
	d.Subscribe(after, EnemyKilled)

	d.Dispatch(Event{Type: EnemyKilled})
	assert.Equal(t, 1, remover.seen)
	assert.Len(t, after.seen, 1, "later listeners still receive the current event")

	d.Dispatch(Event{Type: EnemyKilled})
	assert.Equal(t, 1, remover.seen)
	assert.Len(t, after.seen, 2)
}
