package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct{ got []Event }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchAndDrain(t *testing.T) {
	now := 1500.0
	d := NewDispatcher(func() float64 { return now })

	fired := &recorder{}
	every := &recorder{}
	d.Subscribe(TowerFired, fired)
	d.SubscribeAll(every)

	d.Emit(TowerFired, FireData{TowerID: 1})
	d.Emit(LifeLost, LivesData{Lives: 3})

	assert.Len(t, fired.got, 1)
	assert.Len(t, every.got, 2)
	assert.Equal(t, 1500.0, fired.got[0].Time)

	drained := d.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, TowerFired, drained[0].Type)
	assert.Equal(t, LifeLost, drained[1].Type)
	assert.Empty(t, d.Drain())
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher(nil)
	r := &recorder{}
	d.Subscribe(GameOver, r)
	d.Unsubscribe(GameOver, r)
	d.Emit(GameOver, nil)
	assert.Empty(t, r.got)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher(nil)
	calls := 0
	d.Subscribe(WaveEnded, ListenerFunc(func(Event) { calls++ }))
	d.Emit(WaveEnded, WaveData{Number: 1})
	assert.Equal(t, 1, calls)
}
