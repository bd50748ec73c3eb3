package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAction("dash")
	assert.Error(t, err)
}

func TestBus_PublishInOrder(t *testing.T) {
	bus := NewBus()
	var got []Event
	bus.Subscribe(func(ev Event) { got = append(got, ev) })

	bus.Publish(Press(ActionLeft), Release(ActionLeft))

	assert.Equal(t, []Event{
		{Action: ActionLeft, Pressed: true},
		{Action: ActionLeft, Pressed: false},
	}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(Event) { calls++ })

	bus.Publish(Press(ActionJump))
	unsubscribe()
	unsubscribe()
	bus.Publish(Press(ActionJump))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestBus_SubscribeDuringDelivery(t *testing.T) {
	bus := NewBus()
	var late []Event
	bus.Subscribe(func(ev Event) {
		if ev.Action == ActionStart {
			bus.Subscribe(func(ev Event) { late = append(late, ev) })
		}
	})

	bus.Publish(Press(ActionStart))
	assert.Empty(t, late, "a handler added mid-delivery must not see the current event")

	bus.Publish(Press(ActionAttack))
	assert.Equal(t, []Event{Press(ActionAttack)}, late)
}

func TestBus_UnsubscribeDuringDelivery(t *testing.T) {
	bus := NewBus()
	secondCalls := 0
	var unsubscribeSecond func()
	bus.Subscribe(func(Event) { unsubscribeSecond() })
	unsubscribeSecond = bus.Subscribe(func(Event) { secondCalls++ })

	bus.Publish(Press(ActionStart))

	assert.Equal(t, 0, secondCalls)
}

func TestBus_BatchSnapshot(t *testing.T) {
	bus := NewBus()
	var late []Event
	bus.Subscribe(func(ev Event) {
		if ev.Action == ActionStart {
			bus.Subscribe(func(ev Event) { late = append(late, ev) })
		}
	})

	bus.Publish(Press(ActionStart), Press(ActionAttack))

	assert.Empty(t, late, "events of the batch that added a handler are not replayed to it")
}
