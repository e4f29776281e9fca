package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinged struct{ N int }
type ponged struct{}

func TestBusDeliversByType(t *testing.T) {
	bus := NewBus()
	var got []int
	bus.Subscribe(TypeOf(pinged{}), func(e interface{}) {
		got = append(got, e.(pinged).N)
	})

	bus.Publish(pinged{N: 1})
	bus.Publish(ponged{})
	bus.Publish(pinged{N: 2})

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, "events.pinged", TypeOf(pinged{}))
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	var first, second int
	unsubscribe := bus.Subscribe(TypeOf(ponged{}), func(interface{}) { first++ })
	bus.Subscribe(TypeOf(ponged{}), func(interface{}) { second++ })

	bus.Publish(ponged{})
	unsubscribe()
	unsubscribe()
	bus.Publish(ponged{})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestNullBus(t *testing.T) {
	var bus EventBus = &NullBus{}
	assert.NotPanics(t, func() {
		bus.Subscribe("x", func(interface{}) {})()
		bus.Publish(ponged{})
	})
}
