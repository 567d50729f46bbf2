package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_NotifyInRegistrationOrder(t *testing.T) {
	r := NewRegistry()

	var order []int
	r.Subscribe(func() { order = append(order, 1) })
	r.Subscribe(func() { order = append(order, 2) })
	r.Subscribe(func() { order = append(order, 3) })

	r.notify()
	r.notify()

	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, order)
}

func TestRegistry_Cancel(t *testing.T) {
	r := NewRegistry()

	var calls int
	sub := r.Subscribe(func() { calls++ })
	assert.Equal(t, 1, r.Len())

	r.notify()
	sub.Cancel()
	r.notify()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_CancelIsIdempotent(t *testing.T) {
	r := NewRegistry()

	sub1 := r.Subscribe(func() {})
	sub2 := r.Subscribe(func() {})

	sub1.Cancel()
	sub1.Cancel()
	sub1.Cancel()

	assert.Equal(t, 1, r.Len())

	sub2.Cancel()
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_CancelMiddlePreservesOrder(t *testing.T) {
	r := NewRegistry()

	var order []int
	r.Subscribe(func() { order = append(order, 1) })
	mid := r.Subscribe(func() { order = append(order, 2) })
	r.Subscribe(func() { order = append(order, 3) })

	mid.Cancel()
	r.notify()

	assert.Equal(t, []int{1, 3}, order)
}

func TestRegistry_CallbackMayCancelItself(t *testing.T) {
	r := NewRegistry()

	var sub *Subscription
	var calls int
	sub = r.Subscribe(func() {
		calls++
		sub.Cancel()
	})

	r.notify()
	r.notify()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_CallbackMaySubscribe(t *testing.T) {
	r := NewRegistry()

	var lateCalls int
	r.Subscribe(func() {
		if r.Len() == 1 {
			r.Subscribe(func() { lateCalls++ })
		}
	})

	r.notify()
	// The late subscriber was not part of the first snapshot.
	assert.Equal(t, 0, lateCalls)

	r.notify()
	assert.Equal(t, 1, lateCalls)
}
