package pubsub_test

import (
	"testing"

	"smartstore/pkg/pubsub"

	"github.com/stretchr/testify/assert"
)

func TestBroker_BroadcastReachesAllSubscribers(t *testing.T) {
	broker := pubsub.NewBroker()

	first, second := 0, 0
	broker.Subscribe("cart.updated", func() { first++ })
	broker.Subscribe("cart.updated", func() { second++ })

	broker.Broadcast("cart.updated")
	broker.Broadcast("cart.updated")

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestBroker_EventsAreIndependent(t *testing.T) {
	broker := pubsub.NewBroker()

	calls := 0
	broker.Subscribe("cart.updated", func() { calls++ })

	broker.Broadcast("order.created")
	assert.Equal(t, 0, calls)
}

func TestBroker_Unsubscribe(t *testing.T) {
	broker := pubsub.NewBroker()

	calls := 0
	unsubscribe := broker.Subscribe("cart.updated", func() { calls++ })

	broker.Broadcast("cart.updated")
	unsubscribe()
	broker.Broadcast("cart.updated")
	// Unsubscribing twice is harmless.
	unsubscribe()

	assert.Equal(t, 1, calls)
}

func TestBroker_BroadcastWithNoSubscribers(t *testing.T) {
	broker := pubsub.NewBroker()
	assert.NotPanics(t, func() {
		broker.Broadcast("cart.updated")
	})
}
