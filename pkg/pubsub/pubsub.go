package pubsub

import "sync"

// Broker is a process-local publish/subscribe channel used to keep
// independently rendered views in sync. Broadcast is synchronous: every
// handler registered for the event runs before Broadcast returns. It is not
// a network protocol and performs no I/O.
type Broker struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]func()
}

// NewBroker creates a new Broker with no subscriptions.
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[int]func()),
	}
}

// Subscribe registers handler for the named event and returns a function
// that removes the subscription. Unsubscribing twice is harmless.
func (b *Broker) Subscribe(event string, handler func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[event] == nil {
		b.subs[event] = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.subs[event][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[event], id)
	}
}

// Broadcast invokes every handler subscribed to the named event.
func (b *Broker) Broadcast(event string) {
	b.mu.RLock()
	handlers := make([]func(), 0, len(b.subs[event]))
	for _, h := range b.subs[event] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h()
	}
}
