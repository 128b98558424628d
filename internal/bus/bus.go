// Package bus propagates store-changed signals to every open view of the
// shared document, including views in other processes.
//
// Delivery is at-least-once, fire-and-forget and carries no payload; a
// subscriber must re-read the store rather than trust the notification.
package bus

import (
	"log"
	"sync"

	"github.com/nats-io/nats.go"
)

// Handler is invoked on every published change signal.
type Handler func()

// Bus is the change-notification contract between the store and its
// observers.
type Bus interface {
	// Publish signals that the store document has changed.
	Publish()
	// Subscribe registers a handler and returns a function that removes it.
	Subscribe(h Handler) (unsubscribe func())
}

const subjectStoreChanged = "safar.store.changed"

// NATSBus broadcasts change signals over a NATS subject so that independent
// processes observing the same persisted key stay in sync.
type NATSBus struct {
	nc *nats.Conn
}

// NewNATS wraps an established NATS connection.
func NewNATS(nc *nats.Conn) *NATSBus {
	return &NATSBus{nc: nc}
}

func (b *NATSBus) Publish() {
	if err := b.nc.Publish(subjectStoreChanged, nil); err != nil {
		log.Printf("[Bus] Failed to publish change signal: %v", err)
	}
}

func (b *NATSBus) Subscribe(h Handler) func() {
	sub, err := b.nc.Subscribe(subjectStoreChanged, func(*nats.Msg) { h() })
	if err != nil {
		log.Printf("[Bus] Failed to subscribe: %v", err)
		return func() {}
	}
	return func() {
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("[Bus] Failed to unsubscribe: %v", err)
		}
	}
}

// MemoryBus delivers change signals within a single process. Used by tests
// and by deployments without NATS.
type MemoryBus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
}

// NewMemory constructs an empty in-process bus.
func NewMemory() *MemoryBus {
	return &MemoryBus{handlers: make(map[int]Handler)}
}

func (b *MemoryBus) Publish() {
	b.mu.Lock()
	hs := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		hs = append(hs, h)
	}
	b.mu.Unlock()

	for _, h := range hs {
		h()
	}
}

func (b *MemoryBus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}
