package events

import (
	"sync"
	"time"
)

const (
	EventInsert = "insert"
	EventUpdate = "update"
	EventDelete = "delete"
)

// DonationEvent mirrors a row change on the donations table. Dashboards use
// the stream to refresh map markers; nothing depends on it for correctness.
type DonationEvent struct {
	Type       string    `json:"type"`
	DonationID string    `json:"donation_id"`
	Status     string    `json:"status,omitempty"`
	At         time.Time `json:"at"`
}

type Broker struct {
	mu   sync.RWMutex
	subs map[chan DonationEvent]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[chan DonationEvent]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away.
func (b *Broker) Subscribe() (<-chan DonationEvent, func()) {
	ch := make(chan DonationEvent, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish fans an event out to all subscribers. A subscriber whose buffer is
// full misses the event rather than blocking the publisher.
func (b *Broker) Publish(ev DonationEvent) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
