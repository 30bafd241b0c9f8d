package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()
	broker := NewBroker()

	first, cancelFirst := broker.Subscribe()
	defer cancelFirst()
	second, cancelSecond := broker.Subscribe()
	defer cancelSecond()

	broker.Publish(DonationEvent{Type: EventInsert, DonationID: "d-1", Status: "pending"})

	for _, ch := range []<-chan DonationEvent{first, second} {
		select {
		case ev := <-ch:
			assert.Equal(t, EventInsert, ev.Type)
			assert.Equal(t, "d-1", ev.DonationID)
			assert.False(t, ev.At.IsZero())
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestBroker_CancelStopsDelivery(t *testing.T) {
	t.Parallel()
	broker := NewBroker()

	ch, cancel := broker.Subscribe()
	cancel()

	_, open := <-ch
	require.False(t, open, "channel should be closed after cancel")

	// publishing after cancel must not panic
	broker.Publish(DonationEvent{Type: EventDelete, DonationID: "d-2"})

	// cancel is safe to call twice
	cancel()
}

func TestBroker_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	t.Parallel()
	broker := NewBroker()

	_, cancel := broker.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// more events than the subscriber buffer holds
		for i := 0; i < 100; i++ {
			broker.Publish(DonationEvent{Type: EventUpdate, DonationID: "d-3"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
