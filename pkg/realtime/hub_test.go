package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SurajNaik1502/TPC/pkg/logger"
)

func newTestHub() *Hub {
	return NewHub(logger.NewLogger())
}

func TestHub_SubscribeReceivesBroadcast(t *testing.T) {
	hub := newTestHub()

	sub := hub.Subscribe("R1")
	defer sub.Close()

	hub.Broadcast("R1", Event{Room: "R1", Type: EventNewMessage, Payload: "hello"})

	event := <-sub.C
	assert.Equal(t, "R1", event.Room)
	assert.Equal(t, EventNewMessage, event.Type)
	assert.Equal(t, "hello", event.Payload)
}

func TestHub_BroadcastIsScopedToRoom(t *testing.T) {
	hub := newTestHub()

	subA := hub.Subscribe("room-a")
	defer subA.Close()
	subB := hub.Subscribe("room-b")
	defer subB.Close()

	hub.Broadcast("room-a", Event{Room: "room-a", Type: EventNewMessage, Payload: "only a"})

	event := <-subA.C
	assert.Equal(t, "only a", event.Payload)

	select {
	case e := <-subB.C:
		t.Fatalf("subscriber of another room received event: %+v", e)
	default:
	}
}

func TestHub_CloseReleasesSubscription(t *testing.T) {
	hub := newTestHub()

	sub := hub.Subscribe("R1")
	assert.Equal(t, 1, hub.SubscriberCount("R1"))

	sub.Close()
	assert.Equal(t, 0, hub.SubscriberCount("R1"))

	// closed channel: further broadcasts must not panic
	hub.Broadcast("R1", Event{Room: "R1", Type: EventNewMessage})

	_, open := <-sub.C
	assert.False(t, open)
}

func TestHub_CloseIsIdempotent(t *testing.T) {
	hub := newTestHub()

	sub := hub.Subscribe("R1")
	sub.Close()
	sub.Close()

	assert.Equal(t, 0, hub.SubscriberCount("R1"))
}

func TestHub_EveryLiveSubscriberGetsTheEvent(t *testing.T) {
	hub := newTestHub()

	first := hub.Subscribe("R1")
	defer first.Close()
	second := hub.Subscribe("R1")
	defer second.Close()

	hub.Broadcast("R1", Event{Room: "R1", Type: EventNewMessage, Payload: 42})

	assert.Equal(t, 42, (<-first.C).Payload)
	assert.Equal(t, 42, (<-second.C).Payload)
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := newTestHub()

	sub := hub.Subscribe("R1")
	defer sub.Close()

	// overflow the buffer; the extra events are dropped, not delivered
	for i := 0; i < subscriberBuffer+10; i++ {
		hub.Broadcast("R1", Event{Room: "R1", Type: EventNewMessage, Payload: i})
	}

	received := 0
	for {
		select {
		case <-sub.C:
			received++
		default:
			assert.Equal(t, subscriberBuffer, received)
			return
		}
	}
}
