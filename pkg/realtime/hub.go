package realtime

import (
	"sync"

	"github.com/SurajNaik1502/TPC/pkg/logger"
)

// Event is a notification fanned out to the live subscribers of a room.
// The hub gives no durability and no cross-writer ordering guarantee:
// a disconnected client must re-fetch history on reconnect.
type Event struct {
	Room    string      `json:"room"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	EventNewMessage = "new_message"
)

// subscriber channel buffer. A subscriber that falls this far behind has
// its events dropped rather than blocking the writers.
const subscriberBuffer = 32

// Subscription is a live registration on a room. It must be closed when
// the consumer goes away; a leaked subscription keeps receiving events
// into a stale state.
type Subscription struct {
	C    <-chan Event
	hub  *Hub
	room string
	id   uint64
	once sync.Once
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s.room, s.id)
	})
}

// Hub is the in-process fan-out channel. Every published event is
// delivered at most once per live subscriber of the event's room.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[uint64]chan Event
	nextID uint64
	log    logger.Logger
}

// NewHub creates an empty hub
func NewHub(log logger.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[uint64]chan Event),
		log:   log,
	}
}

// Subscribe registers a new subscriber for a room and returns its handle
func (h *Hub) Subscribe(room string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	ch := make(chan Event, subscriberBuffer)
	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(map[uint64]chan Event)
	}
	h.rooms[room][id] = ch

	return &Subscription{C: ch, hub: h, room: room, id: id}
}

func (h *Hub) unsubscribe(room string, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.rooms[room]
	if !ok {
		return
	}
	if ch, ok := subs[id]; ok {
		delete(subs, id)
		close(ch)
	}
	if len(subs) == 0 {
		delete(h.rooms, room)
	}
}

// Broadcast delivers an event to every current subscriber of a room.
// Slow subscribers have the event dropped instead of blocking the caller.
func (h *Hub) Broadcast(room string, e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.rooms[room] {
		select {
		case ch <- e:
		default:
			h.log.Warn("realtime subscriber too slow, dropping event", "room", room, "subscriber", id)
		}
	}
}

// SubscriberCount returns the number of live subscribers of a room
func (h *Hub) SubscriberCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
