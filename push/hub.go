package push

import (
	"encoding/json"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

const pushLogPrefix = "push"

// Event is a real-time update delivered to every connected client.
type Event struct {
	Type    string      `json:"type"`
	Entity  string      `json:"entity"`
	Action  string      `json:"action"`
	ID      string      `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// NewEvent builds an Event whose Type is derived from entity and action.
func NewEvent(entity, action, id string, payload interface{}) Event {
	return Event{
		Type:    fmt.Sprintf("%s_%s", entity, action),
		Entity:  entity,
		Action:  action,
		ID:      id,
		Payload: payload,
	}
}

// Hub tracks the set of connected WebSocket clients and fans events out
// to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast marshals the event once and queues it on every client.
// Clients with a full buffer are skipped rather than blocked on.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.WithField("prefix", pushLogPrefix).WithError(err).Error("marshal broadcast event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
