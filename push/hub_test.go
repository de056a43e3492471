package push

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent("request", "updated", "request-id", nil)
	assert.Equal(t, "request_updated", event.Type)
	assert.Equal(t, "request", event.Entity)
	assert.Equal(t, "updated", event.Action)
	assert.Equal(t, "request-id", event.ID)
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	client := &Client{hub: hub, send: make(chan []byte, 1)}

	hub.Register(client)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())

	_, open := <-client.send
	assert.False(t, open)
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(client)

	hub.Broadcast(NewEvent("request", "updated", "request-id", nil))

	data := <-client.send
	var event Event
	assert.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "request_updated", event.Type)
}

func TestHubBroadcastSkipsFullClient(t *testing.T) {
	hub := NewHub()
	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(client)

	hub.Broadcast(NewEvent("request", "updated", "first", nil))
	hub.Broadcast(NewEvent("request", "updated", "second", nil))

	data := <-client.send
	var event Event
	assert.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "first", event.ID)

	select {
	case extra := <-client.send:
		t.Fatalf("unexpected queued message: %s", extra)
	default:
	}
}
