package sse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(id, userID string, buffer int) *Client {
	return &Client{
		ID:     id,
		UserID: userID,
		Send:   make(chan []byte, buffer),
	}
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	assert.NotNil(t, hub)
	assert.NotNil(t, hub.clients)
	assert.NotNil(t, hub.register)
	assert.NotNil(t, hub.unregister)
	assert.NotNil(t, hub.broadcast)
}

func TestHub_RegisterClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newClient("client-1", "u1", 256)

	hub.Register(client)

	// Wait for registration to process
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, 1, hub.ClientCount())
}

func TestHub_UnregisterClient_ClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newClient("client-1", "u1", 256)

	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, 0, hub.ClientCount())
	_, ok := <-client.Send
	assert.False(t, ok)
}

func TestHub_UnregisterNonexistentClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newClient("ghost", "u1", 1)

	assert.NotPanics(t, func() {
		hub.Unregister(client)
		time.Sleep(10 * time.Millisecond)
	})
}

func TestHub_PublishToEveryone(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := newClient("client-a", "u1", 256)
	b := newClient("client-b", "u2", 256)
	hub.Register(a)
	hub.Register(b)
	time.Sleep(10 * time.Millisecond)

	require.True(t, hub.Publish(Event{Type: EventPostUpdated, Data: map[string]int{"likes": 6}}))

	for _, client := range []*Client{a, b} {
		select {
		case msg := <-client.Send:
			var event struct {
				Type string         `json:"type"`
				Data map[string]int `json:"data"`
			}
			require.NoError(t, json.Unmarshal(msg, &event))
			assert.Equal(t, EventPostUpdated, event.Type)
			assert.Equal(t, 6, event.Data["likes"])
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client %s did not receive message", client.ID)
		}
	}
}

func TestHub_PublishToRecipientOnly(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	recipient := newClient("client-a", "u1", 256)
	other := newClient("client-b", "u2", 256)
	hub.Register(recipient)
	hub.Register(other)
	time.Sleep(10 * time.Millisecond)

	hub.Publish(Event{Type: EventInboxItem, Data: "hello", Recipient: "u1"})

	select {
	case msg := <-recipient.Send:
		assert.Contains(t, string(msg), EventInboxItem)
		assert.NotContains(t, string(msg), "Recipient")
	case <-time.After(100 * time.Millisecond):
		t.Fatal("recipient did not receive message")
	}

	select {
	case <-other.Send:
		t.Fatal("should not have received message")
	case <-time.After(50 * time.Millisecond):
		// Expected - no message received
	}
}

func TestHub_PublishSkipsExcludedUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	subject := newClient("client-a", "u1", 256)
	other := newClient("client-b", "u2", 256)
	hub.Register(subject)
	hub.Register(other)
	time.Sleep(10 * time.Millisecond)

	hub.Publish(Event{Type: EventUserUpdated, Data: "redacted", Exclude: "u1"})

	select {
	case msg := <-other.Send:
		assert.Contains(t, string(msg), "redacted")
		assert.NotContains(t, string(msg), "Exclude")
	case <-time.After(100 * time.Millisecond):
		t.Fatal("other client did not receive message")
	}

	select {
	case <-subject.Send:
		t.Fatal("excluded user should not have received message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_FullBufferDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newClient("client-1", "u1", 1)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	// Fill the buffer
	client.Send <- []byte("fill")

	hub.Publish(Event{Type: EventSellerUpdated})
	time.Sleep(10 * time.Millisecond)

	<-client.Send

	select {
	case <-client.Send:
		t.Fatal("should not receive dropped message")
	case <-time.After(50 * time.Millisecond):
		// Expected
	}
}

func TestHub_PublishWithoutRunDoesNotBlock(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			hub.Publish(Event{Type: EventUserUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
	assert.False(t, hub.Publish(Event{Type: EventUserUpdated}))
}
