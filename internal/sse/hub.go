package sse

import (
	"encoding/json"
	"sync"
)

const (
	EventPostUpdated       = "post_updated"
	EventSellerUpdated     = "seller_updated"
	EventUserUpdated       = "user_updated"
	EventEnterpriseUpdated = "enterprise_updated"
	EventInboxItem         = "inbox_item"
)

// Event is one entity change. Events with a Recipient are only delivered to
// that user's clients; the rest go to everyone except Exclude.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Recipient string      `json:"-"`
	Exclude   string      `json:"-"`
}

type Client struct {
	ID     string
	UserID string
	Send   chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			data, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for _, client := range h.clients {
				if evt.Recipient != "" && client.UserID != evt.Recipient {
					continue
				}
				if evt.Exclude != "" && client.UserID == evt.Exclude {
					continue
				}
				select {
				case client.Send <- data:
				default:
					// Client buffer full, skip
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Publish queues evt for delivery. It never blocks: when the queue is full
// the event is dropped.
func (h *Hub) Publish(evt Event) bool {
	select {
	case h.broadcast <- evt:
		return true
	default:
		return false
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
