// file: internal/realtime/events.go
// version: 2.0.0
// guid: 9e8d7f6a-5c4b-3a21-0f9e-8d7c6b5a4392

package realtime

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
)

// EventType defines the type of real-time event
type EventType string

const (
	EventConnected       EventType = "connection.established"
	EventContentReloaded EventType = "content.reloaded"
	EventContentRejected EventType = "content.rejected"
	EventHeartbeat       EventType = "heartbeat"
)

// Event represents a real-time event to send to clients
type Event struct {
	Type      EventType      `json:"type"`
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

func newEvent(t EventType, data map[string]any) *Event {
	return &Event{Type: t, ID: ulid.Make().String(), Timestamp: time.Now(), Data: data}
}

// Client represents a connected SSE client
type Client struct {
	ID      string
	Channel chan *Event
	types   map[EventType]bool // empty means every type
}

// NewClient creates a client that receives only the given event types, or
// every type when none are given.
func NewClient(id string, types ...EventType) *Client {
	c := &Client{
		ID:      id,
		Channel: make(chan *Event, 16),
		types:   make(map[EventType]bool, len(types)),
	}
	for _, t := range types {
		c.types[t] = true
	}
	return c
}

// Wants reports whether the client subscribed to t.
func (c *Client) Wants(t EventType) bool {
	return len(c.types) == 0 || c.types[t]
}

// EventHub manages SSE connections and event distribution
type EventHub struct {
	mu        sync.RWMutex
	clients   map[string]*Client
	heartbeat time.Duration
}

// NewEventHub creates a new event hub
func NewEventHub() *EventHub {
	return &EventHub{
		clients:   make(map[string]*Client),
		heartbeat: 15 * time.Second,
	}
}

// RegisterClient registers a new client
func (h *EventHub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	log.Printf("[DEBUG] SSE client %s registered, total clients: %d", client.ID, len(h.clients))
}

// UnregisterClient removes a client and closes its channel
func (h *EventHub) UnregisterClient(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client, exists := h.clients[clientID]; exists {
		close(client.Channel)
		delete(h.clients, clientID)
		log.Printf("[DEBUG] SSE client %s unregistered, remaining clients: %d", clientID, len(h.clients))
	}
}

// Broadcast sends event to every client subscribed to its type. A client
// whose buffer is full misses the event rather than blocking the sender.
func (h *EventHub) Broadcast(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, client := range h.clients {
		if !client.Wants(event.Type) {
			continue
		}
		select {
		case client.Channel <- event:
			count++
		default:
			log.Printf("[WARN] SSE client %s channel full, dropping %s", client.ID, event.Type)
		}
	}

	if count > 0 {
		log.Printf("[DEBUG] Broadcasted %s to %d clients", event.Type, count)
	}
}

// SendContentReloaded announces a newly published catalog.
func (h *EventHub) SendContentReloaded(counts map[string]int) {
	h.Broadcast(newEvent(EventContentReloaded, map[string]any{"counts": counts}))
}

// SendContentRejected announces a reload that failed validation. The
// previous catalog stays published.
func (h *EventHub) SendContentRejected(err error) {
	h.Broadcast(newEvent(EventContentRejected, map[string]any{"error": err.Error()}))
}

// ClientCount returns the number of connected clients
func (h *EventHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func parseTypes(raw string) []EventType {
	var types []EventType
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			types = append(types, EventType(part))
		}
	}
	return types
}

func writeEvent(c *gin.Context, event *Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event.Type, data); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

// HandleSSE streams events to one client until the request is cancelled.
// ?types=content.reloaded,content.rejected narrows the subscription.
func (h *EventHub) HandleSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache, no-transform")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	client := NewClient(ulid.Make().String(), parseTypes(c.Query("types"))...)
	h.RegisterClient(client)
	defer h.UnregisterClient(client.ID)

	if err := writeEvent(c, newEvent(EventConnected, map[string]any{"client_id": client.ID})); err != nil {
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case event, ok := <-client.Channel:
			if !ok {
				return
			}
			if err := writeEvent(c, event); err != nil {
				log.Printf("[WARN] Error writing to SSE client %s: %v", client.ID, err)
				return
			}
		case <-ticker.C:
			if err := writeEvent(c, &Event{Type: EventHeartbeat, Timestamp: time.Now()}); err != nil {
				return
			}
		}
	}
}
