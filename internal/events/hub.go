// Package events broadcasts engine notifications (completed searches,
// resume analyses) to SSE subscribers. Delivery is best-effort: a lagging
// subscriber loses notifications, it never slows the engine down.
package events

import "sync"

// subscriberBuffer bounds how far behind a slow SSE client may fall before
// its notifications are dropped.
const subscriberBuffer = 10

type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, subscriberBuffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
			// drop, never block a publish
		}
	}
}
