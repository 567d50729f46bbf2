package notify

import (
	"context"
	"sync"
)

// Hub broadcasts notices to in-process subscribers, feeding the SSE toast
// stream. Delivery is best effort: a subscriber whose buffer is full misses
// the notice rather than blocking the mutating goroutine.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan Notice
	nextID int
	buffer int
}

// NewHub creates a hub whose subscriber channels buffer up to buffer notices.
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[int]chan Notice),
		buffer: buffer,
	}
}

// Push delivers the notice to every current subscriber without blocking.
func (h *Hub) Push(ctx context.Context, n Notice) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- n:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel together with
// a cancel function. Cancel is idempotent and closes the channel.
func (h *Hub) Subscribe() (<-chan Notice, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan Notice, h.buffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Len returns the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
