package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/notify"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/store"
)

// EventsHandler streams store changes and user notices to consuming views
// over server-sent events. Each connection holds one subscription per store;
// the subscriptions are canceled when the client disconnects, so a closed
// view never leaks a callback.
type EventsHandler struct {
	cart     *store.CartStore
	wishlist *store.WishlistStore
	hub      *notify.Hub
	logger   *slog.Logger
}

// NewEventsHandler creates the SSE change-feed handler.
func NewEventsHandler(cart *store.CartStore, wishlist *store.WishlistStore, hub *notify.Hub, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		cart:     cart,
		wishlist: wishlist,
		hub:      hub,
		logger:   logger,
	}
}

// ServeHTTP handles GET /api/v1/events
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, response{
			Error: &errorResponse{Code: "INTERNAL_ERROR", Message: "streaming unsupported"},
		})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Store change signals are coalesced per store: missing an intermediate
	// state is fine because every event carries a full snapshot.
	cartChanged := make(chan struct{}, 1)
	wishlistChanged := make(chan struct{}, 1)

	cartSub := h.cart.Subscribe(func() {
		select {
		case cartChanged <- struct{}{}:
		default:
		}
	})
	defer cartSub.Cancel()

	wishlistSub := h.wishlist.Subscribe(func() {
		select {
		case wishlistChanged <- struct{}{}:
		default:
		}
	})
	defer wishlistSub.Cancel()

	notices, cancelNotices := h.hub.Subscribe()
	defer cancelNotices()

	// Prime the client with the current state of both stores.
	h.writeCartEvent(w)
	h.writeWishlistEvent(w)
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-cartChanged:
			h.writeCartEvent(w)
			flusher.Flush()
		case <-wishlistChanged:
			h.writeWishlistEvent(w)
			flusher.Flush()
		case notice, ok := <-notices:
			if !ok {
				return
			}
			h.writeEvent(w, "notice", notice)
			flusher.Flush()
		}
	}
}

func (h *EventsHandler) writeCartEvent(w http.ResponseWriter) {
	cart := h.cart.Snapshot()
	h.writeEvent(w, "cart", cartResponse{
		Items:      cart.Items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	})
}

func (h *EventsHandler) writeWishlistEvent(w http.ResponseWriter) {
	wishlist := h.wishlist.Snapshot()
	h.writeEvent(w, "wishlist", wishlistResponse{
		Entries: wishlist.Entries,
		Count:   wishlist.Count(),
	})
}

func (h *EventsHandler) writeEvent(w http.ResponseWriter, event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("failed to marshal sse event",
			slog.String("event", event),
			slog.String("error", err.Error()),
		)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
}
