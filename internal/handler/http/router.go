package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/notify"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/store"
	"github.com/JuanoBQ/eCommerce-Template-sub001/pkg/health"
	"github.com/JuanoBQ/eCommerce-Template-sub001/pkg/middleware"
)

// NewRouter creates a chi router with all routes registered.
func NewRouter(
	cartStore *store.CartStore,
	wishlistStore *store.WishlistStore,
	hub *notify.Hub,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("shopstate"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	cartHandler := NewCartHandler(cartStore, logger)
	wishlistHandler := NewWishlistHandler(wishlistStore, logger)
	eventsHandler := NewEventsHandler(cartStore, wishlistStore, hub, logger)

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(chimw.Timeout(30 * time.Second))
		r.Use(ContentTypeJSON)

		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)

		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{itemID}", cartHandler.UpdateItemQuantity)
		r.Delete("/items/{itemID}", cartHandler.RemoveItem)
	})

	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Use(chimw.Timeout(30 * time.Second))
		r.Use(ContentTypeJSON)

		r.Get("/", wishlistHandler.GetWishlist)
		r.Delete("/", wishlistHandler.ClearWishlist)

		r.Post("/items", wishlistHandler.AddItem)
		r.Delete("/items/{productID}", wishlistHandler.RemoveItem)
	})

	// The change feed is long-lived, so it stays outside the timeout
	// middleware.
	r.Get("/api/v1/events", eventsHandler.ServeHTTP)

	return r
}
