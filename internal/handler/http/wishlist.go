package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/domain"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/store"
	"github.com/JuanoBQ/eCommerce-Template-sub001/pkg/validator"
)

// WishlistHandler exposes the wishlist store to consuming views.
type WishlistHandler struct {
	store  *store.WishlistStore
	logger *slog.Logger
}

// NewWishlistHandler creates a new wishlist HTTP handler.
func NewWishlistHandler(s *store.WishlistStore, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		store:  s,
		logger: logger,
	}
}

// AddWishlistRequest is the JSON request body for saving a product.
type AddWishlistRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=500"`
	Brand     string `json:"brand" validate:"max=200"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
	Price     int64  `json:"price" validate:"gte=0"`
}

// wishlistResponse is the wishlist snapshot with its derived count.
type wishlistResponse struct {
	Entries []domain.WishlistEntry `json:"entries"`
	Count   int                    `json:"count"`
}

func (h *WishlistHandler) snapshotResponse() wishlistResponse {
	wishlist := h.store.Snapshot()
	entries := wishlist.Entries
	if entries == nil {
		entries = []domain.WishlistEntry{}
	}
	return wishlistResponse{
		Entries: entries,
		Count:   wishlist.Count(),
	}
}

// GetWishlist handles GET /api/v1/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Data: h.snapshotResponse()})
}

// AddItem handles POST /api/v1/wishlist/items. A duplicate add leaves the
// wishlist unchanged; the snapshot in the response tells the caller so.
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddWishlistRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			writeValidationError(w, err)
			return
		}
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	h.store.Add(r.Context(), domain.ProductSnapshot{
		ID:       req.ProductID,
		Name:     req.Name,
		Brand:    req.Brand,
		ImageURL: req.ImageURL,
		Price:    req.Price,
	})

	writeJSON(w, http.StatusOK, response{Data: h.snapshotResponse()})
}

// RemoveItem handles DELETE /api/v1/wishlist/items/{productID}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeBadRequest(w, "productID must be an integer")
		return
	}

	h.store.Remove(r.Context(), productID)

	writeJSON(w, http.StatusOK, response{Data: h.snapshotResponse()})
}

// ClearWishlist handles DELETE /api/v1/wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	h.store.Clear(r.Context())

	writeJSON(w, http.StatusOK, response{Data: h.snapshotResponse()})
}
