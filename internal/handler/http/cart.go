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

// CartHandler exposes the cart store to consuming views.
type CartHandler struct {
	store  *store.CartStore
	logger *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(s *store.CartStore, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		store:  s,
		logger: logger,
	}
}

// --- Request DTOs ---

// AddItemRequest is the JSON request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=500"`
	Brand     string `json:"brand" validate:"max=200"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
	Price     int64  `json:"price" validate:"gte=0"`
	VariantID *int64 `json:"variant_id"`
	// Quantity 0 means "default", which the store treats as 1.
	Quantity int `json:"quantity" validate:"gte=0"`
}

// UpdateQuantityRequest is the JSON request body for updating a line's
// quantity. Zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// cartResponse is the cart snapshot with its derived aggregates.
type cartResponse struct {
	Items      []domain.LineItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
}

func (h *CartHandler) snapshotResponse() cartResponse {
	cart := h.store.Snapshot()
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// --- Handlers ---

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Data: h.snapshotResponse()})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			writeValidationError(w, err)
			return
		}
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	h.store.AddItem(r.Context(), store.AddItemInput{
		Product: domain.ProductSnapshot{
			ID:       req.ProductID,
			Name:     req.Name,
			Brand:    req.Brand,
			ImageURL: req.ImageURL,
			Price:    req.Price,
		},
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})

	writeJSON(w, http.StatusOK, response{Data: h.snapshotResponse()})
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{itemID}. Updating an
// unknown id is not an error; the caller gets the current snapshot back and
// reconciles its stale view from that.
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		writeBadRequest(w, "itemID must be an integer")
		return
	}

	var req UpdateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			writeValidationError(w, err)
			return
		}
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	h.store.UpdateItemQuantity(r.Context(), itemID, req.Quantity)

	writeJSON(w, http.StatusOK, response{Data: h.snapshotResponse()})
}

// RemoveItem handles DELETE /api/v1/cart/items/{itemID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		writeBadRequest(w, "itemID must be an integer")
		return
	}

	h.store.RemoveItem(r.Context(), itemID)

	writeJSON(w, http.StatusOK, response{Data: h.snapshotResponse()})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.Clear(r.Context())

	writeJSON(w, http.StatusOK, response{Data: h.snapshotResponse()})
}
