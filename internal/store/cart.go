package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/domain"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/notify"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/storage"
)

// AddItemInput holds the parameters for adding a product to the cart.
type AddItemInput struct {
	Product   domain.ProductSnapshot
	VariantID *int64
	// Quantity below 1 is treated as 1.
	Quantity int
}

// CartStore owns the client-local cart. It is the single writer of its item
// list; consumers read derived snapshots and mutate through its operations.
// Mutations never fail from the caller's point of view: validation problems
// are defined no-ops and persistence problems are swallowed (logged), per
// the client-local error policy.
type CartStore struct {
	col *collection[domain.LineItem]
}

// NewCartStore creates a cart store, reconstructing its state from the
// backend. A missing or unreadable persisted cart loads as empty.
func NewCartStore(ctx context.Context, backend storage.Backend, notifier notify.Notifier, logger *slog.Logger) *CartStore {
	col := newCollection(ctx, "cart", storage.KeyCart, backend, notifier, logger,
		func(item domain.LineItem) int64 { return item.ID })
	return &CartStore{col: col}
}

// AddItem adds a product to the cart. If a line for the same product and
// variant already exists, its quantity is incremented and the total is
// recomputed from the original unit-price snapshot; otherwise a new line is
// appended. No stock or availability check is performed here.
func (s *CartStore) AddItem(ctx context.Context, in AddItemInput) {
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	s.col.mutate(ctx, "add_item", func(items []domain.LineItem) ([]domain.LineItem, bool) {
		now := time.Now().UTC()
		cart := domain.Cart{Items: items}

		if i := cart.FindLine(in.Product.ID, in.VariantID); i >= 0 {
			items[i].Quantity += quantity
			items[i].TotalPrice = items[i].UnitPrice * int64(items[i].Quantity)
			items[i].UpdatedAt = now
			return items, true
		}

		items = append(items, domain.LineItem{
			ID:         s.col.nextID(now),
			ProductID:  in.Product.ID,
			VariantID:  in.VariantID,
			Quantity:   quantity,
			UnitPrice:  in.Product.Price,
			TotalPrice: in.Product.Price * int64(quantity),
			Product:    in.Product,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		return items, true
	})

	s.col.notice(ctx, notify.LevelSuccess, "added to cart")

	s.col.logger.InfoContext(ctx, "item added to cart",
		slog.Int64("product_id", in.Product.ID),
		slog.Int("quantity", quantity),
	)
}

// UpdateItemQuantity sets the quantity of the line with the given id. A
// quantity of zero or below removes the line. An unknown id is silently
// ignored: the caller may be acting on a stale view.
func (s *CartStore) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) {
	ok := s.col.mutate(ctx, "update_quantity", func(items []domain.LineItem) ([]domain.LineItem, bool) {
		for i := range items {
			if items[i].ID != itemID {
				continue
			}
			if quantity <= 0 {
				return append(items[:i], items[i+1:]...), true
			}
			items[i].Quantity = quantity
			items[i].TotalPrice = items[i].UnitPrice * int64(quantity)
			items[i].UpdatedAt = time.Now().UTC()
			return items, true
		}
		return items, false
	})

	if ok {
		s.col.notice(ctx, notify.LevelSuccess, "cart updated")
	}
}

// RemoveItem removes the line with the given id. Removing an unknown id is
// a no-op, not an error.
func (s *CartStore) RemoveItem(ctx context.Context, itemID int64) {
	ok := s.col.mutate(ctx, "remove_item", func(items []domain.LineItem) ([]domain.LineItem, bool) {
		for i := range items {
			if items[i].ID == itemID {
				return append(items[:i], items[i+1:]...), true
			}
		}
		return items, false
	})

	if ok {
		s.col.notice(ctx, notify.LevelSuccess, "removed from cart")
	}
}

// Clear empties the cart.
func (s *CartStore) Clear(ctx context.Context) {
	s.col.mutate(ctx, "clear", func(items []domain.LineItem) ([]domain.LineItem, bool) {
		return []domain.LineItem{}, true
	})

	s.col.notice(ctx, notify.LevelSuccess, "cart cleared")
}

// Snapshot returns a copy of the current cart.
func (s *CartStore) Snapshot() domain.Cart {
	return domain.Cart{Items: s.col.snapshot()}
}

// Items returns a copy of the current line items.
func (s *CartStore) Items() []domain.LineItem {
	return s.col.snapshot()
}

// IsInCart reports whether any line references the given product.
func (s *CartStore) IsInCart(productID int64) bool {
	return s.Quantity(productID) > 0
}

// Quantity returns the total quantity held for the given product, summed
// across variant lines. Returns 0 when the product is absent.
func (s *CartStore) Quantity(productID int64) int {
	var total int
	for _, item := range s.col.snapshot() {
		if item.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}

// TotalItems returns the sum of all line quantities.
func (s *CartStore) TotalItems() int {
	cart := s.Snapshot()
	return cart.TotalItems()
}

// TotalPrice returns the sum of all line totals (in cents).
func (s *CartStore) TotalPrice() int64 {
	cart := s.Snapshot()
	return cart.TotalPrice()
}

// Subscribe registers a callback invoked after every applied mutation.
func (s *CartStore) Subscribe(fn func()) *Subscription {
	return s.col.registry.Subscribe(fn)
}
