package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/domain"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/notify"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/storage"
)

// WishlistStore owns the client-local wishlist. Membership is binary: a
// product is saved at most once, and a duplicate add is a defined no-op
// surfaced only as an informational notice.
type WishlistStore struct {
	col *collection[domain.WishlistEntry]
}

// NewWishlistStore creates a wishlist store, reconstructing its state from
// the backend. A missing or unreadable persisted wishlist loads as empty.
func NewWishlistStore(ctx context.Context, backend storage.Backend, notifier notify.Notifier, logger *slog.Logger) *WishlistStore {
	col := newCollection(ctx, "wishlist", storage.KeyWishlist, backend, notifier, logger,
		func(entry domain.WishlistEntry) int64 { return entry.ID })
	return &WishlistStore{col: col}
}

// Add saves a product. If the product is already saved the wishlist is left
// untouched, keeping the original entry and its AddedAt timestamp.
func (s *WishlistStore) Add(ctx context.Context, product domain.ProductSnapshot) {
	ok := s.col.mutate(ctx, "add", func(entries []domain.WishlistEntry) ([]domain.WishlistEntry, bool) {
		wishlist := domain.Wishlist{Entries: entries}
		if wishlist.Contains(product.ID) {
			return entries, false
		}

		now := time.Now().UTC()
		entries = append(entries, domain.WishlistEntry{
			ID:      s.col.nextID(now),
			Product: product,
			AddedAt: now,
		})
		return entries, true
	})

	if !ok {
		s.col.notice(ctx, notify.LevelInfo, "already in wishlist")
		return
	}

	s.col.notice(ctx, notify.LevelSuccess, "added to wishlist")

	s.col.logger.InfoContext(ctx, "product added to wishlist",
		slog.Int64("product_id", product.ID),
	)
}

// Remove drops the entry for the given product. Removing a product that is
// not saved is a no-op.
func (s *WishlistStore) Remove(ctx context.Context, productID int64) {
	ok := s.col.mutate(ctx, "remove", func(entries []domain.WishlistEntry) ([]domain.WishlistEntry, bool) {
		wishlist := domain.Wishlist{Entries: entries}
		i := wishlist.FindEntry(productID)
		if i < 0 {
			return entries, false
		}
		return append(entries[:i], entries[i+1:]...), true
	})

	if ok {
		s.col.notice(ctx, notify.LevelSuccess, "removed from wishlist")
	}
}

// Clear empties the wishlist.
func (s *WishlistStore) Clear(ctx context.Context) {
	s.col.mutate(ctx, "clear", func(entries []domain.WishlistEntry) ([]domain.WishlistEntry, bool) {
		return []domain.WishlistEntry{}, true
	})

	s.col.notice(ctx, notify.LevelSuccess, "wishlist cleared")
}

// Snapshot returns a copy of the current wishlist.
func (s *WishlistStore) Snapshot() domain.Wishlist {
	return domain.Wishlist{Entries: s.col.snapshot()}
}

// Entries returns a copy of the current entries.
func (s *WishlistStore) Entries() []domain.WishlistEntry {
	return s.col.snapshot()
}

// Contains reports whether the given product is saved.
func (s *WishlistStore) Contains(productID int64) bool {
	wishlist := s.Snapshot()
	return wishlist.Contains(productID)
}

// Count returns the number of saved products.
func (s *WishlistStore) Count() int {
	wishlist := s.Snapshot()
	return wishlist.Count()
}

// Subscribe registers a callback invoked after every applied mutation.
func (s *WishlistStore) Subscribe(fn func()) *Subscription {
	return s.col.registry.Subscribe(fn)
}
