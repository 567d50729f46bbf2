package domain

import "time"

// WishlistEntry is a product saved for later. Membership is binary: at most
// one entry exists per distinct product id.
type WishlistEntry struct {
	ID      int64           `json:"id"`
	Product ProductSnapshot `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}

// Wishlist holds the current list of saved products.
type Wishlist struct {
	Entries []WishlistEntry `json:"entries"`
}

// Count returns the number of saved products.
func (w *Wishlist) Count() int {
	return len(w.Entries)
}

// Contains reports whether the given product is saved.
func (w *Wishlist) Contains(productID int64) bool {
	return w.FindEntry(productID) >= 0
}

// FindEntry returns the index of the entry for the given product id, or -1.
func (w *Wishlist) FindEntry(productID int64) int {
	for i := range w.Entries {
		if w.Entries[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
