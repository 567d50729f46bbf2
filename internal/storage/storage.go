// Package storage defines the keyed-blob persistence boundary shared by the
// cart and wishlist stores. A backend maps a small fixed set of string keys
// to opaque serialized state; writes unconditionally overwrite, so two
// processes sharing a backend are last-writer-wins with no coordination.
package storage

import "context"

// Storage keys, one per store.
const (
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
)

// Backend persists serialized store state under a string key.
type Backend interface {
	// Load returns the blob stored under key. A missing key yields an error
	// matching apperrors.ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the blob stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
