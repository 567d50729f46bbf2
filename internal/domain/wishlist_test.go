package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWishlistCount(t *testing.T) {
	wishlist := &Wishlist{
		Entries: []WishlistEntry{
			{ID: 1, Product: ProductSnapshot{ID: 10}},
			{ID: 2, Product: ProductSnapshot{ID: 20}},
		},
	}

	assert.Equal(t, 2, wishlist.Count())
}

func TestWishlistContains(t *testing.T) {
	wishlist := &Wishlist{
		Entries: []WishlistEntry{
			{ID: 1, Product: ProductSnapshot{ID: 10}},
		},
	}

	assert.True(t, wishlist.Contains(10))
	assert.False(t, wishlist.Contains(20))
}

func TestWishlistFindEntry(t *testing.T) {
	wishlist := &Wishlist{
		Entries: []WishlistEntry{
			{ID: 1, Product: ProductSnapshot{ID: 10}},
			{ID: 2, Product: ProductSnapshot{ID: 20}},
		},
	}

	assert.Equal(t, 1, wishlist.FindEntry(20))
	assert.Equal(t, -1, wishlist.FindEntry(99))
}

func TestWishlistEmpty(t *testing.T) {
	wishlist := &Wishlist{}

	assert.Equal(t, 0, wishlist.Count())
	assert.False(t, wishlist.Contains(1))
}
