package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addWishlistBody(productID int64) map[string]any {
	return map[string]any{
		"product_id": productID,
		"name":       "Training Shirt",
		"brand":      "FitWear",
		"price":      1000,
	}
}

func TestGetWishlist_Empty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/wishlist", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	assert.Empty(t, data["entries"])
	assert.Equal(t, float64(0), data["count"])
}

func TestAddWishlistItem(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/wishlist/items", addWishlistBody(1))

	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	entries, ok := data["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(1), data["count"])

	entry := entries[0].(map[string]any)
	product := entry["product"].(map[string]any)
	assert.Equal(t, "Training Shirt", product["name"])
}

func TestAddWishlistItem_DuplicateKeepsCount(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/wishlist/items", addWishlistBody(1))
	rec := env.do(t, http.MethodPost, "/api/v1/wishlist/items", addWishlistBody(1))

	// The duplicate add is not an error; the snapshot shows it had no effect.
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	assert.Equal(t, float64(1), data["count"])
}

func TestAddWishlistItem_MissingProductID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/wishlist/items", map[string]any{
		"name": "Training Shirt",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := errorField(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestRemoveWishlistItem(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/wishlist/items", addWishlistBody(1))
	env.do(t, http.MethodPost, "/api/v1/wishlist/items", addWishlistBody(2))

	rec := env.do(t, http.MethodDelete, "/api/v1/wishlist/items/1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	assert.Equal(t, float64(1), data["count"])

	entries := data["entries"].([]any)
	require.Len(t, entries, 1)
	product := entries[0].(map[string]any)["product"].(map[string]any)
	assert.Equal(t, float64(2), product["id"])
}

func TestRemoveWishlistItem_Absent(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodDelete, "/api/v1/wishlist/items/999", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	assert.Equal(t, float64(0), data["count"])
}

func TestRemoveWishlistItem_NonNumericID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodDelete, "/api/v1/wishlist/items/abc", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := errorField(t, rec)
	assert.Equal(t, "INVALID_INPUT", errObj["code"])
}

func TestClearWishlist(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/wishlist/items", addWishlistBody(1))
	env.do(t, http.MethodPost, "/api/v1/wishlist/items", addWishlistBody(2))

	rec := env.do(t, http.MethodDelete, "/api/v1/wishlist", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	assert.Empty(t, data["entries"])
	assert.Equal(t, float64(0), data["count"])
}
