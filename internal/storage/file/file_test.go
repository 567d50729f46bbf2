package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/JuanoBQ/eCommerce-Template-sub001/pkg/errors"
)

func newBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New(t.TempDir())
	require.NoError(t, err)
	return backend
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")

	backend, err := New(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, backend.Dir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBackend_SaveLoad(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Save(ctx, "cart", []byte(`{"items":[]}`)))

	data, err := backend.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"items":[]}`), data)
}

func TestBackend_SaveOverwrites(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Save(ctx, "cart", []byte("first")))
	require.NoError(t, backend.Save(ctx, "cart", []byte("second")))

	data, err := backend.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestBackend_SaveLeavesNoTempFiles(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Save(ctx, "cart", []byte("data")))

	entries, err := os.ReadDir(backend.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart.json", entries[0].Name())
}

func TestBackend_LoadMissing(t *testing.T) {
	backend := newBackend(t)

	_, err := backend.Load(context.Background(), "cart")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestBackend_KeysAreIndependent(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Save(ctx, "cart", []byte("cart-data")))
	require.NoError(t, backend.Save(ctx, "wishlist", []byte("wishlist-data")))

	cart, err := backend.Load(ctx, "cart")
	require.NoError(t, err)
	wishlist, err := backend.Load(ctx, "wishlist")
	require.NoError(t, err)

	assert.Equal(t, []byte("cart-data"), cart)
	assert.Equal(t, []byte("wishlist-data"), wishlist)
}

func TestBackend_Delete(t *testing.T) {
	backend := newBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Save(ctx, "cart", []byte("data")))
	require.NoError(t, backend.Delete(ctx, "cart"))

	_, err := backend.Load(ctx, "cart")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestBackend_DeleteMissing(t *testing.T) {
	backend := newBackend(t)

	assert.NoError(t, backend.Delete(context.Background(), "cart"))
}
