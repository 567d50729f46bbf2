package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/notify"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/store"
	filebackend "github.com/JuanoBQ/eCommerce-Template-sub001/internal/storage/file"
	"github.com/JuanoBQ/eCommerce-Template-sub001/pkg/health"
)

// --- Shared test helpers ---

type testEnv struct {
	router   http.Handler
	cart     *store.CartStore
	wishlist *store.WishlistStore
	hub      *notify.Hub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	ctx := context.Background()

	backend, err := filebackend.New(t.TempDir())
	require.NoError(t, err)

	hub := notify.NewHub(16)
	cart := store.NewCartStore(ctx, backend, hub, logger)
	wishlist := store.NewWishlistStore(ctx, backend, hub, logger)

	return &testEnv{
		router:   NewRouter(cart, wishlist, hub, health.NewHandler(), logger),
		cart:     cart,
		wishlist: wishlist,
		hub:      hub,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", rec.Body.String())
	return data
}

func errorField(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %s", rec.Body.String())
	return errObj
}
