package store

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/domain"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/notify"
	filebackend "github.com/JuanoBQ/eCommerce-Template-sub001/internal/storage/file"
)

// --- Shared test helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// captureNotifier records every notice pushed at it.
type captureNotifier struct {
	mu      sync.Mutex
	notices []notify.Notice
}

func (c *captureNotifier) Push(ctx context.Context, n notify.Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, n)
}

func (c *captureNotifier) messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	msgs := make([]string, len(c.notices))
	for i, n := range c.notices {
		msgs[i] = n.Message
	}
	return msgs
}

// mockBackend lets tests force persistence failures.
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Load(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockBackend) Save(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *mockBackend) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newFileBackend(t *testing.T) *filebackend.Backend {
	t.Helper()
	backend, err := filebackend.New(t.TempDir())
	require.NoError(t, err)
	return backend
}

func sampleProduct() domain.ProductSnapshot {
	return domain.ProductSnapshot{
		ID:       1,
		Name:     "Training Shirt",
		Brand:    "FitWear",
		ImageURL: "https://img.example.com/shirt.jpg",
		Price:    1000,
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
