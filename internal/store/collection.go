// Package store implements the client-local cart and wishlist state. Both
// stores share the same pipeline for every mutation: compute a replacement
// list from a copy of the current one, swap it in, persist the full state,
// then notify subscribers. Persistence is fail-soft; the in-memory state
// stays authoritative for the session even when the backend is unavailable.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/notify"
	"github.com/JuanoBQ/eCommerce-Template-sub001/internal/storage"
	apperrors "github.com/JuanoBQ/eCommerce-Template-sub001/pkg/errors"
)

// schemaVersion is the current persisted-state schema. Version 0 is the
// legacy bare-array form written by earlier clients.
const schemaVersion = 1

// envelope is the persisted representation of a store's state.
type envelope[T any] struct {
	SchemaVersion int `json:"schema_version"`
	Items         []T `json:"items"`
}

// collection is the generic keyed-collection core under CartStore and
// WishlistStore: one owned item list, mirrored to a storage key, observed
// through a subscription registry.
type collection[T any] struct {
	name     string
	key      string
	backend  storage.Backend
	notifier notify.Notifier
	logger   *slog.Logger
	registry *Registry

	mu     sync.RWMutex
	items  []T
	lastID int64
}

func newCollection[T any](ctx context.Context, name, key string, backend storage.Backend, notifier notify.Notifier, logger *slog.Logger, idOf func(T) int64) *collection[T] {
	c := &collection[T]{
		name:     name,
		key:      key,
		backend:  backend,
		notifier: notifier,
		logger:   logger,
		registry: NewRegistry(),
	}

	c.items = c.load(ctx)
	for _, item := range c.items {
		if id := idOf(item); id > c.lastID {
			c.lastID = id
		}
	}
	storeItems.WithLabelValues(c.name).Set(float64(len(c.items)))

	return c
}

// load reads and decodes the persisted state. Missing or malformed data
// degrades to an empty list; nothing is reported to the caller.
func (c *collection[T]) load(ctx context.Context) []T {
	data, err := c.backend.Load(ctx, c.key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			c.logger.WarnContext(ctx, "failed to load persisted state, starting empty",
				slog.String("store", c.name),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}

	items, err := decodeState[T](data)
	if err != nil {
		c.logger.WarnContext(ctx, "discarding malformed persisted state",
			slog.String("store", c.name),
			slog.String("error", err.Error()),
		)
		return nil
	}

	return items
}

// decodeState accepts both the current envelope form and the legacy bare
// JSON array written by earlier clients.
func decodeState[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode legacy state: %w", err)
		}
		return items, nil
	}

	var env envelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode state envelope: %w", err)
	}
	if env.SchemaVersion > schemaVersion {
		return nil, fmt.Errorf("unsupported state schema version %d", env.SchemaVersion)
	}
	return env.Items, nil
}

// mutate applies fn to a copy of the current item list. When fn reports a
// change, the result replaces the current list, the full state is persisted,
// and subscribers are notified. Subscribers run synchronously on the calling
// goroutine, after the state swap, so a callback reading the store observes
// the state that triggered it. Returns whether a mutation was applied.
func (c *collection[T]) mutate(ctx context.Context, op string, fn func(items []T) ([]T, bool)) bool {
	c.mu.Lock()

	next, ok := fn(slices.Clone(c.items))
	if !ok {
		c.mu.Unlock()
		return false
	}

	c.items = next
	c.persistLocked(ctx)
	c.mu.Unlock()

	storeMutations.WithLabelValues(c.name, op).Inc()
	storeItems.WithLabelValues(c.name).Set(float64(len(next)))
	c.registry.notify()

	return true
}

// persistLocked serializes the current list and writes it to the backend.
// Failures are logged and counted, never surfaced: the in-memory state
// remains authoritative for the session.
func (c *collection[T]) persistLocked(ctx context.Context) {
	items := c.items
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(envelope[T]{SchemaVersion: schemaVersion, Items: items})
	if err != nil {
		c.persistFailed(ctx, err)
		return
	}

	if err := c.backend.Save(ctx, c.key, data); err != nil {
		c.persistFailed(ctx, err)
	}
}

func (c *collection[T]) persistFailed(ctx context.Context, err error) {
	storePersistFailures.WithLabelValues(c.name).Inc()
	c.logger.ErrorContext(ctx, "failed to persist state, in-memory state remains authoritative",
		slog.String("store", c.name),
		slog.String("error", err.Error()),
	)
}

// snapshot returns a copy of the current item list.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// nextID generates a locally unique item id. Ids keep the millisecond
// timestamp flavor of the original client but are forced monotonic so two
// adds in the same millisecond cannot collide. Callers must hold c.mu.
func (c *collection[T]) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

// notice emits a fire-and-forget user notice.
func (c *collection[T]) notice(ctx context.Context, level notify.Level, message string) {
	c.notifier.Push(ctx, notify.Notice{
		Level:   level,
		Message: message,
		At:      time.Now().UTC(),
	})
}
