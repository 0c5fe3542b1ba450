// Package storage keeps each record namespace as one JSON array under a
// single key. Every key carries a version that writers must present back,
// so a read-modify-write cycle either commits against the snapshot it read
// or fails with ErrVersionConflict.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fitconnect/internal/logger"
	"fitconnect/internal/metrics"
)

const (
	KeyUsers        = "users"
	KeyCourses      = "courses"
	KeyConnections  = "connections"
	KeyAvailability = "availability"
	KeyBookings     = "bookings"
)

const maxUpdateAttempts = 5

var ErrVersionConflict = errors.New("storage: version conflict")

// Store is a versioned key-value store. Get returns a nil value and version 0
// for a missing key. Put succeeds only when version matches the stored one
// and returns the new version.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, int64, error)
	Put(ctx context.Context, key string, data []byte, version int64) (int64, error)
	Name() string
	Close() error
}

// Collection is a typed view over one namespace.
type Collection[T any] struct {
	store Store
	key   string
}

func NewCollection[T any](store Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the decoded array together with the version it was read at.
func (c *Collection[T]) Load(ctx context.Context) ([]T, int64, error) {
	data, version, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: %w", c.key, err)
	}

	items := []T{}
	if len(data) == 0 {
		return items, version, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, version, nil
}

func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	items, _, err := c.Load(ctx)
	return items, err
}

// Find returns the first item matching match.
func (c *Collection[T]) Find(ctx context.Context, match func(T) bool) (T, bool, error) {
	var zero T
	items, err := c.All(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if match(item) {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Filter returns all items matching match, in stored order.
func (c *Collection[T]) Filter(ctx context.Context, match func(T) bool) ([]T, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Update applies fn to a fresh snapshot and writes the result back. An error
// from fn aborts without writing. On a version conflict the snapshot is
// reloaded and fn runs again.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		items, version, err := c.Load(ctx)
		if err != nil {
			return err
		}

		next, err := fn(items)
		if err != nil {
			return err
		}
		if next == nil {
			next = []T{}
		}

		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.key, err)
		}

		if _, err := c.store.Put(ctx, c.key, data, version); err != nil {
			if errors.Is(err, ErrVersionConflict) {
				metrics.RecordStoreConflict(c.key)
				logger.Debug("store version conflict, retrying", "key", c.key, "attempt", attempt)
				continue
			}
			return fmt.Errorf("save %s: %w", c.key, err)
		}
		return nil
	}

	return ErrVersionConflict
}
