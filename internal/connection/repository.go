package connection

import (
	"context"

	"fitconnect/internal/storage"
)

type Repository interface {
	Find(ctx context.Context, trainerID, clientID string) (*Connection, error)
	ListByClient(ctx context.Context, clientID string) ([]Connection, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]Connection, error)
	// CreateIfMissing stores c unless the pair already has a connection and
	// returns whichever is stored.
	CreateIfMissing(ctx context.Context, c Connection) (*Connection, bool, error)
	CreateMany(ctx context.Context, conns []Connection) error
}

type repository struct {
	connections *storage.Collection[Connection]
}

func NewRepository(store storage.Store) Repository {
	return &repository{
		connections: storage.NewCollection[Connection](store, storage.KeyConnections),
	}
}

func (r *repository) Find(ctx context.Context, trainerID, clientID string) (*Connection, error) {
	c, found, err := r.connections.Find(ctx, func(c Connection) bool {
		return c.TrainerID == trainerID && c.ClientID == clientID
	})
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListByClient(ctx context.Context, clientID string) ([]Connection, error) {
	return r.connections.Filter(ctx, func(c Connection) bool { return c.ClientID == clientID })
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID string) ([]Connection, error) {
	return r.connections.Filter(ctx, func(c Connection) bool { return c.TrainerID == trainerID })
}

func (r *repository) CreateIfMissing(ctx context.Context, c Connection) (*Connection, bool, error) {
	var (
		stored  Connection
		created bool
	)

	err := r.connections.Update(ctx, func(items []Connection) ([]Connection, error) {
		for _, existing := range items {
			if existing.TrainerID == c.TrainerID && existing.ClientID == c.ClientID {
				stored, created = existing, false
				return items, nil
			}
		}
		stored, created = c, true
		return append(items, c), nil
	})
	if err != nil {
		return nil, false, err
	}

	return &stored, created, nil
}

func (r *repository) CreateMany(ctx context.Context, conns []Connection) error {
	return r.connections.Update(ctx, func(items []Connection) ([]Connection, error) {
		return append(items, conns...), nil
	})
}
