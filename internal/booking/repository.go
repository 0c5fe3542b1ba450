package booking

import (
	"context"
	"errors"

	"fitconnect/internal/storage"
)

var ErrBookingNotFound = errors.New("booking not found")

type repository struct {
	bookings *storage.Collection[Booking]
}

func NewRepository(store storage.Store) Repository {
	return &repository{
		bookings: storage.NewCollection[Booking](store, storage.KeyBookings),
	}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	b, found, err := r.bookings.Find(ctx, func(b Booking) bool { return b.ID == id })
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID string) ([]Booking, error) {
	return r.bookings.Filter(ctx, func(b Booking) bool { return b.TrainerID == trainerID })
}

func (r *repository) ListByClient(ctx context.Context, clientID string) ([]Booking, error) {
	return r.bookings.Filter(ctx, func(b Booking) bool { return b.ClientID == clientID })
}

func (r *repository) ListByTrainerAndDate(ctx context.Context, trainerID, date string) ([]Booking, error) {
	return r.bookings.Filter(ctx, func(b Booking) bool {
		return b.TrainerID == trainerID && b.Date == date
	})
}

func (r *repository) Create(ctx context.Context, b *Booking, guard func(existing []Booking) error) error {
	return r.bookings.Update(ctx, func(items []Booking) ([]Booking, error) {
		if guard != nil {
			if err := guard(items); err != nil {
				return nil, err
			}
		}
		return append(items, *b), nil
	})
}

func (r *repository) Modify(ctx context.Context, id string, fn func(b *Booking, all []Booking) error) (*Booking, error) {
	var result Booking

	err := r.bookings.Update(ctx, func(items []Booking) ([]Booking, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			updated := items[i]
			if err := fn(&updated, items); err != nil {
				return nil, err
			}
			items[i] = updated
			result = updated
			return items, nil
		}
		return nil, ErrBookingNotFound
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
