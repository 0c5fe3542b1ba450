package booking

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]Booking, error)
	ListByTrainerAndDate(ctx context.Context, trainerID, date string) ([]Booking, error)
	// Create stores b unless guard, given the current bookings, rejects it.
	Create(ctx context.Context, b *Booking, guard func(existing []Booking) error) error
	// Modify applies fn to the booking with id in the same snapshot that
	// gets written back; all holds every stored booking for cross-checks.
	Modify(ctx context.Context, id string, fn func(b *Booking, all []Booking) error) (*Booking, error)
}
