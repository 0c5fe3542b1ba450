package availability

import (
	"context"

	"fitconnect/internal/schedule"
)

type Repository interface {
	ListByTrainer(ctx context.Context, trainerID string) ([]Availability, error)
	FindByTrainerAndDay(ctx context.Context, trainerID string, day schedule.Weekday) (*Availability, error)
	// Modify hands fn the trainer's record for day, or a fresh one when none
	// exists, and stores the result atomically. A record left without slots is
	// deleted. An error from fn leaves the store unchanged.
	Modify(ctx context.Context, trainerID string, day schedule.Weekday, fn func(a *Availability) error) (*Availability, error)
}
