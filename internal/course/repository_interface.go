package course

import "context"

type Repository interface {
	Create(ctx context.Context, c *Course) error
	GetByID(ctx context.Context, id string) (*Course, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]Course, error)
	ListByClient(ctx context.Context, clientID string) ([]Course, error)
	// Enroll adds clientID to the course. It reports false when the client
	// was already enrolled.
	Enroll(ctx context.Context, courseID, clientID string) (*Course, bool, error)
}
