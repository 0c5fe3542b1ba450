package booking

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) ListByTrainer(ctx context.Context, trainerID string) ([]Booking, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockRepository) ListByClient(ctx context.Context, clientID string) ([]Booking, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockRepository) ListByTrainerAndDate(ctx context.Context, trainerID, date string) ([]Booking, error) {
	args := m.Called(ctx, trainerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, b *Booking, guard func(existing []Booking) error) error {
	args := m.Called(ctx, b)
	if err := args.Error(0); err != nil {
		return err
	}
	if guard != nil {
		return guard(nil)
	}
	return nil
}

func (m *MockRepository) Modify(ctx context.Context, id string, fn func(b *Booking, all []Booking) error) (*Booking, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	b := *args.Get(0).(*Booking)
	if err := fn(&b, []Booking{b}); err != nil {
		return nil, err
	}
	return &b, nil
}
