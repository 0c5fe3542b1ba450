package course

import (
	"context"
	"errors"

	"fitconnect/internal/storage"
)

var ErrCourseNotFound = errors.New("course not found")

type repository struct {
	courses *storage.Collection[Course]
}

func NewRepository(store storage.Store) Repository {
	return &repository{
		courses: storage.NewCollection[Course](store, storage.KeyCourses),
	}
}

func (r *repository) Create(ctx context.Context, c *Course) error {
	return r.courses.Update(ctx, func(items []Course) ([]Course, error) {
		return append(items, *c), nil
	})
}

func (r *repository) GetByID(ctx context.Context, id string) (*Course, error) {
	c, found, err := r.courses.Find(ctx, func(c Course) bool { return c.ID == id })
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCourseNotFound
	}
	return &c, nil
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID string) ([]Course, error) {
	return r.courses.Filter(ctx, func(c Course) bool { return c.TrainerID == trainerID })
}

func (r *repository) ListByClient(ctx context.Context, clientID string) ([]Course, error) {
	return r.courses.Filter(ctx, func(c Course) bool { return c.IsEnrolled(clientID) })
}

func (r *repository) Enroll(ctx context.Context, courseID, clientID string) (*Course, bool, error) {
	var (
		result Course
		added  bool
	)

	err := r.courses.Update(ctx, func(items []Course) ([]Course, error) {
		for i := range items {
			if items[i].ID != courseID {
				continue
			}
			added = false
			if !items[i].IsEnrolled(clientID) {
				items[i].EnrolledClients = append(items[i].EnrolledClients, clientID)
				added = true
			}
			result = items[i]
			return items, nil
		}
		return nil, ErrCourseNotFound
	})
	if err != nil {
		return nil, false, err
	}

	return &result, added, nil
}
