package course

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitconnect/internal/logger"
	"fitconnect/internal/metrics"

	"github.com/google/uuid"
)

var ErrNotConnected = errors.New("you must be connected with this trainer to enroll")

type ConnectionChecker interface {
	IsConnected(ctx context.Context, trainerID, clientID string) (bool, error)
}

// UserLinker keeps the course ids on user records in step with courses.
type UserLinker interface {
	AddCourse(ctx context.Context, trainerID, courseID string) error
	AddEnrollment(ctx context.Context, clientID, courseID string) error
}

type Service interface {
	Create(ctx context.Context, trainerID string, req CreateCourseRequest) (*Course, error)
	Get(ctx context.Context, id string) (*Course, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]Course, error)
	Enroll(ctx context.Context, clientID, courseID string) (*Course, error)
	ListForClient(ctx context.Context, clientID string) ([]Course, error)
}

type service struct {
	repo        Repository
	connections ConnectionChecker
	users       UserLinker
	now         func() time.Time
}

func NewService(repo Repository, connections ConnectionChecker, users UserLinker) Service {
	return &service{
		repo:        repo,
		connections: connections,
		users:       users,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, trainerID string, req CreateCourseRequest) (*Course, error) {
	goals := make([]string, 0, len(req.TargetGoals))
	for _, g := range req.TargetGoals {
		if g = strings.TrimSpace(g); g != "" {
			goals = append(goals, g)
		}
	}

	c := &Course{
		ID:              uuid.NewString(),
		TrainerID:       trainerID,
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		Difficulty:      req.Difficulty,
		TargetGoals:     goals,
		Duration:        strings.TrimSpace(req.Duration),
		CreatedAt:       s.now().UTC(),
		EnrolledClients: []string{},
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	if err := s.users.AddCourse(ctx, trainerID, c.ID); err != nil {
		logger.Error("course stored but trainer link failed", "course_id", c.ID, "trainer_id", trainerID, "error", err)
		return nil, err
	}

	logger.Info("course created", "course_id", c.ID, "trainer_id", trainerID)
	return c, nil
}

func (s *service) Get(ctx context.Context, id string) (*Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByTrainer(ctx context.Context, trainerID string) ([]Course, error) {
	return s.repo.ListByTrainer(ctx, trainerID)
}

// Enroll adds a connected client to a course. Enrolling twice is a no-op.
func (s *service) Enroll(ctx context.Context, clientID, courseID string) (*Course, error) {
	c, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	connected, err := s.connections.IsConnected(ctx, c.TrainerID, clientID)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, ErrNotConnected
	}

	c, added, err := s.repo.Enroll(ctx, courseID, clientID)
	if err != nil {
		return nil, err
	}
	if err := s.users.AddEnrollment(ctx, clientID, courseID); err != nil {
		return nil, err
	}

	if added {
		metrics.RecordEnrollment()
		logger.Info("client enrolled", "course_id", courseID, "client_id", clientID)
	}
	return c, nil
}

func (s *service) ListForClient(ctx context.Context, clientID string) ([]Course, error) {
	return s.repo.ListByClient(ctx, clientID)
}
