package connection

import (
	"context"
	"time"

	"fitconnect/internal/logger"
	"fitconnect/internal/metrics"
	"fitconnect/internal/user"

	"github.com/google/uuid"
)

type Service interface {
	Connect(ctx context.Context, clientID, trainerID string) (*Connection, error)
	IsConnected(ctx context.Context, trainerID, clientID string) (bool, error)
	ListForClient(ctx context.Context, clientID string) ([]ConnectionWithTrainer, error)
}

type service struct {
	repo  Repository
	users user.Service
	now   func() time.Time
}

func NewService(repo Repository, users user.Service) Service {
	return &service{
		repo:  repo,
		users: users,
		now:   time.Now,
	}
}

// Connect links a client to a trainer. Connecting twice returns the existing
// connection. The user records are updated after the connection is stored,
// as separate writes.
func (s *service) Connect(ctx context.Context, clientID, trainerID string) (*Connection, error) {
	if _, err := s.users.GetTrainer(ctx, trainerID); err != nil {
		return nil, err
	}

	conn, created, err := s.repo.CreateIfMissing(ctx, Connection{
		ID:        uuid.NewString(),
		TrainerID: trainerID,
		ClientID:  clientID,
		Status:    StatusConnected,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	// Linking is idempotent, so a repeated connect also repairs user records
	// left behind by an earlier partial failure.
	if err := s.users.LinkTrainerClient(ctx, trainerID, clientID); err != nil {
		logger.Error("connection stored but user link failed", "trainer_id", trainerID, "client_id", clientID, "error", err)
		return nil, err
	}

	if created {
		metrics.RecordConnection()
		logger.Info("client connected to trainer", "trainer_id", trainerID, "client_id", clientID)
	}
	return conn, nil
}

func (s *service) IsConnected(ctx context.Context, trainerID, clientID string) (bool, error) {
	conn, err := s.repo.Find(ctx, trainerID, clientID)
	if err != nil {
		return false, err
	}
	return conn != nil && conn.Status == StatusConnected, nil
}

func (s *service) ListForClient(ctx context.Context, clientID string) ([]ConnectionWithTrainer, error) {
	conns, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]ConnectionWithTrainer, 0, len(conns))
	for _, c := range conns {
		name := "Unknown Trainer"
		if t, err := s.users.GetByID(ctx, c.TrainerID); err == nil {
			name = t.FullName()
		}
		out = append(out, ConnectionWithTrainer{Connection: c, TrainerName: name})
	}
	return out, nil
}
