package course

import (
	"context"
	"errors"
	"testing"

	"fitconnect/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConnections struct {
	mock.Mock
}

func (m *MockConnections) IsConnected(ctx context.Context, trainerID, clientID string) (bool, error) {
	args := m.Called(ctx, trainerID, clientID)
	return args.Bool(0), args.Error(1)
}

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) AddCourse(ctx context.Context, trainerID, courseID string) error {
	args := m.Called(ctx, trainerID, courseID)
	return args.Error(0)
}

func (m *MockUsers) AddEnrollment(ctx context.Context, clientID, courseID string) error {
	args := m.Called(ctx, clientID, courseID)
	return args.Error(0)
}

func newTestService(t *testing.T) (Service, Repository, *MockConnections, *MockUsers) {
	t.Helper()
	repo := NewRepository(storage.NewMemoryStore())
	connections := new(MockConnections)
	users := new(MockUsers)
	return NewService(repo, connections, users), repo, connections, users
}

func createReq() CreateCourseRequest {
	return CreateCourseRequest{
		Title:       " Strength Foundations ",
		Description: "Barbell basics",
		Difficulty:  DifficultyBeginner,
		TargetGoals: []string{"Build Muscle", " ", "Get Stronger"},
		Duration:    "4 weeks",
	}
}

func TestService_Create(t *testing.T) {
	svc, repo, _, users := newTestService(t)
	ctx := context.Background()

	users.On("AddCourse", ctx, "t1", mock.AnythingOfType("string")).Return(nil)

	c, err := svc.Create(ctx, "t1", createReq())
	require.NoError(t, err)
	assert.Equal(t, "Strength Foundations", c.Title)
	assert.Equal(t, []string{"Build Muscle", "Get Stronger"}, c.TargetGoals)
	assert.Empty(t, c.EnrolledClients)

	stored, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Title, stored.Title)

	users.AssertCalled(t, "AddCourse", ctx, "t1", c.ID)
}

func TestService_CreateLinkFails(t *testing.T) {
	svc, _, _, users := newTestService(t)
	ctx := context.Background()

	users.On("AddCourse", ctx, "t1", mock.Anything).Return(errors.New("not a trainer"))

	_, err := svc.Create(ctx, "t1", createReq())
	assert.EqualError(t, err, "not a trainer")
}

func TestService_Enroll(t *testing.T) {
	svc, _, connections, users := newTestService(t)
	ctx := context.Background()

	users.On("AddCourse", ctx, "t1", mock.Anything).Return(nil)
	c, err := svc.Create(ctx, "t1", createReq())
	require.NoError(t, err)

	connections.On("IsConnected", ctx, "t1", "c1").Return(true, nil)
	connections.On("IsConnected", ctx, "t1", "c2").Return(false, nil)
	users.On("AddEnrollment", ctx, "c1", c.ID).Return(nil)

	t.Run("not connected", func(t *testing.T) {
		_, err := svc.Enroll(ctx, "c2", c.ID)
		assert.ErrorIs(t, err, ErrNotConnected)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := svc.Enroll(ctx, "c1", "missing")
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := svc.Enroll(ctx, "c1", c.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, first.EnrolledClients)

		second, err := svc.Enroll(ctx, "c1", c.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, second.EnrolledClients)

		mine, err := svc.ListForClient(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, c.ID, mine[0].ID)
	})

	byTrainer, err := svc.ListByTrainer(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, byTrainer, 1)
}
