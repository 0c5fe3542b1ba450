package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitconnect/internal/auth"
	"fitconnect/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret"
	testRefreshSecret = "refresh-secret"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockRepository) CreateMany(ctx context.Context, users []User) error {
	return m.Called(ctx, users).Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, role Role) ([]User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, fn func(u *User) error) (*User, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	u := args.Get(0).(*User)
	if err := fn(u); err != nil {
		return nil, err
	}
	return u, nil
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           RegisterRequest
		setupMock     func(*MockRepository)
		expectedError error
	}{
		{
			name: "successful trainer registration",
			req: RegisterRequest{
				Email:            "new.trainer@example.com",
				Password:         "password",
				Role:             RoleTrainer,
				FullName:         "New Trainer",
				AreasOfExpertise: []string{"Yoga"},
			},
			setupMock: func(m *MockRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
					return u.Role == RoleTrainer && u.TrainerProfile != nil && u.ClientProfile == nil &&
						u.TrainerProfile.AreasOfExpertise[0] == "Yoga"
				})).Return(nil)
			},
		},
		{
			name: "successful client registration",
			req: RegisterRequest{
				Email:        "new.client@example.com",
				Password:     "password",
				Role:         RoleClient,
				FullName:     "New Client",
				FitnessLevel: FitnessAdvanced,
			},
			setupMock: func(m *MockRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
					return u.ClientProfile != nil && u.ClientProfile.FitnessLevel == FitnessAdvanced
				})).Return(nil)
			},
		},
		{
			name: "email already exists",
			req: RegisterRequest{
				Email:    "taken@example.com",
				Password: "password",
				Role:     RoleClient,
				FullName: "Dup",
			},
			setupMock: func(m *MockRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(ErrEmailExists)
			},
			expectedError: ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			svc := NewService(mockRepo, testAccessSecret, testRefreshSecret)
			u, accessToken, refreshToken, err := svc.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, u)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, u.ID)
				assert.NotEqual(t, tt.req.Password, u.PasswordHash)

				claims, err := auth.ParseAccessToken(accessToken, testAccessSecret)
				require.NoError(t, err)
				assert.Equal(t, u.ID, claims.UserID)
				assert.Equal(t, tt.req.Role, claims.Role)

				_, err = auth.ParseRefreshToken(refreshToken, testRefreshSecret)
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Login(t *testing.T) {
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	stored := NewUser("alex@example.com", hash, RoleClient, "Alex", time.Now())

	t.Run("valid credentials", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByEmail", mock.Anything, "alex@example.com").Return(&stored, nil)

		u, accessToken, _, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).
			Login(context.Background(), LoginRequest{Email: "alex@example.com", Password: "password"})

		require.NoError(t, err)
		assert.Equal(t, stored.ID, u.ID)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByEmail", mock.Anything, "alex@example.com").Return(&stored, nil)

		_, _, _, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).
			Login(context.Background(), LoginRequest{Email: "alex@example.com", Password: "nope"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, ErrUserNotFound)

		_, _, _, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).
			Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "password"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage failure is not masked", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByEmail", mock.Anything, "alex@example.com").Return(nil, errors.New("redis down"))

		_, _, _, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).
			Login(context.Background(), LoginRequest{Email: "alex@example.com", Password: "password"})

		assert.EqualError(t, err, "redis down")
	})
}

func TestService_RefreshToken(t *testing.T) {
	stored := NewUser("emily@example.com", "hash", RoleTrainer, "Emily", time.Now())
	refreshToken, err := auth.IssueRefreshToken(auth.Subject{UserID: stored.ID, Email: stored.Email, Role: stored.Role}, testRefreshSecret)
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	mockRepo.On("FindByID", mock.Anything, stored.ID).Return(&stored, nil)

	accessToken, u, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).
		RefreshToken(context.Background(), refreshToken)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, u.ID)
	claims, err := auth.ParseAccessToken(accessToken, testAccessSecret)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, RoleTrainer, claims.Role)
}

func trainerWith(name, bio string, expertise ...string) User {
	u := NewUser(name+"@example.com", "hash", RoleTrainer, name, time.Now())
	u.TrainerProfile.Bio = bio
	u.TrainerProfile.AreasOfExpertise = expertise
	return u
}

func TestService_ListTrainers(t *testing.T) {
	trainers := []User{
		trainerWith("Sarah Johnson", "Certified yoga instructor", "Yoga", "Pilates"),
		trainerWith("Mike Chen", "Former athlete", "Strength Training", "HIIT"),
		trainerWith("Emily Rodriguez", "Helps with weight loss", "Weight Loss", "Nutrition"),
	}

	tests := []struct {
		name  string
		query TrainerQuery
		want  []string
	}{
		{"no filter", TrainerQuery{}, []string{"Sarah Johnson", "Mike Chen", "Emily Rodriguez"}},
		{"search by name", TrainerQuery{Search: "mike"}, []string{"Mike Chen"}},
		{"search by bio", TrainerQuery{Search: "ATHLETE"}, []string{"Mike Chen"}},
		{"search by expertise", TrainerQuery{Search: "pilat"}, []string{"Sarah Johnson"}},
		{"expertise filter", TrainerQuery{Expertise: "Nutrition"}, []string{"Emily Rodriguez"}},
		{"expertise must match exactly", TrainerQuery{Expertise: "nutrition"}, []string{}},
		{"search and filter", TrainerQuery{Search: "sarah", Expertise: "HIIT"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("List", mock.Anything, RoleTrainer).Return(trainers, nil)

			got, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).ListTrainers(context.Background(), tt.query)
			require.NoError(t, err)

			names := []string{}
			for _, u := range got {
				names = append(names, u.FullName())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestService_Expertise(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("List", mock.Anything, RoleTrainer).Return([]User{
		trainerWith("A", "", "Yoga", "HIIT"),
		trainerWith("B", "", "HIIT", "Boxing"),
	}, nil)

	areas, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).Expertise(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Boxing", "HIIT", "Yoga"}, areas)
}

func TestService_UpdateProfileComputesBMI(t *testing.T) {
	client := NewUser("c@example.com", "hash", RoleClient, "Client", time.Now())
	mockRepo := new(MockRepository)
	mockRepo.On("Update", mock.Anything, client.ID).Return(&client, nil)

	height, weight := 175.0, 70.0
	level := FitnessIntermediate
	u, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).UpdateProfile(context.Background(), client.ID, UpdateProfileRequest{
		Height:       &height,
		Weight:       &weight,
		FitnessLevel: &level,
	})

	require.NoError(t, err)
	require.NotNil(t, u.ClientProfile.PhysicalDetails)
	assert.Equal(t, 22.9, *u.ClientProfile.PhysicalDetails.BMI)
	assert.Equal(t, "Normal weight", u.ClientProfile.PhysicalDetails.BMICategory)
	assert.Equal(t, FitnessIntermediate, u.ClientProfile.FitnessLevel)
}

func TestService_UpdateProfileAssignsAchievementIDs(t *testing.T) {
	trainer := NewUser("t@example.com", "hash", RoleTrainer, "Trainer", time.Now())
	mockRepo := new(MockRepository)
	mockRepo.On("Update", mock.Anything, trainer.ID).Return(&trainer, nil)

	bio := "New bio"
	u, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).UpdateProfile(context.Background(), trainer.ID, UpdateProfileRequest{
		Bio:          &bio,
		Achievements: []Achievement{{Title: "Marathon"}, {ID: "keep", Title: "Ironman"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "New bio", u.TrainerProfile.Bio)
	require.Len(t, u.TrainerProfile.Achievements, 2)
	assert.NotEmpty(t, u.TrainerProfile.Achievements[0].ID)
	assert.Equal(t, "keep", u.TrainerProfile.Achievements[1].ID)
}

func TestService_UpdateGoalsRequiresClient(t *testing.T) {
	trainer := NewUser("t@example.com", "hash", RoleTrainer, "Trainer", time.Now())
	mockRepo := new(MockRepository)
	mockRepo.On("Update", mock.Anything, trainer.ID).Return(&trainer, nil)

	_, err := NewService(mockRepo, testAccessSecret, testRefreshSecret).UpdateGoals(context.Background(), trainer.ID, []string{"x"})
	assert.ErrorIs(t, err, ErrNotAClient)
}

// Backed by the real store.
func TestService_LinkAndListClients(t *testing.T) {
	repo := NewRepository(storage.NewMemoryStore())
	svc := NewService(repo, testAccessSecret, testRefreshSecret)
	ctx := context.Background()

	trainer := NewUser("t@example.com", "hash", RoleTrainer, "Trainer", time.Now())
	client := NewUser("c@example.com", "hash", RoleClient, "Client", time.Now())
	other := NewUser("o@example.com", "hash", RoleClient, "Other", time.Now())
	require.NoError(t, repo.CreateMany(ctx, []User{trainer, client, other}))

	require.NoError(t, svc.LinkTrainerClient(ctx, trainer.ID, client.ID))
	require.NoError(t, svc.LinkTrainerClient(ctx, trainer.ID, client.ID))

	clients, err := svc.ListClients(ctx, trainer.ID)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, client.ID, clients[0].ID)

	trainers, err := svc.ListTrainersOf(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, trainers, 1)

	_, err = svc.GetClient(ctx, trainer.ID, client.ID)
	assert.NoError(t, err)
	_, err = svc.GetClient(ctx, trainer.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotYourClient)

	assert.ErrorIs(t, svc.LinkTrainerClient(ctx, client.ID, trainer.ID), ErrNotATrainer)
}
