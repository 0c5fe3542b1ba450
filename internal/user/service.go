package user

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"fitconnect/internal/auth"
	"fitconnect/internal/logger"

	"github.com/google/uuid"
)

var (
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotATrainer        = errors.New("user is not a trainer")
	ErrNotAClient         = errors.New("user is not a client")
	ErrNotYourClient      = errors.New("client is not connected to this trainer")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	GetByID(ctx context.Context, userID string) (*User, error)

	GetTrainer(ctx context.Context, trainerID string) (*User, error)
	ListTrainers(ctx context.Context, query TrainerQuery) ([]User, error)
	Expertise(ctx context.Context) ([]string, error)
	ListClients(ctx context.Context, trainerID string) ([]User, error)
	GetClient(ctx context.Context, trainerID, clientID string) (*User, error)
	ListTrainersOf(ctx context.Context, clientID string) ([]User, error)

	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error)
	UpdateGoals(ctx context.Context, clientID string, goals []string) (*User, error)

	LinkTrainerClient(ctx context.Context, trainerID, clientID string) error
	AddCourse(ctx context.Context, trainerID, courseID string) error
	AddEnrollment(ctx context.Context, clientID, courseID string) error
}

type service struct {
	repo          Repository
	accessSecret  string
	refreshSecret string
	now           func() time.Time
}

func NewService(repo Repository, accessSecret, refreshSecret string) Service {
	return &service{
		repo:          repo,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		now:           time.Now,
	}
}

// NewUser builds a trainer or client with an empty profile of the right kind.
func NewUser(email, passwordHash string, role Role, fullName string, createdAt time.Time) User {
	u := User{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    createdAt.UTC(),
	}

	if role == RoleTrainer {
		u.TrainerProfile = &TrainerProfile{
			FullName:         fullName,
			AreasOfExpertise: []string{},
			Achievements:     []Achievement{},
			Certifications:   []Certification{},
		}
		u.Courses = []string{}
		u.Clients = []string{}
	} else {
		u.ClientProfile = &ClientProfile{
			FullName:     fullName,
			FitnessLevel: FitnessBeginner,
		}
		u.Trainers = []string{}
		u.Goals = []string{}
		u.EnrolledCourses = []string{}
	}
	return u
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	u := NewUser(req.Email, passwordHash, req.Role, req.FullName, s.now())
	if u.TrainerProfile != nil {
		u.TrainerProfile.Bio = req.Bio
		u.TrainerProfile.YearsOfExperience = req.YearsOfExperience
		if req.AreasOfExpertise != nil {
			u.TrainerProfile.AreasOfExpertise = req.AreasOfExpertise
		}
	}
	if u.ClientProfile != nil && req.FitnessLevel != "" {
		u.ClientProfile.FitnessLevel = req.FitnessLevel
	}

	if err := s.repo.Create(ctx, &u); err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := s.issueTokens(&u)
	if err != nil {
		return nil, "", "", err
	}

	logger.Info("user registered", "user_id", u.ID, "role", u.Role)
	return &u, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokens(u)
	if err != nil {
		return nil, "", "", err
	}

	return u, accessToken, refreshToken, nil
}

func (s *service) issueTokens(u *User) (string, string, error) {
	pair, err := auth.IssueTokens(auth.Subject{UserID: u.ID, Email: u.Email, Role: u.Role}, s.accessSecret, s.refreshSecret)
	if err != nil {
		return "", "", err
	}
	return pair.AccessToken, pair.RefreshToken, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	accessToken, claims, err := auth.Refresh(refreshToken, s.refreshSecret, s.accessSecret)
	if err != nil {
		return "", nil, err
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}

	return accessToken, u, nil
}

func (s *service) GetByID(ctx context.Context, userID string) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) GetTrainer(ctx context.Context, trainerID string) (*User, error) {
	u, err := s.repo.FindByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if u.Role != RoleTrainer {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ListTrainers matches search against name, bio and expertise
// case-insensitively; expertise must equal one of the trainer's areas.
func (s *service) ListTrainers(ctx context.Context, query TrainerQuery) ([]User, error) {
	trainers, err := s.repo.List(ctx, RoleTrainer)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	expertise := strings.TrimSpace(query.Expertise)

	out := make([]User, 0, len(trainers))
	for _, t := range trainers {
		p := t.TrainerProfile
		if p == nil {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if expertise != "" && !contains(p.AreasOfExpertise, expertise) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func matchesSearch(p *TrainerProfile, search string) bool {
	if strings.Contains(strings.ToLower(p.FullName), search) ||
		strings.Contains(strings.ToLower(p.Bio), search) {
		return true
	}
	for _, area := range p.AreasOfExpertise {
		if strings.Contains(strings.ToLower(area), search) {
			return true
		}
	}
	return false
}

// Expertise returns every distinct area of expertise, sorted.
func (s *service) Expertise(ctx context.Context) ([]string, error) {
	trainers, err := s.repo.List(ctx, RoleTrainer)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	areas := []string{}
	for _, t := range trainers {
		if t.TrainerProfile == nil {
			continue
		}
		for _, area := range t.TrainerProfile.AreasOfExpertise {
			if !seen[area] {
				seen[area] = true
				areas = append(areas, area)
			}
		}
	}
	sort.Strings(areas)
	return areas, nil
}

func (s *service) ListClients(ctx context.Context, trainerID string) ([]User, error) {
	trainer, err := s.GetTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, trainer.Clients)
}

func (s *service) GetClient(ctx context.Context, trainerID, clientID string) (*User, error) {
	trainer, err := s.GetTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !trainer.HasClient(clientID) {
		return nil, ErrNotYourClient
	}
	return s.repo.FindByID(ctx, clientID)
}

func (s *service) ListTrainersOf(ctx context.Context, clientID string) ([]User, error) {
	client, err := s.repo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, client.Trainers)
}

// resolve looks ids up in one read. Dangling ids are skipped.
func (s *service) resolve(ctx context.Context, ids []string) ([]User, error) {
	all, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	byID := make(map[string]User, len(all))
	for _, u := range all {
		byID[u.ID] = u
	}

	out := make([]User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error) {
	return s.repo.Update(ctx, userID, func(u *User) error {
		switch {
		case u.TrainerProfile != nil:
			p := *u.TrainerProfile
			applyTrainer(&p, req)
			u.TrainerProfile = &p
		case u.ClientProfile != nil:
			p := *u.ClientProfile
			applyClient(&p, req)
			u.ClientProfile = &p
		}
		return nil
	})
}

func applyTrainer(p *TrainerProfile, req UpdateProfileRequest) {
	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Age != nil {
		p.Age = req.Age
	}
	if req.PhoneNumber != nil {
		p.PhoneNumber = *req.PhoneNumber
	}
	if req.ProfilePhoto != nil {
		p.ProfilePhoto = *req.ProfilePhoto
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.AreasOfExpertise != nil {
		p.AreasOfExpertise = req.AreasOfExpertise
	}
	if req.YearsOfExperience != nil {
		p.YearsOfExperience = *req.YearsOfExperience
	}
	if req.Achievements != nil {
		p.Achievements = withIDs(req.Achievements, func(a *Achievement) *string { return &a.ID })
	}
	if req.Certifications != nil {
		p.Certifications = withIDs(req.Certifications, func(c *Certification) *string { return &c.ID })
	}
	if req.Pricing != nil {
		p.Pricing = req.Pricing
	}
	p.PhysicalDetails = withBMI(p.PhysicalDetails, req.Height, req.Weight)
}

func applyClient(p *ClientProfile, req UpdateProfileRequest) {
	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Age != nil {
		p.Age = req.Age
	}
	if req.PhoneNumber != nil {
		p.PhoneNumber = *req.PhoneNumber
	}
	if req.ProfilePhoto != nil {
		p.ProfilePhoto = *req.ProfilePhoto
	}
	if req.FitnessLevel != nil {
		p.FitnessLevel = *req.FitnessLevel
	}
	if req.MedicalConditions != nil {
		p.MedicalConditions = *req.MedicalConditions
	}
	if req.PreferredTrainingType != nil {
		p.PreferredTrainingType = req.PreferredTrainingType
	}
	p.PhysicalDetails = withBMI(p.PhysicalDetails, req.Height, req.Weight)
}

// withIDs assigns fresh ids to entries that arrive without one.
func withIDs[T any](items []T, id func(*T) *string) []T {
	out := append([]T(nil), items...)
	for i := range out {
		if p := id(&out[i]); *p == "" {
			*p = uuid.NewString()
		}
	}
	return out
}

func (s *service) UpdateGoals(ctx context.Context, clientID string, goals []string) (*User, error) {
	return s.repo.Update(ctx, clientID, func(u *User) error {
		if u.Role != RoleClient {
			return ErrNotAClient
		}
		u.Goals = append([]string{}, goals...)
		return nil
	})
}

// LinkTrainerClient records the relationship on both users. The two writes
// are independent; a failure on the second leaves the first in place.
func (s *service) LinkTrainerClient(ctx context.Context, trainerID, clientID string) error {
	if _, err := s.repo.Update(ctx, trainerID, func(u *User) error {
		if u.Role != RoleTrainer {
			return ErrNotATrainer
		}
		if !contains(u.Clients, clientID) {
			u.Clients = append(u.Clients, clientID)
		}
		return nil
	}); err != nil {
		return err
	}

	_, err := s.repo.Update(ctx, clientID, func(u *User) error {
		if u.Role != RoleClient {
			return ErrNotAClient
		}
		if !contains(u.Trainers, trainerID) {
			u.Trainers = append(u.Trainers, trainerID)
		}
		return nil
	})
	return err
}

func (s *service) AddCourse(ctx context.Context, trainerID, courseID string) error {
	_, err := s.repo.Update(ctx, trainerID, func(u *User) error {
		if u.Role != RoleTrainer {
			return ErrNotATrainer
		}
		if !contains(u.Courses, courseID) {
			u.Courses = append(u.Courses, courseID)
		}
		return nil
	})
	return err
}

func (s *service) AddEnrollment(ctx context.Context, clientID, courseID string) error {
	_, err := s.repo.Update(ctx, clientID, func(u *User) error {
		if u.Role != RoleClient {
			return ErrNotAClient
		}
		if !contains(u.EnrolledCourses, courseID) {
			u.EnrolledCourses = append(u.EnrolledCourses, courseID)
		}
		return nil
	})
	return err
}
