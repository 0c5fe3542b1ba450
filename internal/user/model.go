package user

import (
	"time"

	"fitconnect/internal/auth"
)

type Role = auth.Role

const (
	RoleTrainer = auth.RoleTrainer
	RoleClient  = auth.RoleClient
)

type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "BEGINNER"
	FitnessIntermediate FitnessLevel = "INTERMEDIATE"
	FitnessAdvanced     FitnessLevel = "ADVANCED"
)

type TrainingType string

const (
	TrainingOneOnOne TrainingType = "ONE_ON_ONE"
	TrainingGroup    TrainingType = "GROUP"
	TrainingOnline   TrainingType = "ONLINE"
	TrainingGym      TrainingType = "GYM"
)

// User is either a trainer or a client; exactly one of TrainerProfile and
// ClientProfile is set, matching Role. Trainer-only and client-only
// relationship lists stay empty for the other role.
type User struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"password_hash,omitempty"`
	Role           Role            `json:"role"`
	CreatedAt      time.Time       `json:"created_at"`
	TrainerProfile *TrainerProfile `json:"trainer_profile,omitempty"`
	ClientProfile  *ClientProfile  `json:"client_profile,omitempty"`

	Courses []string `json:"courses,omitempty"`
	Clients []string `json:"clients,omitempty"`

	Trainers        []string `json:"trainers,omitempty"`
	Goals           []string `json:"goals,omitempty"`
	EnrolledCourses []string `json:"enrolled_courses,omitempty"`
}

type TrainerProfile struct {
	FullName            string           `json:"full_name"`
	Age                 *int             `json:"age,omitempty"`
	PhoneNumber         string           `json:"phone_number,omitempty"`
	Bio                 string           `json:"bio"`
	ProfilePhoto        string           `json:"profile_photo,omitempty"`
	AreasOfExpertise    []string         `json:"areas_of_expertise"`
	YearsOfExperience   int              `json:"years_of_experience"`
	Achievements        []Achievement    `json:"achievements"`
	Certifications      []Certification  `json:"certifications"`
	TotalClientsTrained *int             `json:"total_clients_trained,omitempty"`
	Pricing             *Pricing         `json:"pricing,omitempty"`
	PhysicalDetails     *PhysicalDetails `json:"physical_details,omitempty"`
}

type ClientProfile struct {
	FullName              string           `json:"full_name"`
	Age                   *int             `json:"age,omitempty"`
	PhoneNumber           string           `json:"phone_number,omitempty"`
	ProfilePhoto          string           `json:"profile_photo,omitempty"`
	FitnessLevel          FitnessLevel     `json:"fitness_level"`
	PhysicalDetails       *PhysicalDetails `json:"physical_details,omitempty"`
	MedicalConditions     string           `json:"medical_conditions,omitempty"`
	PreferredTrainingType []TrainingType   `json:"preferred_training_type,omitempty"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

type Certification struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	IssuedBy       string `json:"issued_by,omitempty"`
	Date           string `json:"date,omitempty"`
	CertificateURL string `json:"certificate_url,omitempty"`
}

type Pricing struct {
	PerSession *float64 `json:"per_session,omitempty"`
	Monthly    *float64 `json:"monthly,omitempty"`
	Currency   string   `json:"currency"`
}

type PhysicalDetails struct {
	Height      *float64 `json:"height,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	BMI         *float64 `json:"bmi,omitempty"`
	BMICategory string   `json:"bmi_category,omitempty"`
}

// FullName returns the display name from whichever profile is set.
func (u *User) FullName() string {
	switch {
	case u.TrainerProfile != nil:
		return u.TrainerProfile.FullName
	case u.ClientProfile != nil:
		return u.ClientProfile.FullName
	}
	return ""
}

// Public returns a copy safe to send to clients.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

func (u *User) HasClient(clientID string) bool {
	return contains(u.Clients, clientID)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

type RegisterRequest struct {
	Email             string       `json:"email" binding:"required,email"`
	Password          string       `json:"password" binding:"required,min=6"`
	Role              Role         `json:"role" binding:"required,oneof=TRAINER CLIENT"`
	FullName          string       `json:"full_name" binding:"required"`
	Bio               string       `json:"bio"`
	AreasOfExpertise  []string     `json:"areas_of_expertise"`
	YearsOfExperience int          `json:"years_of_experience" binding:"min=0"`
	FitnessLevel      FitnessLevel `json:"fitness_level" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         User   `json:"user"`
}

// UpdateProfileRequest carries optional fields; nil leaves a field untouched.
// Trainer-only and client-only fields are ignored for the other role.
type UpdateProfileRequest struct {
	FullName     *string  `json:"full_name" binding:"omitempty,min=1"`
	Age          *int     `json:"age" binding:"omitempty,min=1,max=120"`
	PhoneNumber  *string  `json:"phone_number"`
	ProfilePhoto *string  `json:"profile_photo" binding:"omitempty,url"`
	Height       *float64 `json:"height" binding:"omitempty,gt=0"`
	Weight       *float64 `json:"weight" binding:"omitempty,gt=0"`

	Bio               *string         `json:"bio"`
	AreasOfExpertise  []string        `json:"areas_of_expertise"`
	YearsOfExperience *int            `json:"years_of_experience" binding:"omitempty,min=0"`
	Achievements      []Achievement   `json:"achievements"`
	Certifications    []Certification `json:"certifications"`
	Pricing           *Pricing        `json:"pricing"`

	FitnessLevel          *FitnessLevel  `json:"fitness_level" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	MedicalConditions     *string        `json:"medical_conditions"`
	PreferredTrainingType []TrainingType `json:"preferred_training_type" binding:"omitempty,dive,oneof=ONE_ON_ONE GROUP ONLINE GYM"`
}

type UpdateGoalsRequest struct {
	Goals []string `json:"goals" binding:"required,dive,required"`
}

type TrainerQuery struct {
	Search    string `form:"search"`
	Expertise string `form:"expertise"`
}
