package course

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

type Course struct {
	ID              string     `json:"id"`
	TrainerID       string     `json:"trainer_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Difficulty      Difficulty `json:"difficulty" example:"BEGINNER"`
	TargetGoals     []string   `json:"target_goals"`
	Duration        string     `json:"duration" example:"4 weeks"`
	CreatedAt       time.Time  `json:"created_at"`
	EnrolledClients []string   `json:"enrolled_clients"`
}

func (c *Course) IsEnrolled(clientID string) bool {
	for _, id := range c.EnrolledClients {
		if id == clientID {
			return true
		}
	}
	return false
}

type CreateCourseRequest struct {
	Title       string     `json:"title" binding:"required,max=120"`
	Description string     `json:"description" binding:"max=2000"`
	Difficulty  Difficulty `json:"difficulty" binding:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	TargetGoals []string   `json:"target_goals"`
	Duration    string     `json:"duration" binding:"required"`
}
