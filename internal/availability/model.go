package availability

import (
	"time"

	"fitconnect/internal/schedule"
)

// Availability holds a trainer's recurring slots for one weekday.
type Availability struct {
	ID          string              `json:"id"`
	TrainerID   string              `json:"trainer_id"`
	DayOfWeek   schedule.Weekday    `json:"day_of_week"`
	TimeSlots   []schedule.TimeSlot `json:"time_slots"`
	IsRecurring bool                `json:"is_recurring"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type DaySchedule struct {
	DayOfWeek schedule.Weekday    `json:"day_of_week"`
	TimeSlots []schedule.TimeSlot `json:"time_slots"`
}

type AddSlotRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
