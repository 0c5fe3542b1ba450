package booking

import (
	"time"

	"fitconnect/internal/schedule"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusRejected  Status = "REJECTED"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether a booking in s may move to next.
// Cancelled, completed and rejected bookings are final.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID        string            `json:"id"`
	TrainerID string            `json:"trainer_id"`
	ClientID  string            `json:"client_id"`
	Date      string            `json:"date" example:"2026-10-19"`
	TimeSlot  schedule.TimeSlot `json:"time_slot"`
	Status    Status            `json:"status" example:"CONFIRMED"`
	Notes     *string           `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type BookingWithDetails struct {
	Booking
	TrainerName string `json:"trainer_name"`
	ClientName  string `json:"client_name"`
}

// View selects a subset of a booking list.
type View string

const (
	ViewAll       View = "all"
	ViewPending   View = "pending"
	ViewUpcoming  View = "upcoming"
	ViewPast      View = "past"
	ViewCancelled View = "cancelled"
	ViewRejected  View = "rejected"
)

type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Rejected  int `json:"rejected"`
}

type BookingList struct {
	View     View                 `json:"view"`
	Bookings []BookingWithDetails `json:"bookings"`
	Stats    Stats                `json:"stats"`
}

type BookableSlots struct {
	TrainerID string              `json:"trainer_id"`
	Date      string              `json:"date"`
	DayOfWeek schedule.Weekday    `json:"day_of_week"`
	Slots     []schedule.TimeSlot `json:"slots"`
}

type CreateBookingRequest struct {
	TrainerID string `json:"trainer_id" binding:"required"`
	Date      string `json:"date" binding:"required" example:"2026-10-19"`
	StartTime string `json:"start_time" binding:"required" example:"09:00"`
	EndTime   string `json:"end_time" binding:"required" example:"10:00"`
	Notes     string `json:"notes" binding:"max=500"`
}
