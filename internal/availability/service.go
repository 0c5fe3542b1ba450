package availability

import (
	"context"
	"errors"

	"fitconnect/internal/logger"
	"fitconnect/internal/metrics"
	"fitconnect/internal/schedule"
)

var (
	ErrSlotOverlap         = errors.New("this time slot overlaps with an existing slot")
	ErrAvailabilityMissing = errors.New("no availability for this day")
	ErrSlotIndexOutOfRange = errors.New("time slot not found")
)

type Service interface {
	AddSlot(ctx context.Context, trainerID string, day schedule.Weekday, slot schedule.TimeSlot) (*Availability, error)
	RemoveSlot(ctx context.Context, trainerID string, day schedule.Weekday, index int) error
	WeeklySchedule(ctx context.Context, trainerID string) ([]DaySchedule, error)
	SlotsForDay(ctx context.Context, trainerID string, day schedule.Weekday) ([]schedule.TimeSlot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// AddSlot appends slot to the trainer's day. The overlap check runs against
// the snapshot being written, so a rejected slot never reaches the store.
func (s *service) AddSlot(ctx context.Context, trainerID string, day schedule.Weekday, slot schedule.TimeSlot) (*Availability, error) {
	if !day.Valid() {
		return nil, schedule.ErrInvalidWeekday
	}
	if err := slot.Validate(); err != nil {
		metrics.RecordAvailabilitySlot("invalid")
		return nil, err
	}

	record, err := s.repo.Modify(ctx, trainerID, day, func(a *Availability) error {
		if schedule.HasOverlap(slot, a.TimeSlots) {
			return ErrSlotOverlap
		}
		a.TimeSlots = append(a.TimeSlots, slot)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotOverlap) {
			metrics.RecordAvailabilitySlot("overlap")
			logger.Debug("availability slot rejected", "trainer_id", trainerID, "day", day, "slot", slot.String())
		}
		return nil, err
	}

	metrics.RecordAvailabilitySlot("added")
	logger.Info("availability slot added", "trainer_id", trainerID, "day", day, "slot", slot.String())
	return record, nil
}

func (s *service) RemoveSlot(ctx context.Context, trainerID string, day schedule.Weekday, index int) error {
	if !day.Valid() {
		return schedule.ErrInvalidWeekday
	}

	_, err := s.repo.Modify(ctx, trainerID, day, func(a *Availability) error {
		if len(a.TimeSlots) == 0 {
			return ErrAvailabilityMissing
		}
		if index < 0 || index >= len(a.TimeSlots) {
			return ErrSlotIndexOutOfRange
		}
		a.TimeSlots = append(a.TimeSlots[:index], a.TimeSlots[index+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	metrics.RecordAvailabilitySlot("removed")
	logger.Info("availability slot removed", "trainer_id", trainerID, "day", day, "index", index)
	return nil
}

func (s *service) WeeklySchedule(ctx context.Context, trainerID string) ([]DaySchedule, error) {
	records, err := s.repo.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[schedule.Weekday][]schedule.TimeSlot, len(records))
	for _, r := range records {
		byDay[r.DayOfWeek] = append(byDay[r.DayOfWeek], r.TimeSlots...)
	}

	week := make([]DaySchedule, 0, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		slots := byDay[day]
		if slots == nil {
			slots = []schedule.TimeSlot{}
		}
		week = append(week, DaySchedule{DayOfWeek: day, TimeSlots: slots})
	}
	return week, nil
}

func (s *service) SlotsForDay(ctx context.Context, trainerID string, day schedule.Weekday) ([]schedule.TimeSlot, error) {
	record, err := s.repo.FindByTrainerAndDay(ctx, trainerID, day)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return []schedule.TimeSlot{}, nil
	}
	return record.TimeSlots, nil
}
