package availability

import (
	"context"
	"time"

	"fitconnect/internal/schedule"
	"fitconnect/internal/storage"

	"github.com/google/uuid"
)

type repository struct {
	records *storage.Collection[Availability]
	now     func() time.Time
}

func NewRepository(store storage.Store) Repository {
	return &repository{
		records: storage.NewCollection[Availability](store, storage.KeyAvailability),
		now:     time.Now,
	}
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID string) ([]Availability, error) {
	return r.records.Filter(ctx, func(a Availability) bool {
		return a.TrainerID == trainerID
	})
}

func (r *repository) FindByTrainerAndDay(ctx context.Context, trainerID string, day schedule.Weekday) (*Availability, error) {
	record, found, err := r.records.Find(ctx, func(a Availability) bool {
		return a.TrainerID == trainerID && a.DayOfWeek == day
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &record, nil
}

func (r *repository) Modify(ctx context.Context, trainerID string, day schedule.Weekday, fn func(a *Availability) error) (*Availability, error) {
	var result *Availability

	err := r.records.Update(ctx, func(items []Availability) ([]Availability, error) {
		result = nil
		now := r.now().UTC()

		idx := -1
		for i := range items {
			if items[i].TrainerID == trainerID && items[i].DayOfWeek == day {
				idx = i
				break
			}
		}

		var record Availability
		if idx >= 0 {
			record = items[idx]
			record.TimeSlots = append([]schedule.TimeSlot(nil), record.TimeSlots...)
		} else {
			record = Availability{
				ID:          uuid.NewString(),
				TrainerID:   trainerID,
				DayOfWeek:   day,
				TimeSlots:   []schedule.TimeSlot{},
				IsRecurring: true,
				CreatedAt:   now,
			}
		}

		if err := fn(&record); err != nil {
			return nil, err
		}
		record.UpdatedAt = now

		switch {
		case len(record.TimeSlots) == 0 && idx >= 0:
			return append(items[:idx], items[idx+1:]...), nil
		case len(record.TimeSlots) == 0:
			return items, nil
		case idx >= 0:
			items[idx] = record
		default:
			items = append(items, record)
		}

		result = &record
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
