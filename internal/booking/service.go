package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"fitconnect/internal/logger"
	"fitconnect/internal/metrics"
	"fitconnect/internal/schedule"
	"fitconnect/internal/user"

	"github.com/google/uuid"
)

var (
	ErrSlotTaken         = errors.New("this slot has just been booked, please select another")
	ErrSlotUnavailable   = errors.New("trainer is not available at this time")
	ErrDateOutOfRange    = errors.New("date is outside the booking window")
	ErrNotConnected      = errors.New("you must be connected with this trainer to book a session")
	ErrAlreadyBooked     = errors.New("you already have a booking at this time")
	ErrForbidden         = errors.New("not allowed to modify this booking")
	ErrInvalidTransition = errors.New("invalid booking status change")
)

const (
	unknownTrainer = "Unknown Trainer"
	unknownClient  = "Unknown Client"
)

// SlotSource yields a trainer's recurring slots for a weekday.
type SlotSource interface {
	SlotsForDay(ctx context.Context, trainerID string, day schedule.Weekday) ([]schedule.TimeSlot, error)
}

type ConnectionChecker interface {
	IsConnected(ctx context.Context, trainerID, clientID string) (bool, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, userID string) (*user.User, error)
}

// Notifier delivers booking emails. Failures are logged, never returned to
// the caller.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, name, trainerName, slot string, date time.Time) error
	SendCancellation(ctx context.Context, to, name, counterpart, when string) error
	SendStatusUpdate(ctx context.Context, to, name, status, when string) error
}

type Options struct {
	// RequiresApproval makes new bookings PENDING until the trainer confirms.
	RequiresApproval bool
	HorizonMonths    int
}

type Service interface {
	BookableSlots(ctx context.Context, trainerID, date string) (*BookableSlots, error)
	Book(ctx context.Context, clientID string, req CreateBookingRequest) (*Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) (*Booking, error)
	Confirm(ctx context.Context, trainerID, bookingID string) (*Booking, error)
	Reject(ctx context.Context, trainerID, bookingID string) (*Booking, error)
	Complete(ctx context.Context, trainerID, bookingID string) (*Booking, error)
	ListForTrainer(ctx context.Context, trainerID string, view View) (*BookingList, error)
	ListForClient(ctx context.Context, clientID string, view View) (*BookingList, error)
}

type service struct {
	repo        Repository
	slots       SlotSource
	connections ConnectionChecker
	users       UserLookup
	notifier    Notifier
	opts        Options
	now         func() time.Time
}

func NewService(
	repo Repository,
	slots SlotSource,
	connections ConnectionChecker,
	users UserLookup,
	notifier Notifier,
	opts Options,
) Service {
	if opts.HorizonMonths <= 0 {
		opts.HorizonMonths = 3
	}
	return &service{
		repo:        repo,
		slots:       slots,
		connections: connections,
		users:       users,
		notifier:    notifier,
		opts:        opts,
		now:         time.Now,
	}
}

func (s *service) today() time.Time {
	return schedule.Day(s.now())
}

// BookableSlots lists the trainer's slots for the weekday of date minus
// every slot overlapping a CONFIRMED booking on that date.
func (s *service) BookableSlots(ctx context.Context, trainerID, date string) (*BookableSlots, error) {
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}
	date = schedule.FormatDate(day)
	weekday := schedule.WeekdayOf(day)

	slots, err := s.slots.SlotsForDay(ctx, trainerID, weekday)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListByTrainerAndDate(ctx, trainerID, date)
	if err != nil {
		return nil, err
	}

	taken := confirmedSlots(bookings, trainerID, date)
	free := make([]schedule.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if !schedule.HasOverlap(slot, taken) {
			free = append(free, slot)
		}
	}

	return &BookableSlots{
		TrainerID: trainerID,
		Date:      date,
		DayOfWeek: weekday,
		Slots:     free,
	}, nil
}

func confirmedSlots(bookings []Booking, trainerID, date string) []schedule.TimeSlot {
	var taken []schedule.TimeSlot
	for _, b := range bookings {
		if b.TrainerID == trainerID && b.Date == date && b.Status == StatusConfirmed {
			taken = append(taken, b.TimeSlot)
		}
	}
	return taken
}

func (s *service) Book(ctx context.Context, clientID string, req CreateBookingRequest) (*Booking, error) {
	day, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	today := s.today()
	if day.Before(today) || day.After(today.AddDate(0, s.opts.HorizonMonths, 0)) {
		metrics.RecordBooking("out_of_range")
		return nil, ErrDateOutOfRange
	}

	slot := schedule.TimeSlot{StartTime: req.StartTime, EndTime: req.EndTime}
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	connected, err := s.connections.IsConnected(ctx, req.TrainerID, clientID)
	if err != nil {
		return nil, err
	}
	if !connected {
		metrics.RecordBooking("not_connected")
		return nil, ErrNotConnected
	}

	offered, err := s.slots.SlotsForDay(ctx, req.TrainerID, schedule.WeekdayOf(day))
	if err != nil {
		return nil, err
	}
	if !offers(offered, slot) {
		metrics.RecordBooking("unavailable")
		return nil, ErrSlotUnavailable
	}

	now := s.now().UTC()
	status := StatusConfirmed
	if s.opts.RequiresApproval {
		status = StatusPending
	}

	b := &Booking{
		ID:        uuid.NewString(),
		TrainerID: req.TrainerID,
		ClientID:  clientID,
		Date:      schedule.FormatDate(day),
		TimeSlot:  slot,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		b.Notes = &notes
	}

	// Re-validated against the snapshot being written.
	err = s.repo.Create(ctx, b, func(existing []Booking) error {
		if schedule.HasOverlap(slot, confirmedSlots(existing, b.TrainerID, b.Date)) {
			return ErrSlotTaken
		}
		for _, other := range existing {
			if other.ClientID == clientID && other.Date == b.Date && isActive(other.Status) &&
				schedule.Overlaps(other.TimeSlot, slot) {
				return ErrAlreadyBooked
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			metrics.RecordBooking("slot_taken")
		case errors.Is(err, ErrAlreadyBooked):
			metrics.RecordBooking("already_booked")
		}
		return nil, err
	}

	metrics.RecordBooking(strings.ToLower(string(status)))
	logger.Info("booking created",
		"booking_id", b.ID,
		"trainer_id", b.TrainerID,
		"client_id", b.ClientID,
		"date", b.Date,
		"slot", slot.String(),
		"status", b.Status,
	)

	s.notifyCreated(ctx, b, day)
	return b, nil
}

func offers(slots []schedule.TimeSlot, slot schedule.TimeSlot) bool {
	for _, offered := range slots {
		if offered.Same(slot) {
			return true
		}
	}
	return false
}

func isActive(status Status) bool {
	return status == StatusPending || status == StatusConfirmed
}

// Cancel may be called by either party of the booking.
func (s *service) Cancel(ctx context.Context, userID, bookingID string) (*Booking, error) {
	b, err := s.transition(ctx, bookingID, StatusCancelled, func(b *Booking, _ []Booking) error {
		if b.TrainerID != userID && b.ClientID != userID {
			return ErrForbidden
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCancelled(ctx, b, userID)
	return b, nil
}

// Confirm accepts a pending booking unless its slot was confirmed for
// someone else in the meantime.
func (s *service) Confirm(ctx context.Context, trainerID, bookingID string) (*Booking, error) {
	b, err := s.transition(ctx, bookingID, StatusConfirmed, func(b *Booking, all []Booking) error {
		if b.TrainerID != trainerID {
			return ErrForbidden
		}
		if schedule.HasOverlap(b.TimeSlot, confirmedSlots(all, b.TrainerID, b.Date)) {
			return ErrSlotTaken
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatus(ctx, b)
	return b, nil
}

func (s *service) Reject(ctx context.Context, trainerID, bookingID string) (*Booking, error) {
	return s.trainerTransition(ctx, trainerID, bookingID, StatusRejected)
}

func (s *service) Complete(ctx context.Context, trainerID, bookingID string) (*Booking, error) {
	return s.trainerTransition(ctx, trainerID, bookingID, StatusCompleted)
}

func (s *service) trainerTransition(ctx context.Context, trainerID, bookingID string, next Status) (*Booking, error) {
	b, err := s.transition(ctx, bookingID, next, func(b *Booking, _ []Booking) error {
		if b.TrainerID != trainerID {
			return ErrForbidden
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatus(ctx, b)
	return b, nil
}

func (s *service) transition(ctx context.Context, bookingID string, next Status, check func(b *Booking, all []Booking) error) (*Booking, error) {
	var from Status

	b, err := s.repo.Modify(ctx, bookingID, func(b *Booking, all []Booking) error {
		if err := check(b, all); err != nil {
			return err
		}
		if !b.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, b.Status, next)
		}
		from = b.Status
		b.Status = next
		b.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingTransition(string(from), string(next))
	logger.Info("booking status changed", "booking_id", b.ID, "from", from, "to", next)
	return b, nil
}

func (s *service) ListForTrainer(ctx context.Context, trainerID string, view View) (*BookingList, error) {
	bookings, err := s.repo.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, bookings, view)
}

func (s *service) ListForClient(ctx context.Context, clientID string, view View) (*BookingList, error) {
	bookings, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, bookings, view)
}

// list filters by view, resolves names once per id and orders by date and
// start time. Stats always cover the unfiltered bookings.
func (s *service) list(ctx context.Context, bookings []Booking, view View) (*BookingList, error) {
	if view == "" {
		view = ViewAll
	}
	today := schedule.FormatDate(s.today())

	names := map[string]string{}
	nameOf := func(id, fallback string) string {
		if name, ok := names[id]; ok {
			return name
		}
		name := fallback
		if u, err := s.users.GetByID(ctx, id); err == nil && u.FullName() != "" {
			name = u.FullName()
		}
		names[id] = name
		return name
	}

	out := make([]BookingWithDetails, 0, len(bookings))
	for _, b := range bookings {
		if !inView(b, view, today) {
			continue
		}
		out = append(out, BookingWithDetails{
			Booking:     b,
			TrainerName: nameOf(b.TrainerID, unknownTrainer),
			ClientName:  nameOf(b.ClientID, unknownClient),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		a, _ := schedule.ParseClock(out[i].TimeSlot.StartTime)
		b, _ := schedule.ParseClock(out[j].TimeSlot.StartTime)
		return a < b
	})

	return &BookingList{
		View:     view,
		Bookings: out,
		Stats:    computeStats(bookings, today),
	}, nil
}

// inView applies a list filter. Dates are YYYY-MM-DD so string order is
// calendar order.
func inView(b Booking, view View, today string) bool {
	switch view {
	case ViewPending:
		return b.Status == StatusPending
	case ViewUpcoming:
		return b.Date >= today && b.Status == StatusConfirmed
	case ViewPast:
		return b.Date < today || b.Status == StatusCompleted
	case ViewCancelled:
		return b.Status == StatusCancelled
	case ViewRejected:
		return b.Status == StatusRejected
	default:
		return true
	}
}

func computeStats(bookings []Booking, today string) Stats {
	stats := Stats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case StatusPending:
			stats.Pending++
		case StatusConfirmed:
			if b.Date >= today {
				stats.Upcoming++
			}
		case StatusCompleted:
			stats.Completed++
		case StatusCancelled:
			stats.Cancelled++
		case StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// ParseView maps a query value to a View. "confirmed" is accepted as an
// alias of upcoming.
func ParseView(value string) (View, bool) {
	switch v := View(strings.ToLower(strings.TrimSpace(value))); v {
	case "":
		return ViewAll, true
	case "confirmed":
		return ViewUpcoming, true
	case ViewAll, ViewPending, ViewUpcoming, ViewPast, ViewCancelled, ViewRejected:
		return v, true
	}
	return "", false
}
