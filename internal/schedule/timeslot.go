// Package schedule holds the wall-clock primitives shared by availability and
// bookings: "HH:MM" time slots, weekday names and calendar dates.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidClock   = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidWeekday = errors.New("invalid day of week")
)

// TimeSlot is a wall-clock interval [StartTime, EndTime) with no date or zone.
type TimeSlot struct {
	StartTime string `json:"start_time" example:"09:00"`
	EndTime   string `json:"end_time" example:"10:00"`
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(value string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, ErrInvalidClock
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrInvalidClock
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidClock
	}

	return hours*60 + minutes, nil
}

// Minutes returns the slot bounds as minutes since midnight.
func (s TimeSlot) Minutes() (start, end int, err error) {
	if start, err = ParseClock(s.StartTime); err != nil {
		return 0, 0, err
	}
	if end, err = ParseClock(s.EndTime); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func (s TimeSlot) Validate() error {
	start, end, err := s.Minutes()
	if err != nil {
		return err
	}
	if end <= start {
		return ErrEndBeforeStart
	}
	return nil
}

// Same reports whether both slots cover the same minutes.
func (s TimeSlot) Same(other TimeSlot) bool {
	aStart, aEnd, errA := s.Minutes()
	bStart, bEnd, errB := other.Minutes()
	if errA != nil || errB != nil {
		return s == other
	}
	return aStart == bStart && aEnd == bEnd
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

// Overlaps reports whether the half-open intervals of a and b intersect.
// Back-to-back slots do not overlap. Slots that fail to parse never overlap.
func Overlaps(a, b TimeSlot) bool {
	aStart, aEnd, err := a.Minutes()
	if err != nil {
		return false
	}
	bStart, bEnd, err := b.Minutes()
	if err != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// HasOverlap reports whether candidate intersects any of existing.
func HasOverlap(candidate TimeSlot, existing []TimeSlot) bool {
	for _, slot := range existing {
		if Overlaps(candidate, slot) {
			return true
		}
	}
	return false
}

// ParseDate parses a calendar date string (YYYY-MM-DD) as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// Day truncates t to its calendar date in t's location, expressed as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
