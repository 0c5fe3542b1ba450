package schedule

import (
	"strings"
	"time"
)

type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// Weekdays lists the week in display order, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var fromTime = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// ParseWeekday accepts any casing of the weekday name.
func ParseWeekday(value string) (Weekday, error) {
	d := Weekday(strings.ToUpper(strings.TrimSpace(value)))
	if !d.Valid() {
		return "", ErrInvalidWeekday
	}
	return d, nil
}

func WeekdayOf(date time.Time) Weekday {
	return fromTime[date.Weekday()]
}
