package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRejected}
	allowed := map[Status]map[Status]bool{
		StatusPending:   {StatusConfirmed: true, StatusRejected: true, StatusCancelled: true},
		StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in   string
		want View
		ok   bool
	}{
		{"", ViewAll, true},
		{"all", ViewAll, true},
		{"Upcoming", ViewUpcoming, true},
		{"confirmed", ViewUpcoming, true},
		{"past", ViewPast, true},
		{"rejected", ViewRejected, true},
		{"archived", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseView(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
