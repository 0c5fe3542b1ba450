package email

import (
	"context"
	"fmt"
	"time"
)

const signature = "- FitConnect Team"

func (s *Service) SendBookingConfirmation(ctx context.Context, to, name, trainerName, slot string, date time.Time) error {
	subject := "Session booked with " + trainerName
	body := fmt.Sprintf(`Hi %s,

Your training session is booked.

Trainer: %s
Date: %s
Time: %s

%s`, name, trainerName, date.Format("Monday, Jan 2, 2006"), slot, signature)

	return s.Send(ctx, TypeBookingConfirmation, to, name, subject, body)
}

func (s *Service) SendCancellation(ctx context.Context, to, name, counterpart, when string) error {
	subject := "Session cancelled"
	body := fmt.Sprintf(`Hi %s,

Your session with %s on %s has been cancelled.

%s`, name, counterpart, when, signature)

	return s.Send(ctx, TypeCancellation, to, name, subject, body)
}

func (s *Service) SendStatusUpdate(ctx context.Context, to, name, status, when string) error {
	subject := "Session " + status
	body := fmt.Sprintf(`Hi %s,

Your session on %s is now %s.

%s`, name, when, status, signature)

	return s.Send(ctx, TypeStatusUpdate, to, name, subject, body)
}
