package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitconnect/internal/logger"
)

func (s *service) contact(ctx context.Context, userID, fallback string) (email, name string) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fallback
	}
	if n := u.FullName(); n != "" {
		name = n
	} else {
		name = fallback
	}
	return u.Email, name
}

func when(b *Booking) string {
	return fmt.Sprintf("%s, %s", b.Date, b.TimeSlot.String())
}

func (s *service) notifyCreated(ctx context.Context, b *Booking, date time.Time) {
	if s.notifier == nil {
		return
	}

	to, name := s.contact(ctx, b.ClientID, unknownClient)
	if to == "" {
		return
	}
	_, trainerName := s.contact(ctx, b.TrainerID, unknownTrainer)

	if err := s.notifier.SendBookingConfirmation(ctx, to, name, trainerName, b.TimeSlot.String(), date); err != nil {
		logger.Warn("booking confirmation email not queued", "booking_id", b.ID, "error", err)
	}
}

// notifyCancelled tells the party that did not cancel.
func (s *service) notifyCancelled(ctx context.Context, b *Booking, cancelledBy string) {
	if s.notifier == nil {
		return
	}

	recipient, other, fallback, otherFallback := b.ClientID, b.TrainerID, unknownClient, unknownTrainer
	if cancelledBy == b.ClientID {
		recipient, other, fallback, otherFallback = b.TrainerID, b.ClientID, unknownTrainer, unknownClient
	}

	to, name := s.contact(ctx, recipient, fallback)
	if to == "" {
		return
	}
	_, otherName := s.contact(ctx, other, otherFallback)

	if err := s.notifier.SendCancellation(ctx, to, name, otherName, when(b)); err != nil {
		logger.Warn("cancellation email not queued", "booking_id", b.ID, "error", err)
	}
}

func (s *service) notifyStatus(ctx context.Context, b *Booking) {
	if s.notifier == nil {
		return
	}

	to, name := s.contact(ctx, b.ClientID, unknownClient)
	if to == "" {
		return
	}

	status := strings.ToLower(string(b.Status))
	if err := s.notifier.SendStatusUpdate(ctx, to, name, status, when(b)); err != nil {
		logger.Warn("status email not queued", "booking_id", b.ID, "error", err)
	}
}
