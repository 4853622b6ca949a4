package booking

import (
	"context"
	"time"

	"bookwise/models"
	"bookwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome is the result of one booking attempt.
type Outcome int

const (
	Booked Outcome = iota + 1
	AlreadyBooked
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Booked:
		return "booked"
	case AlreadyBooked:
		return "already_booked"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// BookSlot moves (providerID, date, entryID) from free to booked in one
// conditional write. When the write does not apply, a follow-up read tells a
// missing entry from a taken one; since status never returns to free, an
// entry seen after a failed write can only be booked. The error is reserved
// for storage faults.
func (s *DefaultBookingService) BookSlot(ctx context.Context, providerID, date, entryID string) (Outcome, error) {
	applied, err := s.Slots.ConditionalBook(ctx, providerID, date, entryID)
	if err != nil {
		return 0, err
	}
	if applied {
		return Booked, nil
	}

	entry, err := s.Slots.FindEntry(ctx, providerID, date, entryID)
	if err != nil {
		return 0, err
	}
	if entry == nil {
		return NotFound, nil
	}
	return AlreadyBooked, nil
}

// Book books an entry for userID and records the booking. Entries that have
// already started are not bookable, matching ListBookableSlots. The record is
// written only after the transition applied.
func (s *DefaultBookingService) Book(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error) {
	if userID == "" || input.ProviderID == "" || input.EntryID == "" {
		return nil, utils.ValidationError(CodeInvalidInput, "provider, date and entry are required")
	}
	if _, err := time.ParseInLocation(models.DateLayout, input.Date, s.Location); err != nil {
		return nil, utils.ValidationError(CodeInvalidDate, "date must be formatted YYYY-MM-DD")
	}
	if _, err := s.visibleProvider(ctx, input.ProviderID); err != nil {
		return nil, err
	}

	entry, err := s.Slots.FindEntry(ctx, input.ProviderID, input.Date, input.EntryID)
	if err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not load slot", err)
	}
	if entry == nil || entry.From.Before(s.Now()) {
		return nil, utils.NotFoundError(CodeSlotNotFound, "slot not found")
	}

	outcome, err := s.BookSlot(ctx, input.ProviderID, input.Date, input.EntryID)
	if err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not book slot", err)
	}
	switch outcome {
	case AlreadyBooked:
		return nil, utils.ConflictError(CodeSlotAlreadyBooked, "this slot has already been booked")
	case NotFound:
		return nil, utils.NotFoundError(CodeSlotNotFound, "slot not found")
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		ProviderID: input.ProviderID,
		Date:       input.Date,
		EntryID:    input.EntryID,
		From:       entry.From,
		To:         entry.To,
		CreatedAt:  s.Now().UTC(),
	}

	if err := s.Slots.CreateBookingRecord(ctx, booking); err != nil {
		// The entry stays booked; there is no compensating rollback.
		s.Logger.Error("Book: slot booked but record not written",
			zap.String("providerID", input.ProviderID),
			zap.String("date", input.Date),
			zap.String("entryID", input.EntryID),
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, utils.DependencyError(CodeStorageFailure, "slot booked but the booking could not be recorded", err)
	}

	s.scheduleReminder(ctx, booking)
	s.Logger.Info("Book: slot booked", zap.String("bookingID", booking.ID), zap.String("entryID", booking.EntryID))
	return booking, nil
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, booking *models.Booking) {
	if s.Reminders == nil || booking.From.IsZero() {
		return
	}
	fireAt := booking.From.Add(-s.ReminderLead)
	if fireAt.Before(s.Now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Date:      booking.Date,
		From:      booking.From.In(s.Location).Format("15:04"),
		To:        booking.To.In(s.Location).Format("15:04"),
	}
	if err := s.Reminders.ScheduleReminder(ctx, payload, fireAt); err != nil {
		s.Logger.Warn("Book: failed to schedule reminder", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
