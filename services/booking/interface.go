package booking

import (
	"context"
	"time"

	"bookwise/models"
)

// BookingService covers slot discovery, the booking transition and provider calendars.
type BookingService interface {
	ListBookableSlots(ctx context.Context, providerID string, asOf time.Time) ([]models.BookableSlot, error)
	ProviderSlotDetails(ctx context.Context, providerID string, asOf time.Time) (*models.ProviderSlotDetails, error)
	BookSlot(ctx context.Context, providerID, date, entryID string) (Outcome, error)
	Book(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error)
	PublishSlots(ctx context.Context, providerID string, req models.PublishSlotsRequest) ([]models.ScheduleEntry, error)
	ProviderCalendar(ctx context.Context, providerID string) ([]models.SlotDay, error)
	ListUserBookings(ctx context.Context, userID string, page, limit int) (*models.BookingPage, error)
}
