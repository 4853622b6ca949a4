// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"bookwise/models"
)

// SlotRepository defines methods for calendar and booking record persistence.
type SlotRepository interface {
	// ListDays returns a provider's days with date >= fromDate, sorted by date.
	// An empty fromDate lists every day.
	ListDays(ctx context.Context, providerID, fromDate string) ([]models.SlotDay, error)
	// GetDay returns nil, nil when the provider has nothing published for date.
	GetDay(ctx context.Context, providerID, date string) (*models.SlotDay, error)
	// ConditionalBook atomically flips entryID from free to booked. It reports
	// false when no free entry with that id exists on that day.
	ConditionalBook(ctx context.Context, providerID, date, entryID string) (bool, error)
	// FindEntry returns nil, nil when the entry does not exist.
	FindEntry(ctx context.Context, providerID, date, entryID string) (*models.ScheduleEntry, error)
	// AppendEntries adds entries to the provider's day, creating the day if needed.
	AppendEntries(ctx context.Context, providerID, date string, entries []models.ScheduleEntry) error

	CreateBookingRecord(ctx context.Context, booking *models.Booking) error
	// ListBookingsByUser returns one page of bookings, newest first, and the total count.
	ListBookingsByUser(ctx context.Context, userID string, skip, limit int64) ([]models.Booking, int64, error)
}
