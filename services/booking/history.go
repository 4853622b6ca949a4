package booking

import (
	"context"
	"math"

	"bookwise/models"
	"bookwise/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListUserBookings returns one page of the user's bookings, newest first.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string, page, limit int) (*models.BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	if int64(page-1) > math.MaxInt64/int64(limit) {
		return nil, utils.ValidationError(CodeInvalidInput, "page is out of range")
	}

	skip := int64(page-1) * int64(limit)
	bookings, total, err := s.Slots.ListBookingsByUser(ctx, userID, skip, int64(limit))
	if err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not load bookings", err)
	}
	return &models.BookingPage{Bookings: bookings, Total: total, Page: page, Limit: limit}, nil
}
