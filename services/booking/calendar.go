package booking

import (
	"context"
	"sort"
	"time"

	"bookwise/models"
	"bookwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublishSlots appends free entries to the provider's day. Each range must
// start before it ends, fall within that calendar day, lie in the future and
// not overlap any entry already on the day or in the same request.
func (s *DefaultBookingService) PublishSlots(ctx context.Context, providerID string, req models.PublishSlotsRequest) ([]models.ScheduleEntry, error) {
	if providerID == "" || len(req.Entries) == 0 {
		return nil, utils.ValidationError(CodeInvalidInput, "at least one time range is required")
	}
	dayStart, err := time.ParseInLocation(models.DateLayout, req.Date, s.Location)
	if err != nil {
		return nil, utils.ValidationError(CodeInvalidDate, "date must be formatted YYYY-MM-DD")
	}
	dayEnd := dayStart.AddDate(0, 0, 1)
	now := s.Now()

	ranges := make([]models.TimeRange, len(req.Entries))
	copy(ranges, req.Entries)
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].From.Before(ranges[j].From) })

	for i, r := range ranges {
		if !r.From.Before(r.To) {
			return nil, utils.ValidationError(CodeInvalidRange, "each range must start before it ends")
		}
		if r.From.Before(dayStart) || r.To.After(dayEnd) {
			return nil, utils.ValidationError(CodeInvalidRange, "ranges must fall within "+req.Date)
		}
		if r.From.Before(now) {
			return nil, utils.ValidationError(CodePastRange, "ranges must start in the future")
		}
		if i > 0 && r.From.Before(ranges[i-1].To) {
			return nil, utils.ValidationError(CodeOverlappingRange, "ranges must not overlap")
		}
	}

	existing, err := s.Slots.GetDay(ctx, providerID, req.Date)
	if err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not load the day", err)
	}
	if existing != nil {
		for _, r := range ranges {
			for _, e := range existing.Schedule {
				if r.From.Before(e.To) && e.From.Before(r.To) {
					return nil, utils.ValidationError(CodeOverlappingRange, "a range overlaps an existing slot")
				}
			}
		}
	}

	entries := make([]models.ScheduleEntry, 0, len(ranges))
	for _, r := range ranges {
		entries = append(entries, models.ScheduleEntry{
			ID:     uuid.New().String(),
			From:   r.From.UTC(),
			To:     r.To.UTC(),
			Status: models.EntryFree,
		})
	}
	if err := s.Slots.AppendEntries(ctx, providerID, req.Date, entries); err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not publish slots", err)
	}

	s.Logger.Info("PublishSlots: entries published",
		zap.String("providerID", providerID),
		zap.String("date", req.Date),
		zap.Int("count", len(entries)),
	)
	return entries, nil
}

// ProviderCalendar lists every day the provider has published, booked entries included.
func (s *DefaultBookingService) ProviderCalendar(ctx context.Context, providerID string) ([]models.SlotDay, error) {
	days, err := s.Slots.ListDays(ctx, providerID, "")
	if err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not load calendar", err)
	}
	return days, nil
}
