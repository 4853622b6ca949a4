package booking

import (
	"context"
	"sort"
	"time"

	"bookwise/models"
	"bookwise/utils"
)

// BookableSlots flattens days into the entries still open as of asOf. An
// entry is kept when it is free and either its day is after today or it is
// today and has not started yet. "Today" is asOf's date in loc. Output is
// ordered by date, then start time.
func BookableSlots(days []models.SlotDay, asOf time.Time, loc *time.Location) []models.BookableSlot {
	today := asOf.In(loc).Format(models.DateLayout)

	out := []models.BookableSlot{}
	for _, day := range days {
		if day.Date < today {
			continue
		}
		for _, entry := range day.Schedule {
			if entry.Status != models.EntryFree {
				continue
			}
			if day.Date == today && entry.From.Before(asOf) {
				continue
			}
			out = append(out, models.BookableSlot{Date: day.Date, Entry: entry})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Entry.From.Before(out[j].Entry.From)
	})
	return out
}

// ListBookableSlots loads the provider's days from today on and plans them.
func (s *DefaultBookingService) ListBookableSlots(ctx context.Context, providerID string, asOf time.Time) ([]models.BookableSlot, error) {
	if providerID == "" {
		return nil, utils.ValidationError(CodeInvalidInput, "provider id is required")
	}
	today := asOf.In(s.Location).Format(models.DateLayout)
	days, err := s.Slots.ListDays(ctx, providerID, today)
	if err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not load slots", err)
	}
	return BookableSlots(days, asOf, s.Location), nil
}

// ProviderSlotDetails returns a visible provider's public profile with its open slots.
func (s *DefaultBookingService) ProviderSlotDetails(ctx context.Context, providerID string, asOf time.Time) (*models.ProviderSlotDetails, error) {
	provider, err := s.visibleProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	slots, err := s.ListBookableSlots(ctx, providerID, asOf)
	if err != nil {
		return nil, err
	}
	return &models.ProviderSlotDetails{Provider: provider.Public(), Slots: slots}, nil
}

// visibleProvider loads a provider users may see and book.
func (s *DefaultBookingService) visibleProvider(ctx context.Context, providerID string) (*models.Account, error) {
	provider, err := s.Accounts.FindByID(ctx, models.RoleProvider, providerID)
	if err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not load provider", err)
	}
	if provider == nil || !provider.IsApproved || provider.IsBlocked {
		return nil, utils.NotFoundError(CodeProviderNotFound, "provider not found")
	}
	return provider, nil
}
