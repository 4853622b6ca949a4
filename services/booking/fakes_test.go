package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	slotRepo "bookwise/database/repository/slot"
	"bookwise/models"
)

// memorySlotRepo stores days in memory. Each method holds the lock for its
// whole body, which gives ConditionalBook the same single-document atomicity
// MongoDB provides.
type memorySlotRepo struct {
	mu       sync.Mutex
	days     map[string]*models.SlotDay
	bookings []models.Booking
	bookErr  error
}

var _ slotRepo.SlotRepository = (*memorySlotRepo)(nil)

func newMemorySlotRepo(days ...models.SlotDay) *memorySlotRepo {
	r := &memorySlotRepo{days: map[string]*models.SlotDay{}}
	for i := range days {
		d := days[i]
		r.days[d.ProviderID+"|"+d.Date] = &d
	}
	return r
}

func (r *memorySlotRepo) ListDays(ctx context.Context, providerID, fromDate string) ([]models.SlotDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.SlotDay{}
	for _, d := range r.days {
		if d.ProviderID == providerID && d.Date >= fromDate {
			cp := *d
			cp.Schedule = append([]models.ScheduleEntry(nil), d.Schedule...)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *memorySlotRepo) GetDay(ctx context.Context, providerID, date string) (*models.SlotDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.days[providerID+"|"+date]
	if !ok {
		return nil, nil
	}
	cp := *d
	cp.Schedule = append([]models.ScheduleEntry(nil), d.Schedule...)
	return &cp, nil
}

func (r *memorySlotRepo) ConditionalBook(ctx context.Context, providerID, date, entryID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.days[providerID+"|"+date]
	if !ok {
		return false, nil
	}
	for i := range d.Schedule {
		if d.Schedule[i].ID == entryID && d.Schedule[i].Status == models.EntryFree {
			d.Schedule[i].Status = models.EntryBooked
			return true, nil
		}
	}
	return false, nil
}

func (r *memorySlotRepo) FindEntry(ctx context.Context, providerID, date, entryID string) (*models.ScheduleEntry, error) {
	day, _ := r.GetDay(ctx, providerID, date)
	if day == nil {
		return nil, nil
	}
	for _, e := range day.Schedule {
		if e.ID == entryID {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r *memorySlotRepo) AppendEntries(ctx context.Context, providerID, date string, entries []models.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := providerID + "|" + date
	d, ok := r.days[key]
	if !ok {
		d = &models.SlotDay{ProviderID: providerID, Date: date, CreatedAt: time.Now()}
		r.days[key] = d
	}
	d.Schedule = append(d.Schedule, entries...)
	return nil
}

func (r *memorySlotRepo) CreateBookingRecord(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bookErr != nil {
		return r.bookErr
	}
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *memorySlotRepo) ListBookingsByUser(ctx context.Context, userID string, skip, limit int64) ([]models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var mine []models.Booking
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if r.bookings[i].UserID == userID {
			mine = append(mine, r.bookings[i])
		}
	}
	total := int64(len(mine))
	if skip >= total {
		return []models.Booking{}, total, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return mine[skip:end], total, nil
}

// staticAccounts serves provider lookups from a fixed map.
type staticAccounts struct {
	byID map[string]*models.Account
}

func (a *staticAccounts) FindByEmail(ctx context.Context, role models.Role, email string) (*models.Account, error) {
	return nil, nil
}

func (a *staticAccounts) FindByID(ctx context.Context, role models.Role, id string) (*models.Account, error) {
	acc, ok := a.byID[id]
	if !ok || acc.Role != role {
		return nil, nil
	}
	return acc, nil
}

func (a *staticAccounts) Create(ctx context.Context, account *models.Account) error { return nil }

func (a *staticAccounts) ListApprovedProviders(ctx context.Context) ([]models.Account, error) {
	return nil, nil
}

func (a *staticAccounts) SetApproval(ctx context.Context, providerID string, approved bool) (bool, error) {
	return false, nil
}

func (a *staticAccounts) SetBlocked(ctx context.Context, role models.Role, id string, blocked bool) (bool, error) {
	return false, nil
}

type recordingReminders struct {
	mu     sync.Mutex
	fireAt []time.Time
}

func (r *recordingReminders) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fireAt = append(r.fireAt, fireAt)
	return nil
}
