package booking

import (
	"fmt"
	"time"

	accountRepo "bookwise/database/repository/account"
	slotRepo "bookwise/database/repository/slot"
	"bookwise/services/notification"

	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService. It holds no locks: the
// only cross-request guarantee comes from the repository's conditional update.
type DefaultBookingService struct {
	Slots     slotRepo.SlotRepository
	Accounts  accountRepo.AccountRepository
	Reminders notification.ReminderScheduler
	Logger    *zap.Logger

	// Location is the zone calendar dates are cut in.
	Location     *time.Location
	ReminderLead time.Duration
	Now          func() time.Time
}

// Validate reports missing collaborators and fills optional ones.
func (s *DefaultBookingService) Validate() error {
	if s.Slots == nil || s.Accounts == nil {
		return fmt.Errorf("booking service initialization error: slot or account repository is nil")
	}
	if s.Location == nil {
		s.Location = time.UTC
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	return nil
}
