package verification

import (
	"fmt"
	"time"

	accountRepo "bookwise/database/repository/account"
	"bookwise/services/notification"
	"bookwise/utils"

	"go.uber.org/zap"
)

// DefaultVerificationService implements VerificationService. It keeps no
// state of its own: a pending registration lives only inside its token.
type DefaultVerificationService struct {
	Accounts accountRepo.AccountRepository
	Codec    *utils.TokenCodec
	OTP      *utils.OTPGenerator
	Hasher   utils.PasswordHasher
	Notifier notification.Notifier
	Limiter  AttemptLimiter
	Logger   *zap.Logger

	OTPTTL     time.Duration
	SessionTTL time.Duration
}

// Validate reports missing collaborators.
func (s *DefaultVerificationService) Validate() error {
	if s.Accounts == nil || s.Codec == nil || s.OTP == nil || s.Hasher == nil || s.Notifier == nil {
		return fmt.Errorf("verification service initialization error: missing collaborator")
	}
	if s.OTPTTL <= 0 || s.SessionTTL <= 0 {
		return fmt.Errorf("verification service initialization error: ttl must be positive")
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	return nil
}
