package verification

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"bookwise/models"
	"bookwise/utils"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 8

func validateIdentity(identity models.PendingIdentity) error {
	if !identity.Role.Valid() {
		return utils.ValidationError(CodeInvalidInput, "role must be user or provider")
	}
	if strings.TrimSpace(identity.Name) == "" {
		return utils.ValidationError(CodeInvalidInput, "name is required")
	}
	if !emailPattern.MatchString(identity.Email) {
		return utils.ValidationError(CodeInvalidInput, "a valid email is required")
	}
	if len(identity.Password) < minPasswordLength {
		return utils.ValidationError(CodeInvalidInput, "password must be at least 8 characters long")
	}
	return nil
}

// RequestVerification rejects taken emails, then mails a fresh OTP and returns
// the token embedding it. Nothing is persisted.
func (s *DefaultVerificationService) RequestVerification(ctx context.Context, identity models.PendingIdentity) (string, error) {
	identity.Name = strings.TrimSpace(identity.Name)
	identity.Email = models.NormalizeEmail(identity.Email)
	if err := validateIdentity(identity); err != nil {
		return "", err
	}

	existing, err := s.Accounts.FindByEmail(ctx, identity.Role, identity.Email)
	if err != nil {
		return "", utils.DependencyError(CodeStorageFailure, "could not check existing accounts", err)
	}
	if existing != nil {
		return "", utils.ConflictError(CodeAccountExists, "an account with this email already exists")
	}

	code, err := s.OTP.Generate()
	if err != nil {
		return "", utils.DependencyError(CodeCredentialFailure, "could not generate a verification code", err)
	}
	token, err := s.Codec.Encode(utils.TokenPayload{
		Kind:    utils.TokenOTP,
		Pending: &identity,
		OTP:     code,
	}, s.OTPTTL)
	if err != nil {
		return "", utils.DependencyError(CodeCredentialFailure, "could not issue a verification token", err)
	}

	if err := s.Notifier.Send(ctx, identity.Name, identity.Email, code); err != nil {
		s.Logger.Error("RequestVerification: otp delivery failed",
			zap.String("email", identity.Email),
			zap.String("role", string(identity.Role)),
			zap.Error(err),
		)
		return "", utils.DependencyError(CodeDeliveryFailed, "could not deliver the verification code", err).
			WithStatus(http.StatusServiceUnavailable)
	}

	s.Logger.Info("RequestVerification: otp issued", zap.String("email", identity.Email), zap.String("role", string(identity.Role)))
	return token, nil
}

// ResendVerification recovers the pending identity from a prior token and
// reruns RequestVerification: same identity, new OTP, new token. An expired
// prior token cannot be renewed; the client must register again.
func (s *DefaultVerificationService) ResendVerification(ctx context.Context, role models.Role, priorToken string) (string, error) {
	payload, err := s.Codec.Decode(priorToken)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return "", utils.AuthError(CodeInvalidToken, "verification token expired, please register again")
		}
		return "", utils.AuthError(CodeInvalidToken, "invalid verification token")
	}
	if payload.Kind != utils.TokenOTP || payload.Pending.Role != role {
		return "", utils.AuthError(CodeInvalidToken, "invalid verification token")
	}
	return s.RequestVerification(ctx, *payload.Pending)
}
