package verification

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	accountRepo "bookwise/database/repository/account"
	"bookwise/models"
	"bookwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmVerification checks the OTP against the one sealed in token and, on
// a match, creates the account and issues a session token. A second
// confirmation of the same token fails with ACCOUNT_EXISTS. A token issued
// for another role is rejected as invalid.
func (s *DefaultVerificationService) ConfirmVerification(ctx context.Context, role models.Role, token, otp string) (*models.AuthResponse, error) {
	payload, err := s.Codec.Decode(token)
	if err != nil || payload.Kind != utils.TokenOTP || payload.Pending.Role != role {
		return nil, utils.AuthError(CodeInvalidToken, "invalid or expired verification token")
	}

	if s.Limiter != nil {
		blocked, err := s.Limiter.Exceeded(ctx, token)
		if err != nil {
			s.Logger.Warn("ConfirmVerification: attempt limiter unavailable", zap.Error(err))
		} else if blocked {
			return nil, utils.AuthError(CodeTooManyAttempts, "too many incorrect codes, request a new one").
				WithStatus(http.StatusTooManyRequests)
		}
	}

	if subtle.ConstantTimeCompare([]byte(otp), []byte(payload.OTP)) != 1 {
		if s.Limiter != nil {
			if err := s.Limiter.RecordFailure(ctx, token, s.OTPTTL); err != nil {
				s.Logger.Warn("ConfirmVerification: failed to record otp attempt", zap.Error(err))
			}
		}
		return nil, utils.AuthError(CodeOTPMismatch, "incorrect verification code")
	}

	pending := payload.Pending
	digest, err := s.Hasher.Hash(pending.Password)
	if err != nil {
		return nil, utils.DependencyError(CodeCredentialFailure, "could not secure password", err)
	}

	account := &models.Account{
		ID:           uuid.New().String(),
		Role:         pending.Role,
		Name:         pending.Name,
		Email:        pending.Email,
		PasswordHash: digest,
	}
	if err := s.Accounts.Create(ctx, account); err != nil {
		if errors.Is(err, accountRepo.ErrDuplicateAccount) {
			return nil, utils.ConflictError(CodeAccountExists, "an account with this email already exists")
		}
		return nil, utils.DependencyError(CodeStorageFailure, "could not create account", err)
	}

	session, err := s.issueSession(account)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("ConfirmVerification: account created", zap.String("id", account.ID), zap.String("role", string(account.Role)))
	return session, nil
}

func (s *DefaultVerificationService) issueSession(account *models.Account) (*models.AuthResponse, error) {
	token, err := s.Codec.Encode(utils.TokenPayload{
		Kind:        utils.TokenSession,
		PrincipalID: account.ID,
		Role:        account.Role,
	}, s.SessionTTL)
	if err != nil {
		return nil, utils.DependencyError(CodeCredentialFailure, "could not issue session token", err)
	}
	return &models.AuthResponse{ID: account.ID, Token: token, Role: account.Role}, nil
}
