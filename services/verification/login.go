package verification

import (
	"context"
	"net/http"

	"bookwise/models"
	"bookwise/utils"

	"go.uber.org/zap"
)

func blockedError() error {
	return utils.AuthError(CodeAccountBlocked, "this account has been blocked").WithStatus(http.StatusForbidden)
}

// Login checks a password and issues a session token. Blocked accounts never
// receive one.
func (s *DefaultVerificationService) Login(ctx context.Context, role models.Role, email, password string) (*models.AuthResponse, error) {
	if !role.Valid() || email == "" || password == "" {
		return nil, utils.ValidationError(CodeInvalidInput, "email and password are required")
	}

	account, err := s.Accounts.FindByEmail(ctx, role, email)
	if err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not load account", err)
	}
	if account == nil {
		return nil, utils.AuthError(CodeAccountNotFound, "no account found for this email")
	}

	ok, err := s.Hasher.Compare(password, account.PasswordHash)
	if err != nil {
		return nil, utils.DependencyError(CodeCredentialFailure, "could not verify password", err)
	}
	if !ok {
		return nil, utils.AuthError(CodePasswordMismatch, "incorrect password")
	}
	if account.IsBlocked {
		s.Logger.Info("Login: blocked account refused", zap.String("id", account.ID))
		return nil, blockedError()
	}

	return s.issueSession(account)
}

// Authenticate resolves a session token to its principal. Accounts that were
// blocked or removed after the token was issued are refused.
func (s *DefaultVerificationService) Authenticate(ctx context.Context, sessionToken string) (*Principal, error) {
	payload, err := s.Codec.Decode(sessionToken)
	if err != nil || payload.Kind != utils.TokenSession {
		return nil, utils.AuthError(CodeInvalidToken, "invalid or expired session token")
	}

	account, err := s.Accounts.FindByID(ctx, payload.Role, payload.PrincipalID)
	if err != nil {
		return nil, utils.DependencyError(CodeStorageFailure, "could not load account", err)
	}
	if account == nil {
		return nil, utils.AuthError(CodeInvalidToken, "account no longer exists")
	}
	if account.IsBlocked {
		return nil, blockedError()
	}
	return &Principal{ID: account.ID, Role: account.Role}, nil
}
