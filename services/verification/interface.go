package verification

import (
	"context"

	"bookwise/models"
)

// Principal is an authenticated account as seen by request handlers.
type Principal struct {
	ID   string
	Role models.Role
}

// VerificationService covers OTP-gated registration and password login.
type VerificationService interface {
	// RequestVerification mails an OTP and returns the token that carries it.
	RequestVerification(ctx context.Context, identity models.PendingIdentity) (string, error)
	// ConfirmVerification materializes the account once the OTP matches. The
	// token must have been issued for role.
	ConfirmVerification(ctx context.Context, role models.Role, token, otp string) (*models.AuthResponse, error)
	// ResendVerification issues a fresh OTP for the identity in a prior, unexpired token.
	ResendVerification(ctx context.Context, role models.Role, priorToken string) (string, error)
	Login(ctx context.Context, role models.Role, email, password string) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, sessionToken string) (*Principal, error)
}
