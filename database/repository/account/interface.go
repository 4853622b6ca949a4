// File: database/repository/account/interface.go
package accountRepo

import (
	"context"
	"errors"

	"bookwise/models"
)

// ErrDuplicateAccount is returned by Create when (role, email) is taken.
var ErrDuplicateAccount = errors.New("account with this email already exists")

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// FindByEmail returns nil, nil when no account matches.
	FindByEmail(ctx context.Context, role models.Role, email string) (*models.Account, error)
	// FindByID returns nil, nil when no account matches.
	FindByID(ctx context.Context, role models.Role, id string) (*models.Account, error)
	// Create inserts a new account. Email uniqueness per role is enforced by storage.
	Create(ctx context.Context, account *models.Account) error
	// ListApprovedProviders returns approved, unblocked providers, newest first.
	ListApprovedProviders(ctx context.Context) ([]models.Account, error)
	// SetApproval flips a provider's vetting flag. Returns false when no provider matched.
	SetApproval(ctx context.Context, providerID string, approved bool) (bool, error)
	// SetBlocked flips an account's blocked flag. Returns false when no account matched.
	SetBlocked(ctx context.Context, role models.Role, id string, blocked bool) (bool, error)
}
