package admin

import (
	"context"

	"bookwise/models"
)

// AdminService moderates accounts: provider vetting and blocking.
type AdminService interface {
	SetProviderApproval(ctx context.Context, providerID string, approved bool) error
	SetBlocked(ctx context.Context, role models.Role, id string, blocked bool) error
}
