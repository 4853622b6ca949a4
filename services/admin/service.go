package admin

import (
	"context"
	"fmt"

	accountRepo "bookwise/database/repository/account"
	"bookwise/models"
	"bookwise/utils"

	"go.uber.org/zap"
)

const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeAccountNotFound = "ACCOUNT_NOT_FOUND"
	CodeStorageFailure  = "STORAGE_UNAVAILABLE"
)

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Accounts accountRepo.AccountRepository
	Logger   *zap.Logger
}

func NewDefaultAdminService(accounts accountRepo.AccountRepository, logger *zap.Logger) (*DefaultAdminService, error) {
	if accounts == nil {
		return nil, fmt.Errorf("admin service initialization error: account repository is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAdminService{Accounts: accounts, Logger: logger}, nil
}

// SetProviderApproval vets or un-vets a provider. Unapproved providers are
// hidden from users and cannot be booked.
func (s *DefaultAdminService) SetProviderApproval(ctx context.Context, providerID string, approved bool) error {
	if providerID == "" {
		return utils.ValidationError(CodeInvalidInput, "provider id is required")
	}
	found, err := s.Accounts.SetApproval(ctx, providerID, approved)
	if err != nil {
		return utils.DependencyError(CodeStorageFailure, "could not update provider", err)
	}
	if !found {
		return utils.NotFoundError(CodeAccountNotFound, "provider not found")
	}
	s.Logger.Info("SetProviderApproval: provider updated", zap.String("providerID", providerID), zap.Bool("approved", approved))
	return nil
}

// SetBlocked blocks or unblocks any account. Blocked accounts cannot log in
// and their existing sessions are refused.
func (s *DefaultAdminService) SetBlocked(ctx context.Context, role models.Role, id string, blocked bool) error {
	if !role.Valid() || id == "" {
		return utils.ValidationError(CodeInvalidInput, "role must be user or provider and id is required")
	}
	found, err := s.Accounts.SetBlocked(ctx, role, id, blocked)
	if err != nil {
		return utils.DependencyError(CodeStorageFailure, "could not update account", err)
	}
	if !found {
		return utils.NotFoundError(CodeAccountNotFound, "account not found")
	}
	s.Logger.Info("SetBlocked: account updated", zap.String("role", string(role)), zap.String("id", id), zap.Bool("blocked", blocked))
	return nil
}
