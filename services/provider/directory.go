package provider

import (
	"context"
	"fmt"

	accountRepo "bookwise/database/repository/account"
	"bookwise/models"
	"bookwise/utils"
)

// DirectoryService lists providers users can book.
type DirectoryService interface {
	ListApprovedProviders(ctx context.Context) ([]models.PublicProvider, error)
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Accounts accountRepo.AccountRepository
}

func NewDefaultDirectoryService(accounts accountRepo.AccountRepository) (*DefaultDirectoryService, error) {
	if accounts == nil {
		return nil, fmt.Errorf("directory service initialization error: account repository is nil")
	}
	return &DefaultDirectoryService{Accounts: accounts}, nil
}

// ListApprovedProviders returns approved, unblocked providers, newest first.
func (s *DefaultDirectoryService) ListApprovedProviders(ctx context.Context) ([]models.PublicProvider, error) {
	accounts, err := s.Accounts.ListApprovedProviders(ctx)
	if err != nil {
		return nil, utils.DependencyError("STORAGE_UNAVAILABLE", "could not load providers", err)
	}
	out := make([]models.PublicProvider, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Public())
	}
	return out, nil
}
