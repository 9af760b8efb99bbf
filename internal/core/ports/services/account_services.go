package services

import (
	"context"

	"github.com/officebooks/officeledger/internal/core/domain"
	"github.com/officebooks/officeledger/internal/dto"
)

// AccountService defines operations on the chart of accounts.
type AccountService interface {
	// CreateAccount adds an account to the chart, resolving its role
	// from the name.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns the full chart of accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount edits an account's mutable fields.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount soft-deletes an account.
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}
