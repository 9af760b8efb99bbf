package repositories

import (
	"context"

	"github.com/officebooks/officeledger/internal/core/domain"
)

// AccountRepository defines persistence operations for the chart of
// accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID retrieves an account by its ID. Returns
	// apperrors.ErrNotFound when no such account exists.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns every account in the chart, active and
	// inactive, in name order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount persists changes to an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error
}
