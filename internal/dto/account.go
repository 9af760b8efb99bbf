package dto

import (
	"github.com/officebooks/officeledger/internal/core/domain"
)

// CreateAccountRequest is the payload for creating a chart-of-accounts
// entry.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	AccountType string `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	// NormalBalance optionally overrides the type-derived expected side.
	NormalBalance string `json:"normalBalance" binding:"omitempty,oneof=DEBIT CREDIT"`
	Description   string `json:"description" binding:"max=255"`
}

// UpdateAccountRequest is the payload for editing an account. Nil
// fields are left unchanged.
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	IsActive    *bool   `json:"isActive"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID     string `json:"accountID"`
	Name          string `json:"name"`
	AccountType   string `json:"accountType"`
	Role          string `json:"role,omitempty"`
	NormalBalance string `json:"normalBalance,omitempty"`
	Description   string `json:"description"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"createdAt"`
	LastUpdatedAt string `json:"lastUpdatedAt"`
}

// ListAccountsResponse wraps the full chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain account to its API shape.
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		AccountType:   string(acc.AccountType),
		Role:          string(acc.Role),
		NormalBalance: string(acc.NormalBalance),
		Description:   acc.Description,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		LastUpdatedAt: acc.LastUpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListAccountsResponse converts a slice of domain accounts.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	resp := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i, acc := range accounts {
		resp.Accounts[i] = ToAccountResponse(acc)
	}
	return resp
}
