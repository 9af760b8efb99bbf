package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single balanced journal entry in the
// simplified two-leg form: one debit leg and one credit leg moving the
// same amount. The calculation engine treats entries as read-only,
// append-only input.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`   // Primary Key (e.g., UUID)
	EntryDate       time.Time       `json:"entryDate"` // Date the event occurred
	Description     string          `json:"description"`
	DebitAccountID  string          `json:"debitAccountID"`  // FK -> Account.accountID
	CreditAccountID string          `json:"creditAccountID"` // FK -> Account.accountID, must differ
	Amount          decimal.Decimal `json:"amount"`          // Non-negative; applied to both legs
	AuditFields
}
