package dto

import (
	"github.com/shopspring/decimal"

	"github.com/officebooks/officeledger/internal/core/domain"
)

// CreateJournalEntryRequest is the payload for appending a journal
// entry: one debit leg and one credit leg moving the same amount.
type CreateJournalEntryRequest struct {
	EntryDate       string          `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Description     string          `json:"description" binding:"max=255"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
}

// JournalEntryResponse is the API representation of a journal entry.
type JournalEntryResponse struct {
	EntryID         string          `json:"entryID"`
	EntryDate       string          `json:"entryDate"`
	Description     string          `json:"description"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       string          `json:"createdAt"`
}

// ListJournalEntriesResponse wraps a list of journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
	Count   int                    `json:"count"`
}

// ToJournalEntryResponse converts a domain journal entry to its API
// shape.
func ToJournalEntryResponse(entry domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:         entry.EntryID,
		EntryDate:       entry.EntryDate.Format("2006-01-02"),
		Description:     entry.Description,
		DebitAccountID:  entry.DebitAccountID,
		CreditAccountID: entry.CreditAccountID,
		Amount:          entry.Amount,
		CreatedAt:       entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListJournalEntriesResponse converts a slice of domain entries.
func ToListJournalEntriesResponse(entries []domain.JournalEntry) ListJournalEntriesResponse {
	resp := ListJournalEntriesResponse{
		Entries: make([]JournalEntryResponse, len(entries)),
		Count:   len(entries),
	}
	for i, entry := range entries {
		resp.Entries[i] = ToJournalEntryResponse(entry)
	}
	return resp
}
