package services

import (
	"context"
	"time"

	"github.com/officebooks/officeledger/internal/core/domain"
	"github.com/officebooks/officeledger/internal/dto"
)

// JournalService defines operations on the journal: appending and
// reading balanced two-leg entries.
type JournalService interface {
	// CreateEntry validates and appends a journal entry.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// GetEntryByID retrieves a single journal entry.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns entries ordered by date, optionally bounded.
	ListEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error)
}
