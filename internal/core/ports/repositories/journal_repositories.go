package repositories

import (
	"context"
	"time"

	"github.com/officebooks/officeledger/internal/core/domain"
)

// JournalRepository defines persistence operations for journal
// entries. Entries are append-only from the engine's perspective.
type JournalRepository interface {
	// SaveJournalEntry appends a new journal entry.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// FindJournalEntryByID retrieves one entry. Returns
	// apperrors.ErrNotFound when no such entry exists.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries returns entries ordered by entry date. A nil
	// bound leaves that side of the range open.
	ListJournalEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error)
}
