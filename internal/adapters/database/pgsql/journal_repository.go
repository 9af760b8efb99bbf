package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/officebooks/officeledger/internal/apperrors"
	"github.com/officebooks/officeledger/internal/core/domain"
	portsrepo "github.com/officebooks/officeledger/internal/core/ports/repositories"
)

type journalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a new repository for journal entry
// data.
func NewJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &journalRepository{pool: pool}
}

var _ portsrepo.JournalRepository = (*journalRepository)(nil)

// SaveJournalEntry appends a new journal entry.
func (r *journalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (entry_id, entry_date, description, debit_account_id, credit_account_id, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.EntryID,
		entry.EntryDate,
		entry.Description,
		entry.DebitAccountID,
		entry.CreditAccountID,
		entry.Amount,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry %s: %w", entry.EntryID, err)
	}
	return nil
}

const entryColumns = `entry_id, entry_date, description, debit_account_id, credit_account_id, amount, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.EntryDate,
		&entry.Description,
		&entry.DebitAccountID,
		&entry.CreditAccountID,
		&entry.Amount,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindJournalEntryByID retrieves one journal entry.
func (r *journalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM journal_entries WHERE entry_id = $1;`, entryColumns)

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}
	return entry, nil
}

// ListJournalEntries returns entries ordered by entry date. Nil bounds
// leave that side of the range open.
func (r *journalRepository) ListJournalEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM journal_entries`, entryColumns)
	args := make([]any, 0, 2)

	switch {
	case from != nil && to != nil:
		query += ` WHERE entry_date >= $1 AND entry_date <= $2`
		args = append(args, *from, *to)
	case from != nil:
		query += ` WHERE entry_date >= $1`
		args = append(args, *from)
	case to != nil:
		query += ` WHERE entry_date <= $1`
		args = append(args, *to)
	}
	query += ` ORDER BY entry_date, created_at;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading journal entry rows: %w", err)
	}
	return entries, nil
}
