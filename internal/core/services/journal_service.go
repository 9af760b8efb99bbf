package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/officebooks/officeledger/internal/core/domain"
	portsrepo "github.com/officebooks/officeledger/internal/core/ports/repositories"
	portssvc "github.com/officebooks/officeledger/internal/core/ports/services"
	"github.com/officebooks/officeledger/internal/dto"
)

var (
	ErrSameAccountLegs  = errors.New("debit and credit legs must reference different accounts")
	ErrNegativeAmount   = errors.New("entry amount must not be negative")
	ErrAccountNotFound  = errors.New("account not found")
	ErrAccountInactive  = errors.New("account is inactive")
	ErrInvalidEntryDate = errors.New("entry date is invalid")
)

// journalService validates and appends journal entries. The same
// integrity rules the aggregator enforces at read time are applied
// here at write time so corrupt entries never reach the books through
// this collaborator.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.JournalService {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalService = (*journalService)(nil)

// CreateEntry validates and appends a journal entry.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: got %s", ErrNegativeAmount, req.Amount.String())
	}
	if req.DebitAccountID == req.CreditAccountID {
		return nil, fmt.Errorf("%w: account %s", ErrSameAccountLegs, req.DebitAccountID)
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntryDate, req.EntryDate)
	}

	for _, accountID := range []string{req.DebitAccountID, req.CreditAccountID} {
		account, err := s.accountRepo.FindAccountByID(ctx, accountID)
		if err != nil {
			s.LogDebug(ctx, "Referenced account not found", slog.String("account_id", accountID))
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrAccountInactive, accountID)
		}
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		EntryDate:       entryDate,
		Description:     req.Description,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Amount:          req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry")
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("debit_account", entry.DebitAccountID),
		slog.String("credit_account", entry.CreditAccountID),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// GetEntryByID retrieves a single journal entry.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		s.LogDebug(ctx, "Journal entry lookup failed", slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

// ListEntries returns journal entries ordered by date, optionally
// bounded on either side.
func (s *journalService) ListEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListJournalEntries(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}
