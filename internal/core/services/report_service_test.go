package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/officebooks/officeledger/internal/apperrors"
	"github.com/officebooks/officeledger/internal/core/domain"
	"github.com/officebooks/officeledger/internal/core/services"
)

// Wednesday, mid-March, well clear of week and month edges.
var reportNow = time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return reportNow }

func reportAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: "cash", Name: "Cash", AccountType: domain.Asset, IsActive: true},
		{AccountID: "sales", Name: "Sales Revenue", AccountType: domain.Revenue, IsActive: true},
	}
}

func reportEntries() []domain.JournalEntry {
	return []domain.JournalEntry{
		{
			EntryID:         "e1",
			EntryDate:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			DebitAccountID:  "cash",
			CreditAccountID: "sales",
			Amount:          decimal.NewFromInt(1000),
		},
	}
}

func TestGenerateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("current month happy path", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		journalRepo := new(MockJournalRepository)
		svc := services.NewReportService(accountRepo, journalRepo, services.WithClock(fixedClock))

		accountRepo.On("ListAccounts", ctx).Return(reportAccounts(), nil).Once()
		journalRepo.On("ListJournalEntries", ctx, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
			Return(reportEntries(), nil).Once()

		bundle, err := svc.GenerateReport(ctx, domain.PeriodCurrentMonth, time.Time{}, time.Time{})
		require.NoError(t, err)

		assert.Equal(t, domain.PeriodCurrentMonth, bundle.Period.Type)
		assert.Equal(t, time.March, bundle.Period.Start.Month())
		assert.Equal(t, 1, bundle.TransactionCount)
		assert.True(t, bundle.Summary.IsBalanced)
		assert.True(t, bundle.Summary.AccountingEquationBalanced)
		assert.True(t, bundle.Summary.NetProfit.Equal(decimal.NewFromInt(1000)))
		accountRepo.AssertExpectations(t)
		journalRepo.AssertExpectations(t)
	})

	t.Run("repository window matches resolved period", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		journalRepo := new(MockJournalRepository)
		svc := services.NewReportService(accountRepo, journalRepo, services.WithClock(fixedClock))

		accountRepo.On("ListAccounts", ctx).Return(reportAccounts(), nil).Once()
		journalRepo.On("ListJournalEntries", ctx, mock.MatchedBy(func(from *time.Time) bool {
			return from != nil && from.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
		}), mock.MatchedBy(func(to *time.Time) bool {
			return to != nil && to.Equal(reportNow)
		})).Return([]domain.JournalEntry{}, nil).Once()

		_, err := svc.GenerateReport(ctx, domain.PeriodCurrentMonth, time.Time{}, time.Time{})
		require.NoError(t, err)
		journalRepo.AssertExpectations(t)
	})

	t.Run("invalid period specifier", func(t *testing.T) {
		svc := services.NewReportService(new(MockAccountRepository), new(MockJournalRepository),
			services.WithClock(fixedClock))

		_, err := svc.GenerateReport(ctx, domain.PeriodType("fortnightly"), time.Time{}, time.Time{})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("custom period missing dates", func(t *testing.T) {
		svc := services.NewReportService(new(MockAccountRepository), new(MockJournalRepository),
			services.WithClock(fixedClock))

		_, err := svc.GenerateReport(ctx, domain.PeriodCustom, time.Time{}, time.Time{})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("account load failure", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		journalRepo := new(MockJournalRepository)
		svc := services.NewReportService(accountRepo, journalRepo, services.WithClock(fixedClock))

		accountRepo.On("ListAccounts", ctx).Return(nil, errors.New("db down")).Once()

		_, err := svc.GenerateReport(ctx, domain.PeriodCurrentMonth, time.Time{}, time.Time{})
		assert.Error(t, err)
		journalRepo.AssertNotCalled(t, "ListJournalEntries", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("entry load failure", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		journalRepo := new(MockJournalRepository)
		svc := services.NewReportService(accountRepo, journalRepo, services.WithClock(fixedClock))

		accountRepo.On("ListAccounts", ctx).Return(reportAccounts(), nil).Once()
		journalRepo.On("ListJournalEntries", ctx, mock.Anything, mock.Anything).
			Return(nil, errors.New("db down")).Once()

		_, err := svc.GenerateReport(ctx, domain.PeriodCurrentMonth, time.Time{}, time.Time{})
		assert.Error(t, err)
	})

	t.Run("integrity failure aborts the run", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		journalRepo := new(MockJournalRepository)
		svc := services.NewReportService(accountRepo, journalRepo, services.WithClock(fixedClock))

		orphan := []domain.JournalEntry{
			{
				EntryID:         "e-orphan",
				EntryDate:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				DebitAccountID:  "cash",
				CreditAccountID: "ghost",
				Amount:          decimal.NewFromInt(10),
			},
		}
		accountRepo.On("ListAccounts", ctx).Return(reportAccounts(), nil).Once()
		journalRepo.On("ListJournalEntries", ctx, mock.Anything, mock.Anything).Return(orphan, nil).Once()

		bundle, err := svc.GenerateReport(ctx, domain.PeriodCurrentMonth, time.Time{}, time.Time{})
		assert.ErrorIs(t, err, apperrors.ErrIntegrity)
		assert.Nil(t, bundle)

		var ierr *apperrors.IntegrityError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, "e-orphan", ierr.EntryID)
	})

	t.Run("empty period yields diagnostic bundle", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		journalRepo := new(MockJournalRepository)
		svc := services.NewReportService(accountRepo, journalRepo, services.WithClock(fixedClock))

		accountRepo.On("ListAccounts", ctx).Return(reportAccounts(), nil).Once()
		journalRepo.On("ListJournalEntries", ctx, mock.Anything, mock.Anything).
			Return([]domain.JournalEntry{}, nil).Once()

		bundle, err := svc.GenerateReport(ctx, domain.PeriodCurrentYear, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.True(t, bundle.EmptyPeriod())
		assert.NotEmpty(t, bundle.Diagnostics)
	})
}
