package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/officebooks/officeledger/internal/core/domain"
	portsrepo "github.com/officebooks/officeledger/internal/core/ports/repositories"
	portssvc "github.com/officebooks/officeledger/internal/core/ports/services"
	"github.com/officebooks/officeledger/internal/utils/accounting"
)

// reportService implements the period report generator: it resolves
// the requested period against the clock, loads the two input
// collections, and hands them to the calculation engine. Every call
// recomputes the bundle from scratch.
type reportService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	journalRepo portsrepo.JournalRepository
	now         func() time.Time
}

// ReportServiceOption is a functional option for configuring the
// report service.
type ReportServiceOption func(*reportService)

// WithClock overrides the wall clock, used by preset period
// resolution. Tests pin it to a fixed instant.
func WithClock(now func() time.Time) ReportServiceOption {
	return func(s *reportService) {
		s.now = now
	}
}

// NewReportService creates a new report service with the provided
// options.
func NewReportService(accountRepo portsrepo.AccountRepository, journalRepo portsrepo.JournalRepository, options ...ReportServiceOption) portssvc.ReportService {
	svc := &reportService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportService = (*reportService)(nil)

// GenerateReport builds the consolidated report bundle for the given
// period. Entries are filtered to the window before aggregation so the
// engine never scans more than once.
func (s *reportService) GenerateReport(ctx context.Context, periodType domain.PeriodType, start, end time.Time) (*domain.ReportBundle, error) {
	now := s.now()

	period, err := accounting.ResolvePeriod(periodType, start, end, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve report period", slog.String("period", string(periodType)))
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts for report")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	// The repository narrows the scan; the engine re-checks the window
	// inclusively over what it receives.
	entries, err := s.journalRepo.ListJournalEntries(ctx, &period.Start, &period.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal entries for report",
			slog.String("from", period.Start.Format(time.RFC3339)),
			slog.String("to", period.End.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}

	bundle, err := accounting.BuildReport(period, accounts, entries, now)
	if err != nil {
		s.LogError(ctx, err, "Report generation aborted",
			slog.String("period", string(periodType)))
		return nil, err
	}

	s.LogInfo(ctx, "Report bundle generated",
		slog.String("period", period.Label),
		slog.Int("transaction_count", bundle.TransactionCount),
		slog.Bool("is_balanced", bundle.Summary.IsBalanced),
		slog.Bool("equation_balanced", bundle.Summary.AccountingEquationBalanced))
	return bundle, nil
}
