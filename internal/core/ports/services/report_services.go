package services

import (
	"context"
	"time"

	"github.com/officebooks/officeledger/internal/core/domain"
)

// ReportService defines the period report generator: it resolves a
// period specifier into a date window and runs the bookkeeping
// pipeline against the entries inside it.
type ReportService interface {
	// GenerateReport builds the consolidated report bundle for the
	// given period. start and end are only consulted for
	// domain.PeriodCustom.
	GenerateReport(ctx context.Context, periodType domain.PeriodType, start, end time.Time) (*domain.ReportBundle, error)
}
