package accounting

import (
	"fmt"
	"time"

	"github.com/officebooks/officeledger/internal/core/domain"
)

// BuildReport runs the full pipeline against the entries that fall
// inside the resolved period: filter, aggregate, classify, assemble
// the trial balance, and compose the two statements. Every report is
// recomputed from scratch; no balances are carried over from outside
// the window, so bundles for different periods are independently
// reproducible.
//
// Integrity errors from aggregation abort the run: a report must never
// look balanced while entries were silently dropped. Imbalance after
// correct arithmetic is a business signal, returned inside the bundle
// as diagnostics rather than as an error.
func BuildReport(period domain.ReportPeriod, accounts []domain.Account, entries []domain.JournalEntry, now time.Time) (*domain.ReportBundle, error) {
	filtered := FilterByPeriod(entries, period)

	totals, err := AccumulateTotals(accounts, filtered)
	if err != nil {
		return nil, err
	}

	balances := ClassifyAll(accounts, totals)
	trialBalance := BuildTrialBalance(balances)
	incomeStatement := BuildIncomeStatement(balances)
	balanceSheet := BuildBalanceSheet(balances, incomeStatement.NetProfit)

	byType := make(map[domain.AccountType][]domain.AccountBalance)
	for _, bal := range balances {
		byType[bal.Account.AccountType] = append(byType[bal.Account.AccountType], bal)
	}

	bundle := &domain.ReportBundle{
		Period:           period,
		GeneratedAt:      now,
		TransactionCount: len(filtered),
		Transactions:     filtered,
		AccountBalances:  balances,
		BalancesByType:   byType,
		TrialBalance:     trialBalance,
		IncomeStatement:  incomeStatement,
		BalanceSheet:     balanceSheet,
		Summary: domain.ReportSummary{
			TotalDebits:                trialBalance.TotalDebits,
			TotalCredits:               trialBalance.TotalCredits,
			TotalRevenue:               incomeStatement.TotalRevenue,
			TotalExpenses:              incomeStatement.TotalExpenses,
			NetProfit:                  incomeStatement.NetProfit,
			TotalAssets:                balanceSheet.TotalAssets,
			TotalLiabilities:           balanceSheet.TotalLiabilities,
			TotalEquity:                balanceSheet.TotalEquity,
			IsBalanced:                 trialBalance.IsBalanced,
			AccountingEquationBalanced: balanceSheet.EquationBalanced,
		},
	}

	if len(filtered) == 0 {
		bundle.Diagnostics = append(bundle.Diagnostics,
			fmt.Sprintf("no journal entries between %s and %s",
				period.Start.Format("2006-01-02"), period.End.Format("2006-01-02")))
	}
	if !trialBalance.IsBalanced {
		bundle.Diagnostics = append(bundle.Diagnostics,
			fmt.Sprintf("trial balance columns differ: debits %s, credits %s",
				trialBalance.TotalDebits.String(), trialBalance.TotalCredits.String()))
	}
	if !balanceSheet.EquationBalanced {
		bundle.Diagnostics = append(bundle.Diagnostics,
			fmt.Sprintf("accounting equation off by %s: assets %s, liabilities %s, equity %s",
				balanceSheet.Difference.String(), balanceSheet.TotalAssets.String(),
				balanceSheet.TotalLiabilities.String(), balanceSheet.TotalEquity.String()))
	}

	return bundle, nil
}
