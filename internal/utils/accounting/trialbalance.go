package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/officebooks/officeledger/internal/core/domain"
)

// Epsilon is the two-decimal currency tolerance used when comparing
// totals that must be equal.
var Epsilon = decimal.New(1, -2)

// WithinTolerance reports whether a and b differ by less than Epsilon.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(Epsilon)
}

// BuildTrialBalance assembles the trial balance from classified
// balances: every account with a non-zero balance becomes a row with
// its amount in the debit or credit column according to the side the
// ledger actually shows. Abnormal accounts are flagged for display but
// always included in the totals.
//
// For any correctly aggregated entry set the two columns are equal by
// construction; an imbalance here signals corrupt upstream data and is
// surfaced through IsBalanced, never hidden.
func BuildTrialBalance(balances []domain.AccountBalance) domain.TrialBalance {
	tb := domain.TrialBalance{
		Rows:         make([]domain.TrialBalanceRow, 0, len(balances)),
		RowsByType:   make(map[domain.AccountType][]domain.TrialBalanceRow),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	for _, bal := range balances {
		if !bal.BalanceAmount.IsPositive() {
			continue
		}

		row := domain.TrialBalanceRow{
			AccountID:   bal.Account.AccountID,
			AccountName: bal.Account.Name,
			AccountType: bal.Account.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
			IsAbnormal:  bal.IsAbnormal,
		}
		if bal.BalanceType == domain.Debit {
			row.Debit = bal.BalanceAmount
			tb.TotalDebits = tb.TotalDebits.Add(bal.BalanceAmount)
		} else {
			row.Credit = bal.BalanceAmount
			tb.TotalCredits = tb.TotalCredits.Add(bal.BalanceAmount)
		}

		tb.Rows = append(tb.Rows, row)
		tb.RowsByType[row.AccountType] = append(tb.RowsByType[row.AccountType], row)
	}

	tb.IsBalanced = WithinTolerance(tb.TotalDebits, tb.TotalCredits)
	return tb
}
