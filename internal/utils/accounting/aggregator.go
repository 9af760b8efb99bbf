// Package accounting implements the double-entry bookkeeping
// calculation engine: aggregation of journal entries into per-account
// totals, normal-balance classification, trial balance assembly, and
// the income statement / balance sheet composition. Everything here is
// a pure function over its inputs; no I/O and no shared state.
package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/officebooks/officeledger/internal/apperrors"
	"github.com/officebooks/officeledger/internal/core/domain"
)

// AccumulateTotals scans the journal entries once and produces debit
// and credit totals for every account, keyed by account id. Accounts
// never touched by an entry are present with zero totals.
//
// Integrity problems are fatal: an entry that references an unknown
// account, posts both legs to the same account, or carries a negative
// amount yields an IntegrityError naming the entry. Dropping such an
// entry silently would break the double-entry equality without any
// signal, so the whole aggregation fails instead.
func AccumulateTotals(accounts []domain.Account, entries []domain.JournalEntry) (map[string]domain.AccountTotals, error) {
	totals := make(map[string]domain.AccountTotals, len(accounts))
	for _, acc := range accounts {
		totals[acc.AccountID] = domain.AccountTotals{
			DebitTotal:  decimal.Zero,
			CreditTotal: decimal.Zero,
		}
	}

	for _, entry := range entries {
		if entry.Amount.IsNegative() {
			return nil, apperrors.NewIntegrityError(entry.EntryID, "amount %s is negative", entry.Amount.String())
		}
		if entry.DebitAccountID == entry.CreditAccountID {
			return nil, apperrors.NewIntegrityError(entry.EntryID, "debit and credit legs reference the same account %s", entry.DebitAccountID)
		}

		debit, ok := totals[entry.DebitAccountID]
		if !ok {
			return nil, apperrors.NewIntegrityError(entry.EntryID, "debit leg references unknown account %s", entry.DebitAccountID)
		}
		credit, ok := totals[entry.CreditAccountID]
		if !ok {
			return nil, apperrors.NewIntegrityError(entry.EntryID, "credit leg references unknown account %s", entry.CreditAccountID)
		}

		debit.DebitTotal = debit.DebitTotal.Add(entry.Amount)
		credit.CreditTotal = credit.CreditTotal.Add(entry.Amount)
		totals[entry.DebitAccountID] = debit
		totals[entry.CreditAccountID] = credit
	}

	return totals, nil
}
