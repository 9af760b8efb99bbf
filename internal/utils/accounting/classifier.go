package accounting

import (
	"github.com/officebooks/officeledger/internal/core/domain"
)

// NormalBalanceFor resolves the expected balance side of an account.
// Precedence: the Drawings role forces debit-normal regardless of the
// declared type (contra-equity), an explicit NormalBalance field wins
// next, and otherwise the side derives from the account type.
func NormalBalanceFor(acc domain.Account) domain.BalanceSide {
	if acc.HasRole(domain.RoleDrawings) {
		return domain.Debit
	}
	if acc.NormalBalance != "" {
		return acc.NormalBalance
	}
	return domain.DefaultNormalBalance(acc.AccountType)
}

// Classify converts one account's raw totals into a full
// AccountBalance: the actual side the ledger shows, the expected side,
// the signed balance oriented so well-behaved accounts are positive,
// and the abnormal flag when the two sides contradict.
func Classify(acc domain.Account, totals domain.AccountTotals) domain.AccountBalance {
	raw := totals.DebitTotal.Sub(totals.CreditTotal)

	balanceType := domain.Debit
	if raw.IsNegative() {
		balanceType = domain.Credit
	}

	normal := NormalBalanceFor(acc)
	signed := raw
	if normal == domain.Credit {
		signed = raw.Neg()
	}

	// The Asset/Expense exclusion on the credit branch is preserved
	// as-is. It only matters for accounts whose explicit normal-balance
	// field contradicts their type; type-derived classification already
	// keeps the two branches mutually exclusive.
	abnormal := (normal == domain.Debit && raw.IsNegative()) ||
		(normal == domain.Credit && raw.IsPositive() &&
			acc.AccountType != domain.Asset && acc.AccountType != domain.Expense)

	return domain.AccountBalance{
		Account:       acc,
		DebitTotal:    totals.DebitTotal,
		CreditTotal:   totals.CreditTotal,
		RawBalance:    raw,
		BalanceAmount: raw.Abs(),
		BalanceType:   balanceType,
		NormalBalance: normal,
		SignedBalance: signed,
		IsAbnormal:    abnormal,
	}
}

// ClassifyAll classifies every account against the aggregated totals,
// preserving the account list order. Accounts missing from the totals
// map (never aggregated) classify as zero.
func ClassifyAll(accounts []domain.Account, totals map[string]domain.AccountTotals) []domain.AccountBalance {
	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, acc := range accounts {
		balances = append(balances, Classify(acc, totals[acc.AccountID]))
	}
	return balances
}
