package domain

import (
	"github.com/shopspring/decimal"
)

// AccountTotals holds the raw per-account debit and credit sums
// produced by the aggregation pass.
type AccountTotals struct {
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
}

// AccountBalance joins an account with its classified balance. Derived,
// never persisted.
type AccountBalance struct {
	Account     Account         `json:"account"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	// RawBalance is debitTotal minus creditTotal.
	RawBalance decimal.Decimal `json:"rawBalance"`
	// BalanceAmount is the absolute value of RawBalance.
	BalanceAmount decimal.Decimal `json:"balanceAmount"`
	// BalanceType is the side the ledger actually shows: Debit when
	// RawBalance is non-negative, Credit otherwise.
	BalanceType BalanceSide `json:"balanceType"`
	// NormalBalance is the side the account is expected to carry.
	NormalBalance BalanceSide `json:"normalBalance"`
	// SignedBalance is RawBalance oriented so a well-behaved account is
	// positive: RawBalance for debit-normal accounts, its negation for
	// credit-normal ones.
	SignedBalance decimal.Decimal `json:"signedBalance"`
	// IsAbnormal is set when the actual side contradicts the expected
	// side.
	IsAbnormal bool `json:"isAbnormal"`
}
