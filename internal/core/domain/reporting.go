package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodType identifies one of the supported report period specifiers.
type PeriodType string

const (
	PeriodCurrentWeek  PeriodType = "current-week"
	PeriodCurrentMonth PeriodType = "current-month"
	PeriodCurrentYear  PeriodType = "current-year"
	PeriodWeekly       PeriodType = "weekly"
	PeriodMonthly      PeriodType = "monthly"
	PeriodYearly       PeriodType = "yearly"
	PeriodCustom       PeriodType = "custom"
)

// IsValid reports whether p is a known period specifier.
func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodCurrentWeek, PeriodCurrentMonth, PeriodCurrentYear,
		PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodCustom:
		return true
	}
	return false
}

// ReportPeriod is a resolved date window, inclusive on both ends.
type ReportPeriod struct {
	Type  PeriodType `json:"type"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Label string     `json:"label"`
}

// Contains reports whether t falls inside the window, inclusive.
func (p ReportPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// TrialBalanceRow is a single account line in the trial balance, with
// the balance placed in exactly one of the two columns.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	IsAbnormal  bool            `json:"isAbnormal"`
}

// TrialBalance lists every account with a non-zero balance split into
// debit and credit columns whose totals must match.
type TrialBalance struct {
	Rows         []TrialBalanceRow                 `json:"rows"`
	RowsByType   map[AccountType][]TrialBalanceRow `json:"rowsByType"`
	TotalDebits  decimal.Decimal                   `json:"totalDebits"`
	TotalCredits decimal.Decimal                   `json:"totalCredits"`
	IsBalanced   bool                              `json:"isBalanced"`
}

// StatementLine is one account's contribution to a financial statement
// section.
type StatementLine struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatement presents revenue, cost of goods sold, and operating
// expenses for a period, ending in net profit.
type IncomeStatement struct {
	Revenue               []StatementLine `json:"revenue"`
	CostOfGoodsSold       []StatementLine `json:"costOfGoodsSold"`
	OperatingExpenseLines []StatementLine `json:"operatingExpenseLines"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue"`
	COGSTotal             decimal.Decimal `json:"cogsTotal"`
	GrossProfit           decimal.Decimal `json:"grossProfit"`
	OperatingExpenses     decimal.Decimal `json:"operatingExpenses"`
	TotalExpenses         decimal.Decimal `json:"totalExpenses"`
	NetProfit             decimal.Decimal `json:"netProfit"`
}

// BalanceSheet presents assets against liabilities plus equity, with
// net profit folded in and drawings deducted. Difference carries the
// numeric gap when the accounting equation fails to hold.
type BalanceSheet struct {
	Assets           []StatementLine `json:"assets"`
	Liabilities      []StatementLine `json:"liabilities"`
	Equity           []StatementLine `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalCapital     decimal.Decimal `json:"totalCapital"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	Drawings         decimal.Decimal `json:"drawings"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	Difference       decimal.Decimal `json:"difference"`
	EquationBalanced bool            `json:"equationBalanced"`
}

// ReportSummary collects the headline totals of one report bundle.
type ReportSummary struct {
	TotalDebits                decimal.Decimal `json:"totalDebits"`
	TotalCredits               decimal.Decimal `json:"totalCredits"`
	TotalRevenue               decimal.Decimal `json:"totalRevenue"`
	TotalExpenses              decimal.Decimal `json:"totalExpenses"`
	NetProfit                  decimal.Decimal `json:"netProfit"`
	TotalAssets                decimal.Decimal `json:"totalAssets"`
	TotalLiabilities           decimal.Decimal `json:"totalLiabilities"`
	TotalEquity                decimal.Decimal `json:"totalEquity"`
	IsBalanced                 bool            `json:"isBalanced"`
	AccountingEquationBalanced bool            `json:"accountingEquationBalanced"`
}

// ReportBundle is the consolidated output of one period report run:
// the resolved window, the entries considered, every classified
// balance, and the three statements derived from them. Derived, never
// persisted; each run recomputes it from scratch.
type ReportBundle struct {
	Period           ReportPeriod                     `json:"period"`
	GeneratedAt      time.Time                        `json:"generatedAt"`
	TransactionCount int                              `json:"transactionCount"`
	Transactions     []JournalEntry                   `json:"transactions"`
	AccountBalances  []AccountBalance                 `json:"accountBalances"`
	BalancesByType   map[AccountType][]AccountBalance `json:"balancesByType"`
	TrialBalance     TrialBalance                     `json:"trialBalance"`
	IncomeStatement  IncomeStatement                  `json:"incomeStatement"`
	BalanceSheet     BalanceSheet                     `json:"balanceSheet"`
	Summary          ReportSummary                    `json:"summary"`
	// Diagnostics carries non-fatal warnings such as imbalance signals
	// and the empty-period marker. Integrity failures abort the run and
	// never appear here.
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// EmptyPeriod reports whether no entries fell inside the window, so
// callers can render an empty state instead of a balanced-at-zero
// badge.
func (b ReportBundle) EmptyPeriod() bool {
	return b.TransactionCount == 0
}
