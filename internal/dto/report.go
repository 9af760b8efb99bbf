package dto

import (
	"github.com/shopspring/decimal"

	"github.com/officebooks/officeledger/internal/core/domain"
)

// ReportRequest carries the report query parameters. StartDate and
// EndDate are only consulted when Period is "custom".
type ReportRequest struct {
	Period    string `form:"period" binding:"required,oneof=current-week current-month current-year weekly monthly yearly custom"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// PeriodResponse describes the resolved report window.
type PeriodResponse struct {
	Type  string `json:"type"`
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// TrialBalanceRowResponse represents a row in the trial balance report.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	IsAbnormal  bool            `json:"isAbnormal"`
}

// TrialBalanceResponse represents the trial balance report.
type TrialBalanceResponse struct {
	Period PeriodResponse            `json:"period"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	IsBalanced bool `json:"isBalanced"`
}

// StatementLineResponse represents an account line in a statement
// section.
type StatementLineResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse represents the income statement report.
type IncomeStatementResponse struct {
	Period            PeriodResponse          `json:"period"`
	Revenue           []StatementLineResponse `json:"revenue"`
	CostOfGoodsSold   []StatementLineResponse `json:"costOfGoodsSold"`
	OperatingExpenses []StatementLineResponse `json:"operatingExpenses"`
	Summary           struct {
		TotalRevenue      decimal.Decimal `json:"totalRevenue"`
		CostOfGoodsSold   decimal.Decimal `json:"costOfGoodsSold"`
		GrossProfit       decimal.Decimal `json:"grossProfit"`
		OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
		TotalExpenses     decimal.Decimal `json:"totalExpenses"`
		NetProfit         decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report.
type BalanceSheetResponse struct {
	Period      PeriodResponse          `json:"period"`
	Assets      []StatementLineResponse `json:"assets"`
	Liabilities []StatementLineResponse `json:"liabilities"`
	Equity      []StatementLineResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalCapital     decimal.Decimal `json:"totalCapital"`
		NetProfit        decimal.Decimal `json:"netProfit"`
		Drawings         decimal.Decimal `json:"drawings"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		Difference       decimal.Decimal `json:"difference"`
		EquationBalanced bool            `json:"equationBalanced"`
	} `json:"summary"`
}

// ReportBundleResponse is the consolidated report for one period.
type ReportBundleResponse struct {
	Period           PeriodResponse          `json:"period"`
	GeneratedAt      string                  `json:"generatedAt"`
	TransactionCount int                     `json:"transactionCount"`
	EmptyPeriod      bool                    `json:"emptyPeriod"`
	Transactions     []JournalEntryResponse  `json:"transactions"`
	TrialBalance     TrialBalanceResponse    `json:"trialBalance"`
	IncomeStatement  IncomeStatementResponse `json:"incomeStatement"`
	BalanceSheet     BalanceSheetResponse    `json:"balanceSheet"`
	Summary          domain.ReportSummary    `json:"summary"`
	Diagnostics      []string                `json:"diagnostics,omitempty"`
}

func toPeriodResponse(p domain.ReportPeriod) PeriodResponse {
	return PeriodResponse{
		Type:  string(p.Type),
		Start: p.Start.Format("2006-01-02"),
		End:   p.End.Format("2006-01-02"),
		Label: p.Label,
	}
}

func toStatementLines(lines []domain.StatementLine) []StatementLineResponse {
	out := make([]StatementLineResponse, len(lines))
	for i, line := range lines {
		out[i] = StatementLineResponse{
			AccountID:   line.AccountID,
			AccountName: line.AccountName,
			Amount:      line.Amount,
		}
	}
	return out
}

// ToTrialBalanceResponse converts a domain trial balance to its API
// shape.
func ToTrialBalanceResponse(tb domain.TrialBalance, period domain.ReportPeriod) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		Period:     toPeriodResponse(period),
		Rows:       make([]TrialBalanceRowResponse, len(tb.Rows)),
		IsBalanced: tb.IsBalanced,
	}
	for i, row := range tb.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
			IsAbnormal:  row.IsAbnormal,
		}
	}
	resp.Totals.Debit = tb.TotalDebits
	resp.Totals.Credit = tb.TotalCredits
	return resp
}

// ToIncomeStatementResponse converts a domain income statement to its
// API shape.
func ToIncomeStatementResponse(is domain.IncomeStatement, period domain.ReportPeriod) IncomeStatementResponse {
	resp := IncomeStatementResponse{
		Period:            toPeriodResponse(period),
		Revenue:           toStatementLines(is.Revenue),
		CostOfGoodsSold:   toStatementLines(is.CostOfGoodsSold),
		OperatingExpenses: toStatementLines(is.OperatingExpenseLines),
	}
	resp.Summary.TotalRevenue = is.TotalRevenue
	resp.Summary.CostOfGoodsSold = is.COGSTotal
	resp.Summary.GrossProfit = is.GrossProfit
	resp.Summary.OperatingExpenses = is.OperatingExpenses
	resp.Summary.TotalExpenses = is.TotalExpenses
	resp.Summary.NetProfit = is.NetProfit
	return resp
}

// ToBalanceSheetResponse converts a domain balance sheet to its API
// shape.
func ToBalanceSheetResponse(bs domain.BalanceSheet, period domain.ReportPeriod) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		Period:      toPeriodResponse(period),
		Assets:      toStatementLines(bs.Assets),
		Liabilities: toStatementLines(bs.Liabilities),
		Equity:      toStatementLines(bs.Equity),
	}
	resp.Summary.TotalAssets = bs.TotalAssets
	resp.Summary.TotalLiabilities = bs.TotalLiabilities
	resp.Summary.TotalCapital = bs.TotalCapital
	resp.Summary.NetProfit = bs.NetProfit
	resp.Summary.Drawings = bs.Drawings
	resp.Summary.TotalEquity = bs.TotalEquity
	resp.Summary.Difference = bs.Difference
	resp.Summary.EquationBalanced = bs.EquationBalanced
	return resp
}

// ToReportBundleResponse converts a domain report bundle to its API
// shape.
func ToReportBundleResponse(bundle *domain.ReportBundle) ReportBundleResponse {
	return ReportBundleResponse{
		Period:           toPeriodResponse(bundle.Period),
		GeneratedAt:      bundle.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		TransactionCount: bundle.TransactionCount,
		EmptyPeriod:      bundle.EmptyPeriod(),
		Transactions:     ToListJournalEntriesResponse(bundle.Transactions).Entries,
		TrialBalance:     ToTrialBalanceResponse(bundle.TrialBalance, bundle.Period),
		IncomeStatement:  ToIncomeStatementResponse(bundle.IncomeStatement, bundle.Period),
		BalanceSheet:     ToBalanceSheetResponse(bundle.BalanceSheet, bundle.Period),
		Summary:          bundle.Summary,
		Diagnostics:      bundle.Diagnostics,
	}
}
