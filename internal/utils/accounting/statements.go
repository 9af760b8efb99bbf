package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/officebooks/officeledger/internal/core/domain"
)

// BuildIncomeStatement composes the income statement from classified
// balances. Cost of goods sold is split out of the expense accounts by
// role so gross profit can be shown separately from operating result.
func BuildIncomeStatement(balances []domain.AccountBalance) domain.IncomeStatement {
	is := domain.IncomeStatement{
		Revenue:               []domain.StatementLine{},
		CostOfGoodsSold:       []domain.StatementLine{},
		OperatingExpenseLines: []domain.StatementLine{},
		TotalRevenue:          decimal.Zero,
		COGSTotal:             decimal.Zero,
		OperatingExpenses:     decimal.Zero,
	}

	for _, bal := range balances {
		line := domain.StatementLine{
			AccountID:   bal.Account.AccountID,
			AccountName: bal.Account.Name,
			Amount:      bal.SignedBalance,
		}
		switch bal.Account.AccountType {
		case domain.Revenue:
			is.Revenue = append(is.Revenue, line)
			is.TotalRevenue = is.TotalRevenue.Add(line.Amount)
		case domain.Expense:
			if bal.Account.HasRole(domain.RoleCOGS) {
				is.CostOfGoodsSold = append(is.CostOfGoodsSold, line)
				is.COGSTotal = is.COGSTotal.Add(line.Amount)
			} else {
				is.OperatingExpenseLines = append(is.OperatingExpenseLines, line)
				is.OperatingExpenses = is.OperatingExpenses.Add(line.Amount)
			}
		}
	}

	is.GrossProfit = is.TotalRevenue.Sub(is.COGSTotal)
	is.TotalExpenses = is.COGSTotal.Add(is.OperatingExpenses)
	is.NetProfit = is.GrossProfit.Sub(is.OperatingExpenses)
	return is
}

// BuildBalanceSheet composes the balance sheet. netProfit must be the
// value computed by BuildIncomeStatement over the same balances: net
// profit is the bridge between the two statements and is computed
// once, never re-derived here.
//
// The drawings account is contra-equity: it appears in the equity
// section but its balance is deducted from total equity. When the
// accounting equation does not hold the numeric gap is reported in
// Difference; the books are never plugged with a balancing entry.
func BuildBalanceSheet(balances []domain.AccountBalance, netProfit decimal.Decimal) domain.BalanceSheet {
	bs := domain.BalanceSheet{
		Assets:           []domain.StatementLine{},
		Liabilities:      []domain.StatementLine{},
		Equity:           []domain.StatementLine{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalCapital:     decimal.Zero,
		NetProfit:        netProfit,
		Drawings:         decimal.Zero,
	}

	for _, bal := range balances {
		line := domain.StatementLine{
			AccountID:   bal.Account.AccountID,
			AccountName: bal.Account.Name,
			Amount:      bal.SignedBalance,
		}
		// Drawings is contra-equity whatever its declared type says,
		// matching the classifier's treatment.
		if bal.Account.HasRole(domain.RoleDrawings) {
			bs.Equity = append(bs.Equity, line)
			bs.Drawings = bs.Drawings.Add(line.Amount)
			continue
		}

		switch bal.Account.AccountType {
		case domain.Asset:
			bs.Assets = append(bs.Assets, line)
			bs.TotalAssets = bs.TotalAssets.Add(line.Amount)
		case domain.Liability:
			bs.Liabilities = append(bs.Liabilities, line)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(line.Amount)
		case domain.Equity:
			bs.Equity = append(bs.Equity, line)
			bs.TotalCapital = bs.TotalCapital.Add(line.Amount)
		}
	}

	bs.TotalEquity = bs.TotalCapital.Add(netProfit).Sub(bs.Drawings)
	bs.Difference = bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.TotalEquity))
	bs.EquationBalanced = bs.Difference.Abs().LessThan(Epsilon)
	return bs
}
