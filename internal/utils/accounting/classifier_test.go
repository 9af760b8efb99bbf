package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/officebooks/officeledger/internal/core/domain"
	"github.com/officebooks/officeledger/internal/utils/accounting"
)

func totals(debit, credit float64) domain.AccountTotals {
	return domain.AccountTotals{
		DebitTotal:  decimal.NewFromFloat(debit),
		CreditTotal: decimal.NewFromFloat(credit),
	}
}

func TestNormalBalanceFor(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		want    domain.BalanceSide
	}{
		{
			name:    "asset is debit normal",
			account: testAccount("a", "Cash", domain.Asset),
			want:    domain.Debit,
		},
		{
			name:    "expense is debit normal",
			account: testAccount("a", "Rent", domain.Expense),
			want:    domain.Debit,
		},
		{
			name:    "liability is credit normal",
			account: testAccount("a", "Bank Loan", domain.Liability),
			want:    domain.Credit,
		},
		{
			name:    "equity is credit normal",
			account: testAccount("a", "Capital", domain.Equity),
			want:    domain.Credit,
		},
		{
			name:    "revenue is credit normal",
			account: testAccount("a", "Sales", domain.Revenue),
			want:    domain.Credit,
		},
		{
			name:    "explicit override beats type",
			account: domain.Account{AccountID: "a", Name: "Accumulated Depreciation", AccountType: domain.Asset, NormalBalance: domain.Credit},
			want:    domain.Credit,
		},
		{
			name:    "drawings role forces debit despite equity type",
			account: domain.Account{AccountID: "a", Name: "Owner Withdrawals", AccountType: domain.Equity, Role: domain.RoleDrawings},
			want:    domain.Debit,
		},
		{
			name:    "drawings by legacy name forces debit",
			account: domain.Account{AccountID: "a", Name: "Drawings", AccountType: domain.Equity},
			want:    domain.Debit,
		},
		{
			name:    "drawings role beats explicit credit override",
			account: domain.Account{AccountID: "a", Name: "Drawings", AccountType: domain.Equity, NormalBalance: domain.Credit},
			want:    domain.Debit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.NormalBalanceFor(tt.account))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("well behaved asset", func(t *testing.T) {
		bal := accounting.Classify(testAccount("cash", "Cash", domain.Asset), totals(1500, 200))

		assert.True(t, bal.RawBalance.Equal(decimal.NewFromInt(1300)))
		assert.True(t, bal.BalanceAmount.Equal(decimal.NewFromInt(1300)))
		assert.Equal(t, domain.Debit, bal.BalanceType)
		assert.Equal(t, domain.Debit, bal.NormalBalance)
		assert.True(t, bal.SignedBalance.Equal(decimal.NewFromInt(1300)))
		assert.False(t, bal.IsAbnormal)
	})

	t.Run("well behaved revenue", func(t *testing.T) {
		bal := accounting.Classify(testAccount("sales", "Sales", domain.Revenue), totals(0, 500))

		assert.True(t, bal.RawBalance.Equal(decimal.NewFromInt(-500)))
		assert.True(t, bal.BalanceAmount.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, domain.Credit, bal.BalanceType)
		assert.True(t, bal.SignedBalance.Equal(decimal.NewFromInt(500)))
		assert.False(t, bal.IsAbnormal)
	})

	t.Run("over-credited asset is abnormal", func(t *testing.T) {
		// Over-refunded asset: more credits than debits.
		bal := accounting.Classify(testAccount("cash", "Cash", domain.Asset), totals(100, 250))

		assert.Equal(t, domain.Credit, bal.BalanceType)
		assert.True(t, bal.SignedBalance.Equal(decimal.NewFromInt(-150)))
		assert.True(t, bal.IsAbnormal)
	})

	t.Run("over-debited liability is abnormal", func(t *testing.T) {
		bal := accounting.Classify(testAccount("loan", "Bank Loan", domain.Liability), totals(300, 100))

		assert.Equal(t, domain.Debit, bal.BalanceType)
		assert.True(t, bal.SignedBalance.Equal(decimal.NewFromInt(-200)))
		assert.True(t, bal.IsAbnormal)
	})

	t.Run("credit-normal asset never trips the credit branch", func(t *testing.T) {
		// A contra-asset with an explicit credit-normal override showing a
		// debit balance: the Asset exclusion on the credit branch keeps it
		// from being flagged.
		acc := domain.Account{AccountID: "ad", Name: "Accumulated Depreciation", AccountType: domain.Asset, NormalBalance: domain.Credit}
		bal := accounting.Classify(acc, totals(400, 100))

		assert.Equal(t, domain.Credit, bal.NormalBalance)
		assert.Equal(t, domain.Debit, bal.BalanceType)
		assert.False(t, bal.IsAbnormal)
	})

	t.Run("credit-normal liability with debit balance trips the credit branch", func(t *testing.T) {
		bal := accounting.Classify(testAccount("loan", "Bank Loan", domain.Liability), totals(400, 100))
		assert.True(t, bal.IsAbnormal)
	})

	t.Run("drawings signed balance stays debit oriented", func(t *testing.T) {
		acc := domain.Account{AccountID: "d", Name: "Drawings", AccountType: domain.Equity, Role: domain.RoleDrawings}
		bal := accounting.Classify(acc, totals(200, 0))

		assert.Equal(t, domain.Debit, bal.NormalBalance)
		assert.True(t, bal.SignedBalance.Equal(decimal.NewFromInt(200)))
		assert.False(t, bal.IsAbnormal)
	})

	t.Run("zero balance is debit side, not abnormal", func(t *testing.T) {
		bal := accounting.Classify(testAccount("sales", "Sales", domain.Revenue), totals(0, 0))

		assert.Equal(t, domain.Debit, bal.BalanceType)
		assert.True(t, bal.SignedBalance.IsZero())
		assert.False(t, bal.IsAbnormal)
	})
}

func TestClassifyAll_PreservesOrderAndZeroFills(t *testing.T) {
	accounts := []domain.Account{
		testAccount("b", "Bank", domain.Asset),
		testAccount("a", "Accounts Payable", domain.Liability),
	}
	// Bank is missing from the totals map entirely.
	balances := accounting.ClassifyAll(accounts, map[string]domain.AccountTotals{
		"a": totals(0, 75),
	})

	assert.Len(t, balances, 2)
	assert.Equal(t, "b", balances[0].Account.AccountID)
	assert.True(t, balances[0].RawBalance.IsZero())
	assert.Equal(t, "a", balances[1].Account.AccountID)
	assert.True(t, balances[1].SignedBalance.Equal(decimal.NewFromInt(75)))
}
