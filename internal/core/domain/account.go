package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five closed account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// BalanceSide identifies a side of the ledger. It is used both for an
// account's expected normal balance and for the side an actual balance
// lands on.
type BalanceSide string

const (
	Debit  BalanceSide = "DEBIT"
	Credit BalanceSide = "CREDIT"
)

// AccountRole tags accounts that carry structural meaning beyond their
// type. Roles are resolved once at account creation instead of being
// matched by display name at calculation time.
type AccountRole string

const (
	// RoleNone marks an ordinary account.
	RoleNone AccountRole = ""
	// RoleDrawings marks the owner-drawings contra-equity account.
	RoleDrawings AccountRole = "DRAWINGS"
	// RoleCOGS marks the cost-of-goods-sold expense account.
	RoleCOGS AccountRole = "COGS"
)

// Account names that imply a role when no explicit role was assigned.
// Kept so charts of accounts created by older collaborators still
// classify correctly.
const (
	DrawingsAccountName = "Drawings"
	COGSAccountName     = "Cost of Goods Sold"
)

// Account represents one account in the chart of accounts. The
// calculation engine treats accounts as read-only input.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (e.g., UUID)
	Name        string      `json:"name"`        // User-defined name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	Role        AccountRole `json:"role"`        // DRAWINGS, COGS, or empty
	// NormalBalance, when set, overrides the type-derived expected side.
	NormalBalance BalanceSide `json:"normalBalance,omitempty"`
	Description   string      `json:"description"`
	IsActive      bool        `json:"isActive"`
	AuditFields
}

// HasRole reports whether the account carries the given role, either
// explicitly or through its legacy special-cased name.
func (a Account) HasRole(role AccountRole) bool {
	if a.Role == role {
		return true
	}
	switch role {
	case RoleDrawings:
		return a.Name == DrawingsAccountName
	case RoleCOGS:
		return a.Name == COGSAccountName
	}
	return false
}

// RoleForName maps the legacy special-cased account names to their
// explicit roles. Used by the chart-of-accounts service at creation
// time so the calculation engine never has to re-derive it.
func RoleForName(name string) AccountRole {
	switch name {
	case DrawingsAccountName:
		return RoleDrawings
	case COGSAccountName:
		return RoleCOGS
	}
	return RoleNone
}

// DefaultNormalBalance returns the expected balance side derived from
// the account type: Asset and Expense accounts are debit-normal,
// Liability, Equity, and Revenue accounts are credit-normal.
func DefaultNormalBalance(t AccountType) BalanceSide {
	switch t {
	case Asset, Expense:
		return Debit
	default:
		return Credit
	}
}
