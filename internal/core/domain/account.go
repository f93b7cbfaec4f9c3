package domain

import "time"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents an entry in an organization's chart of accounts.
// The engine only reads accounts; ownership lies with the account directory.
type Account struct {
	AccountID      string      `json:"accountID"`      // Primary Key (UUID)
	OrganizationID string      `json:"organizationID"` // Tenant owning the account
	Code           string      `json:"code"`           // Chart-of-accounts code, e.g. "1000"
	Name           string      `json:"name"`
	AccountType    AccountType `json:"accountType"`
	IsActive       bool        `json:"isActive"`
	DeletedAt      *time.Time  `json:"deletedAt,omitempty"` // Soft delete marker
	AuditFields
}

// Label returns the code when set, otherwise the account ID.
func (a Account) Label() string {
	if a.Code != "" {
		return a.Code
	}
	return a.AccountID
}
