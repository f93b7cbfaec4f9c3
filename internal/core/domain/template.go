package domain

// AccountRole identifies the account an entry template needs: a type plus an optional
// substring of the account name. It is comparable and used directly as a map key.
type AccountRole struct {
	Type     AccountType
	NameHint string
}

// EntryTemplate describes one line a business transaction produces.
type EntryTemplate struct {
	Role                AccountRole
	Direction           Direction
	AmountField         string // Key in the caller data holding the amount
	AccountField        string // Optional key in the caller data pinning the account by ID
	DescriptionTemplate string // May contain {{description}}
}

// BusinessTransactionTemplate maps a named business event to the entries it implies.
type BusinessTransactionTemplate struct {
	Name           string
	Description    string
	EntryTemplates []EntryTemplate
}

// TransactionTypeInfo is the public listing form of a registered template.
type TransactionTypeInfo struct {
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredFields []string `json:"requiredFields"`
}
