package domain

import "time"

// TransactionRequest is a proposed balanced set of journal entries for one organization.
// Validation produces a ValidationReport and never mutates the request.
type TransactionRequest struct {
	OrganizationID string         `json:"organizationID" validate:"required,uuid"`
	Date           time.Time      `json:"date" validate:"required"`
	Description    string         `json:"description" validate:"required,min=1,max=500"`
	Entries        []JournalEntry `json:"entries" validate:"min=2,max=50,dive"`
	UserID         string         `json:"userID" validate:"required"`
}

// AccountIDs returns the account id of every entry, in entry order.
func (r TransactionRequest) AccountIDs() []string {
	ids := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		ids[i] = e.AccountID
	}
	return ids
}
