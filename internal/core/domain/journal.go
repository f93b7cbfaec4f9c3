package domain

import "github.com/shopspring/decimal"

// Direction indicates whether a journal entry is a Debit or a Credit.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// JournalEntry is one line of a TransactionRequest. It is never persisted on its own.
type JournalEntry struct {
	AccountID     string          `json:"accountID" validate:"required,uuid"`
	Direction     Direction       `json:"direction" validate:"required,oneof=DEBIT CREDIT"`
	Amount        decimal.Decimal `json:"amount"` // Positive, at most MaxEntryAmount
	Description   string          `json:"description" validate:"required,min=1,max=500"`
	ReferenceType string          `json:"referenceType,omitempty" validate:"omitempty,max=100"`
	ReferenceID   string          `json:"referenceID,omitempty" validate:"omitempty,max=100"`
}

// MaxEntryAmount is the largest amount a single entry may carry.
var MaxEntryAmount = decimal.RequireFromString("999999999.99")

const (
	MinEntries = 2
	MaxEntries = 50
)
