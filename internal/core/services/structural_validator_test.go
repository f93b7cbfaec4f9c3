package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Derezo/accounting-api/internal/core/domain"
	"github.com/Derezo/accounting-api/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func requestWithEntries(n int) domain.TransactionRequest {
	debit, credit := uuid.NewString(), uuid.NewString()
	entries := make([]domain.JournalEntry, n)
	for i := range entries {
		entries[i] = domain.JournalEntry{
			AccountID:   debit,
			Direction:   domain.Debit,
			Amount:      decimal.NewFromInt(10),
			Description: "line",
		}
		if i%2 == 1 {
			entries[i].AccountID = credit
			entries[i].Direction = domain.Credit
		}
	}
	return domain.TransactionRequest{
		OrganizationID: uuid.NewString(),
		Date:           time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Description:    "test transaction",
		Entries:        entries,
		UserID:         uuid.NewString(),
	}
}

func TestStructuralValidator_EntryCount(t *testing.T) {
	v := services.NewStructuralValidator()

	for _, n := range []int{0, 1, 51} {
		problems := v.Validate(requestWithEntries(n))
		assert.NotEmpty(t, problems, "expected %d entries to be rejected", n)
	}
	for _, n := range []int{2, 50} {
		assert.Empty(t, v.Validate(requestWithEntries(n)), "expected %d entries to be accepted", n)
	}

	assert.Equal(t, []string{"entries must contain at least 2 items"}, v.Validate(requestWithEntries(1)))
	assert.Equal(t, []string{"entries must contain at most 50 items"}, v.Validate(requestWithEntries(51)))
}

func TestStructuralValidator_Fields(t *testing.T) {
	v := services.NewStructuralValidator()

	tests := []struct {
		name   string
		mutate func(r *domain.TransactionRequest)
		want   string
	}{
		{"missing organization", func(r *domain.TransactionRequest) { r.OrganizationID = "" }, "organizationID is required"},
		{"organization not a uuid", func(r *domain.TransactionRequest) { r.OrganizationID = "acme" }, "organizationID must be a valid UUID"},
		{"missing date", func(r *domain.TransactionRequest) { r.Date = time.Time{} }, "date is required"},
		{"missing description", func(r *domain.TransactionRequest) { r.Description = "" }, "description is required"},
		{"description too long", func(r *domain.TransactionRequest) { r.Description = strings.Repeat("x", 501) }, "description must be at most 500 characters"},
		{"missing user", func(r *domain.TransactionRequest) { r.UserID = "" }, "userID is required"},
		{"account id not a uuid", func(r *domain.TransactionRequest) { r.Entries[0].AccountID = "cash" }, "entries[0].accountID must be a valid UUID"},
		{"bad direction", func(r *domain.TransactionRequest) { r.Entries[1].Direction = "SIDEWAYS" }, "entries[1].direction must be one of [DEBIT CREDIT]"},
		{"missing entry description", func(r *domain.TransactionRequest) { r.Entries[1].Description = "" }, "entries[1].description is required"},
		{"zero amount", func(r *domain.TransactionRequest) { r.Entries[0].Amount = decimal.Zero }, "entries[0].amount must be greater than 0"},
		{"negative amount", func(r *domain.TransactionRequest) { r.Entries[1].Amount = decimal.NewFromInt(-5) }, "entries[1].amount must be greater than 0"},
		{"amount above maximum", func(r *domain.TransactionRequest) {
			r.Entries[0].Amount = decimal.RequireFromString("1000000000.00")
		}, "entries[0].amount must not exceed 999999999.99"},
		{"fractional cents", func(r *domain.TransactionRequest) {
			r.Entries[0].Amount = decimal.RequireFromString("10.005")
		}, "entries[0].amount must have at most 2 decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithEntries(2)
			tt.mutate(&req)
			assert.Contains(t, v.Validate(req), tt.want)
		})
	}
}

func TestStructuralValidator_MaximumAmountAccepted(t *testing.T) {
	v := services.NewStructuralValidator()
	req := requestWithEntries(2)
	req.Entries[0].Amount = domain.MaxEntryAmount
	req.Entries[1].Amount = domain.MaxEntryAmount
	assert.Empty(t, v.Validate(req))
}
