package services

import (
	"fmt"

	"github.com/Derezo/accounting-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResult holds the debit and credit totals of a set of entries.
type BalanceResult struct {
	Balanced     bool
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Difference   decimal.Decimal // Absolute value
}

// Message describes an imbalance with both totals and their difference.
func (r BalanceResult) Message() string {
	return fmt.Sprintf("Transaction does not balance: Debits %s ≠ Credits %s. Difference: %s",
		r.TotalDebits.StringFixed(2), r.TotalCredits.StringFixed(2), r.Difference.StringFixed(2))
}

// CheckBalance sums the debit and credit sides of entries. Amounts are exact decimals,
// so the sides must match exactly.
func CheckBalance(entries []domain.JournalEntry) BalanceResult {
	debitsSum := decimal.Zero
	creditsSum := decimal.Zero

	for _, entry := range entries {
		switch entry.Direction {
		case domain.Debit:
			debitsSum = debitsSum.Add(entry.Amount)
		case domain.Credit:
			creditsSum = creditsSum.Add(entry.Amount)
		}
	}

	diff := debitsSum.Sub(creditsSum).Abs()
	return BalanceResult{
		Balanced:     diff.IsZero(),
		TotalDebits:  debitsSum,
		TotalCredits: creditsSum,
		Difference:   diff,
	}
}
