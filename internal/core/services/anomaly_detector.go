package services

import (
	"fmt"
	"time"

	"github.com/Derezo/accounting-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// LargeAmountWarning is emitted once when any entry exceeds the large amount threshold.
	LargeAmountWarning = "Large transaction amounts detected. Please verify amounts are correct."
)

var (
	DefaultLargeAmountThreshold = decimal.NewFromInt(100000)
	DefaultFutureDateWindow     = 30 * 24 * time.Hour
)

// AnomalyDetector produces advisory warnings. It never rejects a transaction.
type AnomalyDetector struct {
	largeAmountThreshold decimal.Decimal
	futureDateWindow     time.Duration
	now                  func() time.Time
}

// NewAnomalyDetector creates an AnomalyDetector with the default thresholds.
func NewAnomalyDetector() *AnomalyDetector {
	return &AnomalyDetector{
		largeAmountThreshold: DefaultLargeAmountThreshold,
		futureDateWindow:     DefaultFutureDateWindow,
		now:                  time.Now,
	}
}

// DetectAnomalies inspects entries and the transaction date. accounts is used to label
// duplicate accounts by code; unknown accounts are labelled by ID.
func (d *AnomalyDetector) DetectAnomalies(entries []domain.JournalEntry, date time.Time, accounts map[string]domain.Account) []string {
	warnings := []string{}

	counts := make(map[string]int, len(entries))
	order := make([]string, 0, len(entries))
	largeAmount := false
	for _, entry := range entries {
		if counts[entry.AccountID] == 0 {
			order = append(order, entry.AccountID)
		}
		counts[entry.AccountID]++
		if entry.Amount.GreaterThan(d.largeAmountThreshold) {
			largeAmount = true
		}
	}

	for _, id := range order {
		if counts[id] < 2 {
			continue
		}
		label := id
		if acc, ok := accounts[id]; ok {
			label = acc.Label()
		}
		warnings = append(warnings, fmt.Sprintf("Account %s appears %d times in this transaction", label, counts[id]))
	}

	if largeAmount {
		warnings = append(warnings, LargeAmountWarning)
	}

	if date.After(d.now().Add(d.futureDateWindow)) {
		warnings = append(warnings, fmt.Sprintf("Transaction date is more than %s in the future", describeWindow(d.futureDateWindow)))
	}

	return warnings
}

// describeWindow renders whole-day windows in days and anything else as a duration.
func describeWindow(window time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case window == day:
		return "1 day"
	case window > day && window%day == 0:
		return fmt.Sprintf("%d days", int(window/day))
	default:
		return window.String()
	}
}
