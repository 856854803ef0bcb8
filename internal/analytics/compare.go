// Package analytics provides read-only analyses over a customer's
// billing history: month-over-month comparison, next-bill projection
// and usage-level alerting. Nothing here mutates the history.
package analytics

import billing "utility-billing/internal/billing/domain"

// HighUsageThresholdPct is the usage growth above which the comparison
// carries a high-usage advisory.
const HighUsageThresholdPct = 20.0

// Comparison is the result of comparing the latest two bills.
// Percentages are relative to the previous bill; when the previous
// value is zero the percentage is undefined and its OK flag is false.
type Comparison struct {
	Current  *billing.Bill
	Previous *billing.Bill

	UsageDiff      float64
	UsageDiffPct   float64
	UsageDiffPctOK bool

	AmountDiff      float64
	AmountDiffPct   float64
	AmountDiffPctOK bool

	// HighUsage advises when usage grew by more than the threshold.
	HighUsage bool
}

// CompareLatestTwo compares the two most recent bills. Requires at
// least two bills on record.
func CompareLatestTwo(history *billing.History) (Comparison, error) {
	bills := history.All()
	if len(bills) < 2 {
		return Comparison{}, ErrInsufficientData
	}

	current := bills[len(bills)-1]
	previous := bills[len(bills)-2]

	cmp := Comparison{
		Current:    current,
		Previous:   previous,
		UsageDiff:  current.TotalUsage - previous.TotalUsage,
		AmountDiff: current.Amount - previous.Amount,
	}
	if previous.TotalUsage != 0 {
		cmp.UsageDiffPct = cmp.UsageDiff / previous.TotalUsage * 100
		cmp.UsageDiffPctOK = true
	}
	if previous.Amount != 0 {
		cmp.AmountDiffPct = cmp.AmountDiff / previous.Amount * 100
		cmp.AmountDiffPctOK = true
	}
	cmp.HighUsage = cmp.UsageDiffPctOK && cmp.UsageDiffPct > HighUsageThresholdPct
	return cmp, nil
}
