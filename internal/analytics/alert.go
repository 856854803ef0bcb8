package analytics

import billing "utility-billing/internal/billing/domain"

// UsageLevel classifies the latest usage against the running average.
type UsageLevel string

const (
	LevelHigh   UsageLevel = "high"
	LevelLow    UsageLevel = "low"
	LevelNormal UsageLevel = "normal"
)

// Classification thresholds relative to the average usage, and the peak
// share above which shifting load to off-peak is advised.
const (
	highUsageFactor      = 1.2
	lowUsageFactor       = 0.8
	peakShareAdvisoryPct = 40.0
)

// Alert is the usage analysis for a customer.
type Alert struct {
	Level        UsageLevel
	MagnitudePct float64

	LatestUsage  float64
	AverageUsage float64

	MonthlyChangePct float64
	MonthlyChangeOK  bool

	PeakSharePct float64
	// ShiftToOffPeak advises moving load off the peak window.
	ShiftToOffPeak bool
}

// UsageAlert analyzes the latest bill against the whole history.
// Requires at least one bill.
func UsageAlert(history *billing.History) (Alert, error) {
	bills := history.All()
	if len(bills) == 0 {
		return Alert{}, ErrInsufficientData
	}

	latest := bills[len(bills)-1]

	var totalUsage float64
	for _, bill := range bills {
		totalUsage += bill.TotalUsage
	}
	average := totalUsage / float64(len(bills))

	alert := Alert{
		Level:        LevelNormal,
		LatestUsage:  latest.TotalUsage,
		AverageUsage: average,
		PeakSharePct: latest.PeakSharePct(),
	}
	alert.ShiftToOffPeak = alert.PeakSharePct > peakShareAdvisoryPct

	// The latest bill contributes to the average, so a zero average
	// implies zero latest usage: both branches below divide safely.
	switch {
	case latest.TotalUsage > average*highUsageFactor:
		alert.Level = LevelHigh
		alert.MagnitudePct = (latest.TotalUsage/average - 1) * 100
	case latest.TotalUsage < average*lowUsageFactor:
		alert.Level = LevelLow
		alert.MagnitudePct = (1 - latest.TotalUsage/average) * 100
	}

	if len(bills) > 1 {
		previous := bills[len(bills)-2]
		if previous.TotalUsage != 0 {
			alert.MonthlyChangePct = (latest.TotalUsage - previous.TotalUsage) / previous.TotalUsage * 100
			alert.MonthlyChangeOK = true
		}
	}

	return alert, nil
}
