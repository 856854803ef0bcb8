package analytics

import billing "utility-billing/internal/billing/domain"

// defaultPeakRatio is assumed when the latest bill has no usage to
// derive a time-of-use ratio from.
const defaultPeakRatio = 0.3

// Projection estimates the next bill from the usage trend.
type Projection struct {
	ProjectedUsage  float64
	ProjectedSplit  billing.UsageSplit
	ProjectedAmount float64

	LastUsage  float64
	LastAmount float64
}

// ProjectNext projects the next bill: latest usage plus the average
// month-over-month delta, split by the latest bill's peak ratio, priced
// with the given schedule. Requires at least one bill.
func ProjectNext(history *billing.History, schedule billing.RateSchedule) (Projection, error) {
	bills := history.All()
	if len(bills) == 0 {
		return Projection{}, ErrInsufficientData
	}

	latest := bills[len(bills)-1]

	var avgDelta float64
	if len(bills) > 1 {
		var total float64
		for i := 1; i < len(bills); i++ {
			total += bills[i].TotalUsage - bills[i-1].TotalUsage
		}
		avgDelta = total / float64(len(bills)-1)
	}

	projectedUsage := latest.TotalUsage + avgDelta

	peakRatio := defaultPeakRatio
	if latest.TotalUsage > 0 {
		peakRatio = latest.Split.PeakUnits / latest.TotalUsage
	}
	split := billing.UsageSplit{
		PeakUnits:    projectedUsage * peakRatio,
		OffPeakUnits: projectedUsage * (1 - peakRatio),
	}

	return Projection{
		ProjectedUsage:  projectedUsage,
		ProjectedSplit:  split,
		ProjectedAmount: billing.ComputeAmount(schedule, projectedUsage, split),
		LastUsage:       latest.TotalUsage,
		LastAmount:      latest.Amount,
	}, nil
}
