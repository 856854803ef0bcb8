package billing

// ComputeAmount prices a bill: base charge plus tiered usage charges,
// plus time-of-use charges, with tax applied to the full pre-tax amount.
// Deterministic and monotonically non-decreasing in usage and in either
// split component for any valid schedule.
func ComputeAmount(schedule RateSchedule, totalUsage float64, split UsageSplit) float64 {
	amount := schedule.BaseCharge

	switch {
	case totalUsage <= Tier1Limit:
		amount += totalUsage * schedule.Tier1Rate
	case totalUsage <= Tier2Limit:
		amount += Tier1Limit*schedule.Tier1Rate + (totalUsage-Tier1Limit)*schedule.Tier2Rate
	default:
		amount += Tier1Limit*schedule.Tier1Rate +
			(Tier2Limit-Tier1Limit)*schedule.Tier2Rate +
			(totalUsage-Tier2Limit)*schedule.Tier3Rate
	}

	amount += split.PeakUnits * schedule.PeakRate
	amount += split.OffPeakUnits * schedule.OffPeakRate

	amount += amount * schedule.TaxRate
	return amount
}
