// Package reporting aggregates billing history across the whole
// directory into a period summary. It only reads customer state.
package reporting

import (
	"sort"
	"time"

	billing "utility-billing/internal/billing/domain"
	directory "utility-billing/internal/directory/domain"
)

// TopConsumerCount limits the consumer ranking.
const TopConsumerCount = 5

// Period scopes a report to one calendar month.
type Period struct {
	Month time.Month
	Year  int
}

// Contains reports whether a date falls in the period.
func (p Period) Contains(date time.Time) bool {
	return !date.IsZero() && date.Month() == p.Month && date.Year() == p.Year
}

// ClassBreakdown is the per-class slice of the report.
type ClassBreakdown struct {
	Customers   int
	CustomerPct float64
	Usage       float64
	UsagePct    float64
	Amount      float64
	AmountPct   float64
}

// ConsumerRank is one row of the top-consumer ranking.
type ConsumerRank struct {
	Rank        int
	Name        string
	MeterNumber string
	Usage       float64
	Amount      float64
}

// PaymentMethodStat summarizes bills paid within the period by method.
type PaymentMethodStat struct {
	Method string
	Count  int
	Amount float64
	Pct    float64
}

// PeriodReport is the aggregate report over one month. All percentages
// report 0 when their denominator is zero.
type PeriodReport struct {
	Period      Period
	GeneratedAt time.Time

	TotalCustomers    int
	ActiveCustomers   int
	InactiveCustomers int
	ActivePct         float64
	InactivePct       float64

	Classes map[billing.CustomerClass]ClassBreakdown

	BillsGenerated int
	BillsPaid      int
	BillsUnpaid    int
	PaidPct        float64
	UnpaidPct      float64

	TotalBilled      float64
	TotalCollected   float64
	TotalOutstanding float64
	CollectedPct     float64
	OutstandingPct   float64

	TotalUsage   float64
	PeakUsage    float64
	OffPeakUsage float64
	PeakPct      float64
	OffPeakPct   float64

	TopConsumers   []ConsumerRank
	PaymentMethods []PaymentMethodStat
}

// BuildPeriodReport aggregates all customers' histories over the given
// period. Billing figures cover bills issued in-period; the payment
// method breakdown covers bills paid in-period.
func BuildPeriodReport(customers []*directory.Customer, period Period, generatedAt time.Time) PeriodReport {
	report := PeriodReport{
		Period:      period,
		GeneratedAt: generatedAt,
		Classes:     make(map[billing.CustomerClass]ClassBreakdown, len(billing.Classes())),
	}

	type consumerTotals struct {
		customer *directory.Customer
		usage    float64
		amount   float64
	}
	var rankings []consumerTotals
	methodIndex := make(map[string]int)

	for _, customer := range customers {
		report.TotalCustomers++
		if customer.Active {
			report.ActiveCustomers++
		}
		breakdown := report.Classes[customer.Class]
		breakdown.Customers++

		totals := consumerTotals{customer: customer}
		for _, bill := range customer.History.All() {
			if period.Contains(bill.IssueDate) {
				report.BillsGenerated++
				report.TotalBilled += bill.Amount
				report.TotalUsage += bill.TotalUsage
				report.PeakUsage += bill.Split.PeakUnits
				report.OffPeakUsage += bill.Split.OffPeakUnits
				breakdown.Usage += bill.TotalUsage
				breakdown.Amount += bill.Amount
				totals.usage += bill.TotalUsage
				totals.amount += bill.Amount
				if bill.Paid {
					report.BillsPaid++
					report.TotalCollected += bill.Amount
				} else {
					report.TotalOutstanding += bill.Amount
				}
			}
			if bill.Paid && period.Contains(bill.PaymentDate) {
				idx, seen := methodIndex[bill.PaymentMethod]
				if !seen {
					idx = len(report.PaymentMethods)
					methodIndex[bill.PaymentMethod] = idx
					report.PaymentMethods = append(report.PaymentMethods, PaymentMethodStat{Method: bill.PaymentMethod})
				}
				report.PaymentMethods[idx].Count++
				report.PaymentMethods[idx].Amount += bill.Amount
			}
		}
		report.Classes[customer.Class] = breakdown

		if totals.usage > 0 {
			rankings = append(rankings, totals)
		}
	}

	report.InactiveCustomers = report.TotalCustomers - report.ActiveCustomers
	report.BillsUnpaid = report.BillsGenerated - report.BillsPaid

	report.ActivePct = pct(float64(report.ActiveCustomers), float64(report.TotalCustomers))
	report.InactivePct = pct(float64(report.InactiveCustomers), float64(report.TotalCustomers))
	report.PaidPct = pct(float64(report.BillsPaid), float64(report.BillsGenerated))
	report.UnpaidPct = pct(float64(report.BillsUnpaid), float64(report.BillsGenerated))
	report.CollectedPct = pct(report.TotalCollected, report.TotalBilled)
	report.OutstandingPct = pct(report.TotalOutstanding, report.TotalBilled)
	report.PeakPct = pct(report.PeakUsage, report.TotalUsage)
	report.OffPeakPct = pct(report.OffPeakUsage, report.TotalUsage)

	for class, breakdown := range report.Classes {
		breakdown.CustomerPct = pct(float64(breakdown.Customers), float64(report.TotalCustomers))
		breakdown.UsagePct = pct(breakdown.Usage, report.TotalUsage)
		breakdown.AmountPct = pct(breakdown.Amount, report.TotalBilled)
		report.Classes[class] = breakdown
	}

	// Stable sort keeps directory order for equal usage.
	sort.SliceStable(rankings, func(i, j int) bool { return rankings[i].usage > rankings[j].usage })
	top := len(rankings)
	if top > TopConsumerCount {
		top = TopConsumerCount
	}
	for i := 0; i < top; i++ {
		report.TopConsumers = append(report.TopConsumers, ConsumerRank{
			Rank:        i + 1,
			Name:        rankings[i].customer.Name,
			MeterNumber: rankings[i].customer.MeterNumber,
			Usage:       rankings[i].usage,
			Amount:      rankings[i].amount,
		})
	}

	collected := report.TotalCollected
	for i := range report.PaymentMethods {
		report.PaymentMethods[i].Pct = pct(report.PaymentMethods[i].Amount, collected)
	}

	return report
}

func pct(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
