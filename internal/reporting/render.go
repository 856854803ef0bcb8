package reporting

import (
	"fmt"
	"strings"

	billing "utility-billing/internal/billing/domain"
)

// RenderText renders the report as the plain-text document handed to
// the report sink.
func RenderText(report PeriodReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "===============================================\n")
	fmt.Fprintf(&b, "          ELECTRIC BILLING SYSTEM REPORT       \n")
	fmt.Fprintf(&b, "                %02d/%02d/%d                   \n",
		report.GeneratedAt.Day(), int(report.GeneratedAt.Month()), report.GeneratedAt.Year())
	fmt.Fprintf(&b, "===============================================\n\n")

	fmt.Fprintf(&b, "CUSTOMER SUMMARY\n")
	fmt.Fprintf(&b, "-----------------\n")
	fmt.Fprintf(&b, "Total Customers: %d\n", report.TotalCustomers)
	fmt.Fprintf(&b, "Active Customers: %d (%.1f%%)\n", report.ActiveCustomers, report.ActivePct)
	fmt.Fprintf(&b, "Inactive Customers: %d (%.1f%%)\n", report.InactiveCustomers, report.InactivePct)
	fmt.Fprintf(&b, "Customer Types:\n")
	for _, class := range billing.Classes() {
		breakdown := report.Classes[class]
		fmt.Fprintf(&b, "  - %s: %d (%.1f%%)\n", class.Display(), breakdown.Customers, breakdown.CustomerPct)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "BILLING SUMMARY FOR %02d/%d\n", int(report.Period.Month), report.Period.Year)
	fmt.Fprintf(&b, "------------------------\n")
	fmt.Fprintf(&b, "Bills Generated: %d\n", report.BillsGenerated)
	fmt.Fprintf(&b, "Bills Paid: %d (%.1f%%)\n", report.BillsPaid, report.PaidPct)
	fmt.Fprintf(&b, "Bills Unpaid: %d (%.1f%%)\n", report.BillsUnpaid, report.UnpaidPct)
	fmt.Fprintf(&b, "Total Billed Amount: $%.2f\n", report.TotalBilled)
	fmt.Fprintf(&b, "Total Collected Amount: $%.2f (%.1f%%)\n", report.TotalCollected, report.CollectedPct)
	fmt.Fprintf(&b, "Total Outstanding Amount: $%.2f (%.1f%%)\n", report.TotalOutstanding, report.OutstandingPct)
	fmt.Fprintf(&b, "Total Energy Usage: %.2f units\n\n", report.TotalUsage)

	fmt.Fprintf(&b, "USAGE BY CUSTOMER TYPE\n")
	fmt.Fprintf(&b, "---------------------\n")
	for _, class := range billing.Classes() {
		breakdown := report.Classes[class]
		fmt.Fprintf(&b, "%s:\n", class.Display())
		fmt.Fprintf(&b, "  - Usage: %.2f units (%.1f%%)\n", breakdown.Usage, breakdown.UsagePct)
		fmt.Fprintf(&b, "  - Amount: $%.2f (%.1f%%)\n", breakdown.Amount, breakdown.AmountPct)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "TIME OF USE ANALYSIS\n")
	fmt.Fprintf(&b, "-------------------\n")
	fmt.Fprintf(&b, "Peak Hours Usage (2pm-8pm): %.2f units (%.1f%%)\n", report.PeakUsage, report.PeakPct)
	fmt.Fprintf(&b, "Off-Peak Hours Usage (8pm-2pm): %.2f units (%.1f%%)\n\n", report.OffPeakUsage, report.OffPeakPct)

	fmt.Fprintf(&b, "TOP %d CONSUMERS\n", TopConsumerCount)
	fmt.Fprintf(&b, "-------------\n")
	fmt.Fprintf(&b, "%-5s %-20s %-15s %-15s %-15s\n", "Rank", "Customer Name", "Meter Number", "Usage (units)", "Amount ($)")
	fmt.Fprintf(&b, "----------------------------------------------------------------------\n")
	for _, rank := range report.TopConsumers {
		fmt.Fprintf(&b, "%-5d %-20s %-15s %-15.2f %-15.2f\n", rank.Rank, rank.Name, rank.MeterNumber, rank.Usage, rank.Amount)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "PAYMENT METHODS ANALYSIS\n")
	fmt.Fprintf(&b, "-----------------------\n")
	fmt.Fprintf(&b, "%-20s %-10s %-15s %-10s\n", "Payment Method", "Count", "Amount ($)", "Percentage")
	fmt.Fprintf(&b, "------------------------------------------------------\n")
	for _, stat := range report.PaymentMethods {
		fmt.Fprintf(&b, "%-20s %-10d %-15.2f %-10.1f%%\n", stat.Method, stat.Count, stat.Amount, stat.Pct)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "===============================================\n")
	fmt.Fprintf(&b, "               END OF REPORT                   \n")
	fmt.Fprintf(&b, "===============================================\n")

	return b.String()
}
