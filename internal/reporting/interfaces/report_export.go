package interfaces

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	billing "utility-billing/internal/billing/domain"
	"utility-billing/internal/reporting"
)

// ReportFileName returns the dated base name for report files, without
// extension (report_DD_MM_YYYY).
func ReportFileName(report reporting.PeriodReport) string {
	generated := report.GeneratedAt
	return fmt.Sprintf("report_%02d_%02d_%d", generated.Day(), int(generated.Month()), generated.Year())
}

// WriteTextReport writes the plain-text report into dir and returns the
// file path.
func WriteTextReport(dir string, report reporting.PeriodReport) (string, error) {
	path := filepath.Join(dir, ReportFileName(report)+".txt")
	if err := os.WriteFile(path, []byte(reporting.RenderText(report)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// BuildReportPDF renders the period report as a PDF document.
func BuildReportPDF(report reporting.PeriodReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Electric Billing System Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %02d/%d", int(report.Period.Month), report.Period.Year))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2006-01-02")))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Customer Summary")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total Customers: %d", report.TotalCustomers))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Active: %d (%.1f%%)   Inactive: %d (%.1f%%)",
		report.ActiveCustomers, report.ActivePct, report.InactiveCustomers, report.InactivePct))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Billing Summary")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Bills Generated: %d   Paid: %d (%.1f%%)   Unpaid: %d (%.1f%%)",
		report.BillsGenerated, report.BillsPaid, report.PaidPct, report.BillsUnpaid, report.UnpaidPct))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Billed: $%.2f   Collected: $%.2f (%.1f%%)   Outstanding: $%.2f (%.1f%%)",
		report.TotalBilled, report.TotalCollected, report.CollectedPct, report.TotalOutstanding, report.OutstandingPct))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Usage: %.2f units   Peak: %.2f (%.1f%%)   Off-Peak: %.2f (%.1f%%)",
		report.TotalUsage, report.PeakUsage, report.PeakPct, report.OffPeakUsage, report.OffPeakPct))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Usage By Customer Type")
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(40, 6, "Class", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Customers", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Usage (units)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, class := range billing.Classes() {
		breakdown := report.Classes[class]
		pdf.CellFormat(40, 6, class.Display(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", breakdown.Customers), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", breakdown.Usage), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", breakdown.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Top Consumers")
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(15, 6, "Rank", "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 6, "Customer", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Meter", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Usage (units)", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, rank := range report.TopConsumers {
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", rank.Rank), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 6, rank.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, rank.MeterNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", rank.Usage), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Payment Methods")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 9)
	for _, stat := range report.PaymentMethods {
		pdf.Cell(0, 5, fmt.Sprintf("%s: %d payments, $%.2f (%.1f%%)", stat.Method, stat.Count, stat.Amount, stat.Pct))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildReportXLSX renders the period report as an XLSX workbook.
func BuildReportXLSX(report reporting.PeriodReport) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	consumersSheet := "top_consumers"
	paymentsSheet := "payments"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(consumersSheet)
	f.NewSheet(paymentsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Electric Billing System Report")
	_ = f.SetCellValue(summarySheet, "A2", "Period")
	_ = f.SetCellValue(summarySheet, "B2", fmt.Sprintf("%02d/%d", int(report.Period.Month), report.Period.Year))
	_ = f.SetCellValue(summarySheet, "A3", "Generated")
	_ = f.SetCellValue(summarySheet, "B3", report.GeneratedAt.Format("2006-01-02"))
	_ = f.SetCellValue(summarySheet, "A5", "Total Customers")
	_ = f.SetCellValue(summarySheet, "B5", report.TotalCustomers)
	_ = f.SetCellValue(summarySheet, "A6", "Active Customers")
	_ = f.SetCellValue(summarySheet, "B6", report.ActiveCustomers)
	_ = f.SetCellValue(summarySheet, "A7", "Bills Generated")
	_ = f.SetCellValue(summarySheet, "B7", report.BillsGenerated)
	_ = f.SetCellValue(summarySheet, "A8", "Bills Paid")
	_ = f.SetCellValue(summarySheet, "B8", report.BillsPaid)
	_ = f.SetCellValue(summarySheet, "A9", "Total Billed")
	_ = f.SetCellValue(summarySheet, "B9", report.TotalBilled)
	_ = f.SetCellValue(summarySheet, "A10", "Total Collected")
	_ = f.SetCellValue(summarySheet, "B10", report.TotalCollected)
	_ = f.SetCellValue(summarySheet, "A11", "Total Outstanding")
	_ = f.SetCellValue(summarySheet, "B11", report.TotalOutstanding)
	_ = f.SetCellValue(summarySheet, "A12", "Total Usage (units)")
	_ = f.SetCellValue(summarySheet, "B12", report.TotalUsage)
	_ = f.SetCellValue(summarySheet, "A13", "Peak Usage (units)")
	_ = f.SetCellValue(summarySheet, "B13", report.PeakUsage)
	_ = f.SetCellValue(summarySheet, "A14", "Off-Peak Usage (units)")
	_ = f.SetCellValue(summarySheet, "B14", report.OffPeakUsage)

	row := 16
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Class")
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), "Customers")
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), "Usage (units)")
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), "Amount")
	for _, class := range billing.Classes() {
		row++
		breakdown := report.Classes[class]
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), class.Display())
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), breakdown.Customers)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), breakdown.Usage)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), breakdown.Amount)
	}

	_ = f.SetCellValue(consumersSheet, "A1", "Rank")
	_ = f.SetCellValue(consumersSheet, "B1", "Customer")
	_ = f.SetCellValue(consumersSheet, "C1", "Meter Number")
	_ = f.SetCellValue(consumersSheet, "D1", "Usage (units)")
	_ = f.SetCellValue(consumersSheet, "E1", "Amount")
	for i, rank := range report.TopConsumers {
		r := i + 2
		_ = f.SetCellValue(consumersSheet, fmt.Sprintf("A%d", r), rank.Rank)
		_ = f.SetCellValue(consumersSheet, fmt.Sprintf("B%d", r), rank.Name)
		_ = f.SetCellValue(consumersSheet, fmt.Sprintf("C%d", r), rank.MeterNumber)
		_ = f.SetCellValue(consumersSheet, fmt.Sprintf("D%d", r), rank.Usage)
		_ = f.SetCellValue(consumersSheet, fmt.Sprintf("E%d", r), rank.Amount)
	}

	_ = f.SetCellValue(paymentsSheet, "A1", "Payment Method")
	_ = f.SetCellValue(paymentsSheet, "B1", "Count")
	_ = f.SetCellValue(paymentsSheet, "C1", "Amount")
	_ = f.SetCellValue(paymentsSheet, "D1", "Percentage")
	for i, stat := range report.PaymentMethods {
		r := i + 2
		_ = f.SetCellValue(paymentsSheet, fmt.Sprintf("A%d", r), stat.Method)
		_ = f.SetCellValue(paymentsSheet, fmt.Sprintf("B%d", r), stat.Count)
		_ = f.SetCellValue(paymentsSheet, fmt.Sprintf("C%d", r), stat.Amount)
		_ = f.SetCellValue(paymentsSheet, fmt.Sprintf("D%d", r), stat.Pct)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReportExports writes the PDF and XLSX renditions next to the
// text report and returns their paths.
func WriteReportExports(dir string, report reporting.PeriodReport) (pdfPath, xlsxPath string, err error) {
	base := filepath.Join(dir, ReportFileName(report))

	pdfBytes, err := BuildReportPDF(report)
	if err != nil {
		return "", "", err
	}
	pdfPath = base + ".pdf"
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return "", "", err
	}

	xlsxBytes, err := BuildReportXLSX(report)
	if err != nil {
		return "", "", err
	}
	xlsxPath = base + ".xlsx"
	if err := os.WriteFile(xlsxPath, xlsxBytes, 0o644); err != nil {
		return "", "", err
	}
	return pdfPath, xlsxPath, nil
}
