package interfaces

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	billing "utility-billing/internal/billing/domain"
	directory "utility-billing/internal/directory/domain"
)

// BuildBillPDF renders a printable single-bill document.
func BuildBillPDF(customer *directory.Customer, bill *billing.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Electric Bill")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Bill ID: %d", bill.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", bill.IssueDate.Format("02/01/2006")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Due Date: %s", bill.DueDate.Format("02/01/2006")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Customer ID: %d", customer.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Name: %s", customer.Name))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Address: %s", customer.Address))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Meter Number: %s", customer.MeterNumber))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Customer Type: %s", customer.Class.Display()))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 6, "Reading", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Units", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	rows := []struct {
		label string
		value float64
	}{
		{"Previous Reading", bill.MeterStart},
		{"Current Reading", bill.MeterEnd},
		{"Total Consumption", bill.TotalUsage},
		{"Peak Hours Usage (2pm-8pm)", bill.Split.PeakUnits},
		{"Off-Peak Hours Usage (8pm-2pm)", bill.Split.OffPeakUnits},
	}
	for _, row := range rows {
		pdf.CellFormat(70, 6, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", row.value), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total Amount Due: $%.2f", bill.Amount))
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	status := "Unpaid"
	if bill.Paid {
		status = "Paid"
	}
	pdf.Cell(0, 6, fmt.Sprintf("Payment Status: %s", status))
	pdf.Ln(5)
	if bill.Paid {
		pdf.Cell(0, 6, fmt.Sprintf("Payment Date: %s", bill.PaymentDate.Format("02/01/2006")))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("Payment Method: %s", bill.PaymentMethod))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteBillPDF writes the bill document into dir and returns the file
// path (bill_<id>.pdf).
func WriteBillPDF(dir string, customer *directory.Customer, bill *billing.Bill) (string, error) {
	data, err := BuildBillPDF(customer, bill)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("bill_%d.pdf", bill.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
