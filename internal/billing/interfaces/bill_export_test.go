package interfaces

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	billing "utility-billing/internal/billing/domain"
	directory "utility-billing/internal/directory/domain"
)

func sampleBill() (*directory.Customer, *billing.Bill) {
	issue := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)
	customer := &directory.Customer{
		ID:          1001,
		Name:        "Alice",
		Address:     "12 Grid St",
		MeterNumber: "MTR-1",
		Class:       billing.ClassResidential,
		Active:      true,
	}
	bill := &billing.Bill{
		ID:         7,
		IssueDate:  issue,
		DueDate:    issue.AddDate(0, 0, billing.DueDays),
		MeterStart: 100,
		MeterEnd:   250,
		TotalUsage: 150,
		Split:      billing.UsageSplit{PeakUnits: 50, OffPeakUnits: 100},
		Amount:     892.5,
	}
	return customer, bill
}

func TestBuildBillPDF(t *testing.T) {
	customer, bill := sampleBill()
	data, err := BuildBillPDF(customer, bill)
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:8])
	}
}

func TestWriteBillPDF(t *testing.T) {
	customer, bill := sampleBill()
	path, err := WriteBillPDF(t.TempDir(), customer, bill)
	if err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if filepath.Base(path) != "bill_7.pdf" {
		t.Fatalf("path = %q", path)
	}
}
