package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	billing "utility-billing/internal/billing/domain"
	directory "utility-billing/internal/directory/domain"
)

func TestLoadMissingFile(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "customers.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	state, found, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatalf("missing file reported as found")
	}
	if len(state.Customers) != 0 {
		t.Fatalf("missing file produced customers: %+v", state.Customers)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "customers.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	issue := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)
	state := directory.State{
		NextBillID: 8,
		Customers: []*directory.Customer{{
			ID:          1001,
			Name:        "Alice",
			MeterNumber: "MTR-1",
			Class:       billing.ClassResidential,
			Active:      true,
			History: &billing.History{Bills: []*billing.Bill{{
				ID:         7,
				IssueDate:  issue,
				DueDate:    issue.AddDate(0, 0, billing.DueDays),
				MeterEnd:   100,
				TotalUsage: 100,
				Amount:     425.25,
			}}},
		}},
	}
	if err := store.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, found, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatalf("saved snapshot not found")
	}
	if loaded.NextBillID != 8 {
		t.Fatalf("next bill id = %d, want 8", loaded.NextBillID)
	}
	if len(loaded.Customers) != 1 {
		t.Fatalf("customers = %d, want 1", len(loaded.Customers))
	}
	customer := loaded.Customers[0]
	if customer.ID != 1001 || customer.MeterNumber != "MTR-1" || customer.Class != billing.ClassResidential {
		t.Fatalf("customer = %+v", customer)
	}
	if customer.History == nil || customer.History.Len() != 1 {
		t.Fatalf("history not restored: %+v", customer.History)
	}
	bill := customer.History.Bills[0]
	if bill.ID != 7 || bill.Amount != 425.25 || !bill.IssueDate.Equal(issue) {
		t.Fatalf("bill = %+v", bill)
	}
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.json")
	if err := os.WriteFile(path, []byte(`{"version": 99, "customers": []}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, _, err := store.Load(); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, _, err := store.Load(); err == nil {
		t.Fatalf("corrupt snapshot must not load")
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "customers.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save(directory.State{NextBillID: 1}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(directory.State{NextBillID: 5}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, _, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.NextBillID != 5 {
		t.Fatalf("next bill id = %d, want the later snapshot", loaded.NextBillID)
	}
}

func TestNewStoreRejectsEmptyPath(t *testing.T) {
	if _, err := NewStore(""); err == nil {
		t.Fatalf("empty path must be rejected")
	}
}
