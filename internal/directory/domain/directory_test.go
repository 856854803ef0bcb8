package directory

import (
	"errors"
	"testing"
	"time"

	billing "utility-billing/internal/billing/domain"
)

func testProfile(meter string) Profile {
	return Profile{
		Name:        "Ada Lovelace",
		Address:     "12 Analytical Lane",
		Phone:       "555-0100",
		Email:       "ada@example.com",
		Class:       billing.ClassResidential,
		MeterNumber: meter,
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	dir := NewDirectory(100, 1001, 12)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	first, err := dir.Add(testProfile("MTR-001"), today)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := dir.Add(testProfile("MTR-002"), today)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if first.ID != 1001 || second.ID != 1002 {
		t.Fatalf("ids = %d, %d, want 1001, 1002", first.ID, second.ID)
	}
	if !first.Active {
		t.Fatalf("new customer must be active")
	}
	if !first.ConnectionDate.Equal(today) {
		t.Fatalf("connection date = %v", first.ConnectionDate)
	}
	if first.History == nil || first.History.Len() != 0 {
		t.Fatalf("new customer must start with an empty history")
	}
}

func TestAddRejectsDuplicateMeter(t *testing.T) {
	dir := NewDirectory(100, 1001, 12)
	if _, err := dir.Add(testProfile("MTR-001"), time.Now()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := dir.Add(testProfile("MTR-001"), time.Now()); !errors.Is(err, ErrDuplicateMeter) {
		t.Fatalf("expected ErrDuplicateMeter, got %v", err)
	}
	if dir.Len() != 1 {
		t.Fatalf("failed add mutated the directory")
	}
}

func TestAddRejectsBeyondCapacity(t *testing.T) {
	dir := NewDirectory(1, 1001, 12)
	if _, err := dir.Add(testProfile("MTR-001"), time.Now()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := dir.Add(testProfile("MTR-002"), time.Now()); !errors.Is(err, ErrDirectoryFull) {
		t.Fatalf("expected ErrDirectoryFull, got %v", err)
	}
}

func TestAddValidatesProfile(t *testing.T) {
	dir := NewDirectory(100, 1001, 12)

	profile := testProfile("MTR-001")
	profile.Name = "  "
	if _, err := dir.Add(profile, time.Now()); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}

	profile = testProfile("  ")
	if _, err := dir.Add(profile, time.Now()); !errors.Is(err, ErrEmptyMeterNumber) {
		t.Fatalf("expected ErrEmptyMeterNumber, got %v", err)
	}

	profile = testProfile("MTR-001")
	profile.Class = "agricultural"
	if _, err := dir.Add(profile, time.Now()); !errors.Is(err, billing.ErrUnknownClass) {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
}

func TestLookupAndSearch(t *testing.T) {
	dir := NewDirectory(100, 1001, 12)
	alice := testProfile("MTR-001")
	alice.Name = "Alice Watt"
	alice.Phone = "555-0101"
	bob := testProfile("MTR-002")
	bob.Name = "Bob Ohm"
	bob.Phone = "555-0202"

	if _, err := dir.Add(alice, time.Now()); err != nil {
		t.Fatalf("add: %v", err)
	}
	added, err := dir.Add(bob, time.Now())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	found, err := dir.FindByMeter("MTR-002")
	if err != nil {
		t.Fatalf("find by meter: %v", err)
	}
	if found.Name != "Bob Ohm" {
		t.Fatalf("found %q", found.Name)
	}

	if _, err := dir.FindByMeter("MTR-999"); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	byID, err := dir.FindByID(added.ID)
	if err != nil || byID != found {
		t.Fatalf("find by id: %v", err)
	}

	if got := dir.SearchByName("Watt"); len(got) != 1 || got[0].Name != "Alice Watt" {
		t.Fatalf("search by name returned %d results", len(got))
	}
	if got := dir.SearchByMeter("MTR-"); len(got) != 2 {
		t.Fatalf("search by meter returned %d results", len(got))
	}
	if got := dir.SearchByPhone("0202"); len(got) != 1 || got[0].Name != "Bob Ohm" {
		t.Fatalf("search by phone returned %d results", len(got))
	}
}

func TestNextBillIDIsMonotonic(t *testing.T) {
	dir := NewDirectory(100, 1001, 12)
	first := dir.NextBillID()
	second := dir.NextBillID()
	if second != first+1 {
		t.Fatalf("bill ids not monotonic: %d then %d", first, second)
	}
}

func TestRestoreReappliesCapacitiesAndBillSequence(t *testing.T) {
	dir := NewDirectory(100, 1001, 5)

	state := State{
		Customers: []*Customer{
			{
				ID:          1001,
				Name:        "Ada Lovelace",
				MeterNumber: "MTR-001",
				Class:       billing.ClassResidential,
				Active:      true,
				History: &billing.History{Bills: []*billing.Bill{
					{ID: 7, TotalUsage: 100},
					{ID: 9, TotalUsage: 120},
				}},
			},
			{
				ID:          1002,
				Name:        "Bob Ohm",
				MeterNumber: "MTR-002",
				Class:       billing.ClassCommercial,
				Active:      true,
			},
		},
	}

	if err := dir.Restore(state); err != nil {
		t.Fatalf("restore: %v", err)
	}

	restored, err := dir.FindByMeter("MTR-001")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if restored.History.Capacity != 5 {
		t.Fatalf("history capacity = %d, want 5", restored.History.Capacity)
	}

	second, err := dir.FindByMeter("MTR-002")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if second.History == nil {
		t.Fatalf("restore must backfill a missing history")
	}

	// Sequence resumes above the highest persisted bill id.
	if got := dir.NextBillID(); got != 10 {
		t.Fatalf("next bill id = %d, want 10", got)
	}
}

func TestRestoreRejectsOverCapacityState(t *testing.T) {
	dir := NewDirectory(1, 1001, 12)
	state := State{Customers: []*Customer{
		{ID: 1001, MeterNumber: "MTR-001"},
		{ID: 1002, MeterNumber: "MTR-002"},
	}}
	if err := dir.Restore(state); !errors.Is(err, ErrDirectoryFull) {
		t.Fatalf("expected ErrDirectoryFull, got %v", err)
	}
}
