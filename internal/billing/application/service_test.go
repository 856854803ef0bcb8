package application

import (
	"errors"
	"io"
	"log"
	"testing"
	"time"

	billing "utility-billing/internal/billing/domain"
	directory "utility-billing/internal/directory/domain"
)

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time { return c.now }

type stubStore struct {
	state   directory.State
	found   bool
	loadErr error
	saveErr error
	saves   int
}

func (s *stubStore) Load() (directory.State, bool, error) {
	return s.state, s.found, s.loadErr
}

func (s *stubStore) Save(state directory.State) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.state = state
	return nil
}

func newTestService(t *testing.T, store SnapshotStore) *Service {
	t.Helper()
	dir := directory.NewDirectory(10, 1001, 12)
	clock := stubClock{now: time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)}
	svc, err := NewService(dir, billing.DefaultRateTable(), store, clock, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func testProfile(meter string) directory.Profile {
	return directory.Profile{
		Name:        "Alice",
		Address:     "12 Grid St",
		Phone:       "555-0100",
		Email:       "alice@example.com",
		Class:       billing.ClassResidential,
		MeterNumber: meter,
	}
}

func TestAddCustomerPersists(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(t, store)

	customer, err := svc.AddCustomer(testProfile("MTR-1"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if customer.ID != 1001 {
		t.Fatalf("customer id = %d, want 1001", customer.ID)
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}
	if len(store.state.Customers) != 1 {
		t.Fatalf("snapshot customers = %d", len(store.state.Customers))
	}
}

func TestAddCustomerRejectionDoesNotPersist(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(t, store)

	if _, err := svc.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddCustomer(testProfile("MTR-1")); !errors.Is(err, directory.ErrDuplicateMeter) {
		t.Fatalf("expected ErrDuplicateMeter, got %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d, rejected add must not persist", store.saves)
	}
}

func TestGenerateBillUsesClockAndPersists(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(t, store)
	if _, err := svc.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}

	bill, err := svc.GenerateBill("MTR-1", 150, billing.UsageSplit{PeakUnits: 50, OffPeakUnits: 100})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if bill.ID != 1 {
		t.Fatalf("bill id = %d, want 1", bill.ID)
	}
	issue := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	if !bill.IssueDate.Equal(issue) {
		t.Fatalf("issue date = %v", bill.IssueDate)
	}
	if !bill.DueDate.Equal(issue.AddDate(0, 0, billing.DueDays)) {
		t.Fatalf("due date = %v", bill.DueDate)
	}
	if bill.MeterStart != 0 || bill.MeterEnd != 150 || bill.TotalUsage != 150 {
		t.Fatalf("meter figures = %v/%v/%v", bill.MeterStart, bill.MeterEnd, bill.TotalUsage)
	}
	if store.saves != 2 {
		t.Fatalf("saves = %d, want 2", store.saves)
	}
}

func TestGenerateBillRegressionLeavesHistory(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(t, store)
	if _, err := svc.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.GenerateBill("MTR-1", 150, billing.UsageSplit{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	saves := store.saves

	if _, err := svc.GenerateBill("MTR-1", 100, billing.UsageSplit{}); !errors.Is(err, billing.ErrMeterReadingRegressed) {
		t.Fatalf("expected ErrMeterReadingRegressed, got %v", err)
	}
	bills, err := svc.PaymentHistory("MTR-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("history length = %d after rejected generate", len(bills))
	}
	if store.saves != saves {
		t.Fatalf("rejected generate must not persist")
	}
}

func TestGenerateBillUnknownMeter(t *testing.T) {
	svc := newTestService(t, &stubStore{})
	if _, err := svc.GenerateBill("MTR-404", 100, billing.UsageSplit{}); !errors.Is(err, directory.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestRecordPayment(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(t, store)
	if _, err := svc.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.GenerateBill("MTR-1", 150, billing.UsageSplit{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	bill, err := svc.RecordPayment("MTR-1", 0, "cash")
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if !bill.Paid || bill.PaymentMethod != "cash" {
		t.Fatalf("bill = %+v", bill)
	}
	if !bill.PaymentDate.Equal(time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("payment date = %v", bill.PaymentDate)
	}

	saves := store.saves
	if _, err := svc.RecordPayment("MTR-1", 0, "card"); !errors.Is(err, billing.ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
	if bill.PaymentMethod != "cash" {
		t.Fatalf("second payment changed the bill: %+v", bill)
	}
	if store.saves != saves {
		t.Fatalf("rejected payment must not persist")
	}
}

func TestRecordPaymentBadIndex(t *testing.T) {
	svc := newTestService(t, &stubStore{})
	if _, err := svc.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.RecordPayment("MTR-1", 3, "cash"); !errors.Is(err, billing.ErrBillNotFound) {
		t.Fatalf("expected ErrBillNotFound, got %v", err)
	}
}

func TestLatestBillNoBills(t *testing.T) {
	svc := newTestService(t, &stubStore{})
	if _, err := svc.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.LatestBill("MTR-1"); !errors.Is(err, billing.ErrNoBills) {
		t.Fatalf("expected ErrNoBills, got %v", err)
	}
}

func TestLoadRestoresSnapshot(t *testing.T) {
	seed := newTestService(t, &stubStore{})
	if _, err := seed.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := seed.GenerateBill("MTR-1", 150, billing.UsageSplit{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	store := &stubStore{state: seed.dir.State(), found: true}
	svc := newTestService(t, store)
	if err := svc.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	customer, err := svc.Customer("MTR-1")
	if err != nil {
		t.Fatalf("restored customer missing: %v", err)
	}
	if customer.History.Len() != 1 {
		t.Fatalf("restored history length = %d", customer.History.Len())
	}

	// The bill sequence continues after the restored bill.
	bill, err := svc.GenerateBill("MTR-1", 200, billing.UsageSplit{})
	if err != nil {
		t.Fatalf("generate after load: %v", err)
	}
	if bill.ID != 2 {
		t.Fatalf("bill id = %d, want 2", bill.ID)
	}
}

func TestLoadNoSnapshot(t *testing.T) {
	svc := newTestService(t, &stubStore{found: false})
	if err := svc.Load(); err != nil {
		t.Fatalf("load without snapshot: %v", err)
	}
	if len(svc.ListCustomers()) != 0 {
		t.Fatalf("directory should stay empty")
	}
}

func TestLoadPropagatesStoreError(t *testing.T) {
	wantErr := errors.New("disk gone")
	svc := newTestService(t, &stubStore{loadErr: wantErr})
	if err := svc.Load(); !errors.Is(err, wantErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestUpdateClassAffectsFutureBills(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(t, store)
	if _, err := svc.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.GenerateBill("MTR-1", 100, billing.UsageSplit{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := svc.UpdateClass("MTR-1", billing.ClassCommercial); err != nil {
		t.Fatalf("update class: %v", err)
	}

	bill, err := svc.GenerateBill("MTR-1", 200, billing.UsageSplit{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// 100 units at commercial: 100 + 100*5.0, then 7% tax.
	want := (100 + 100*5.0) * 1.07
	if diff := bill.Amount - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("amount = %v, want %v under the new class", bill.Amount, want)
	}

	first, err := svc.Bill("MTR-1", 0)
	if err != nil {
		t.Fatalf("bill: %v", err)
	}
	if first.Amount != (50+100*3.5)*1.05 {
		t.Fatalf("past bill recomputed: %v", first.Amount)
	}
}

func TestUpdateClassRejectsUnknown(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(t, store)
	if _, err := svc.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	saves := store.saves
	if err := svc.UpdateClass("MTR-1", billing.CustomerClass("municipal")); !errors.Is(err, billing.ErrUnknownClass) {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
	if store.saves != saves {
		t.Fatalf("rejected update must not persist")
	}
}

func TestSearchDelegation(t *testing.T) {
	svc := newTestService(t, &stubStore{})
	profile := testProfile("MTR-1")
	profile.Name = "Grace Hopper"
	if _, err := svc.AddCustomer(profile); err != nil {
		t.Fatalf("add: %v", err)
	}

	if got := svc.SearchByName("Hopper"); len(got) != 1 {
		t.Fatalf("name search = %d matches", len(got))
	}
	if got := svc.SearchByMeter("MTR"); len(got) != 1 {
		t.Fatalf("meter search = %d matches", len(got))
	}
	if got := svc.SearchByPhone("0100"); len(got) != 1 {
		t.Fatalf("phone search = %d matches", len(got))
	}
	if _, err := svc.CustomerByID(1001); err != nil {
		t.Fatalf("id lookup: %v", err)
	}
}

func TestMonthlyReportUsesClock(t *testing.T) {
	svc := newTestService(t, &stubStore{})
	if _, err := svc.AddCustomer(testProfile("MTR-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.GenerateBill("MTR-1", 100, billing.UsageSplit{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	report := svc.MonthlyReport()
	if report.Period.Month != time.August || report.Period.Year != 2026 {
		t.Fatalf("period = %+v", report.Period)
	}
	if report.BillsGenerated != 1 {
		t.Fatalf("bills in period = %d, want 1", report.BillsGenerated)
	}
}
