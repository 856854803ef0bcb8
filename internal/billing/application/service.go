package application

import (
	"errors"
	"log"
	"time"

	"utility-billing/internal/analytics"
	billing "utility-billing/internal/billing/domain"
	directory "utility-billing/internal/directory/domain"
	"utility-billing/internal/reporting"
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock uses time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// SnapshotStore persists the whole directory. Load's second return
// value is false when no snapshot exists yet.
type SnapshotStore interface {
	Load() (directory.State, bool, error)
	Save(directory.State) error
}

// Service is the application layer behind the interactive shell. One
// method per shell command; mutating methods persist the directory
// afterwards. Single-threaded by design, no locking.
type Service struct {
	dir    *directory.Directory
	rates  *billing.RateTable
	store  SnapshotStore
	clock  Clock
	logger *log.Logger
}

// NewService constructs the service. The store may be nil to disable
// persistence (tests).
func NewService(dir *directory.Directory, rates *billing.RateTable, store SnapshotStore, clock Clock, logger *log.Logger) (*Service, error) {
	if dir == nil {
		return nil, errors.New("billing service: nil directory")
	}
	if rates == nil {
		return nil, errors.New("billing service: nil rate table")
	}
	if logger == nil {
		return nil, errors.New("billing service: nil logger")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{dir: dir, rates: rates, store: store, clock: clock, logger: logger}, nil
}

// Load replaces the in-memory directory from the snapshot, if one
// exists.
func (s *Service) Load() error {
	if s.store == nil {
		return nil
	}
	state, found, err := s.store.Load()
	if err != nil {
		return err
	}
	if !found {
		s.logger.Printf("no existing data found at startup")
		return nil
	}
	if err := s.dir.Restore(state); err != nil {
		return err
	}
	s.logger.Printf("loaded %d customers", s.dir.Len())
	return nil
}

// Save persists the directory snapshot.
func (s *Service) Save() error {
	if s.store == nil {
		return nil
	}
	return s.store.Save(s.dir.State())
}

func (s *Service) persist() error {
	if err := s.Save(); err != nil {
		s.logger.Printf("snapshot save error: %v", err)
		return err
	}
	return nil
}

// AddCustomer registers a new customer and persists.
func (s *Service) AddCustomer(profile directory.Profile) (*directory.Customer, error) {
	customer, err := s.dir.Add(profile, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return customer, s.persist()
}

// Customer resolves a customer by meter number.
func (s *Service) Customer(meterNumber string) (*directory.Customer, error) {
	return s.dir.FindByMeter(meterNumber)
}

// GenerateBill issues a bill for the customer's current meter reading
// and persists. Either the bill is fully appended or the history is
// left unchanged.
func (s *Service) GenerateBill(meterNumber string, meterEnd float64, split billing.UsageSplit) (*billing.Bill, error) {
	customer, err := s.dir.FindByMeter(meterNumber)
	if err != nil {
		return nil, err
	}
	schedule, err := s.rates.Lookup(customer.Class)
	if err != nil {
		return nil, err
	}
	bill, err := customer.History.Generate(s.dir, meterEnd, split, schedule, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return bill, s.persist()
}

// LatestBill returns the customer's most recent bill.
func (s *Service) LatestBill(meterNumber string) (*billing.Bill, error) {
	customer, err := s.dir.FindByMeter(meterNumber)
	if err != nil {
		return nil, err
	}
	bill, ok := customer.History.Latest()
	if !ok {
		return nil, billing.ErrNoBills
	}
	return bill, nil
}

// Bill returns the bill at a history index.
func (s *Service) Bill(meterNumber string, index int) (*billing.Bill, error) {
	customer, err := s.dir.FindByMeter(meterNumber)
	if err != nil {
		return nil, err
	}
	bill, ok := customer.History.Bill(index)
	if !ok {
		return nil, billing.ErrBillNotFound
	}
	return bill, nil
}

// RecordPayment marks a bill paid and persists. Recording on a paid
// bill reports ErrAlreadyPaid and changes nothing.
func (s *Service) RecordPayment(meterNumber string, billIndex int, method string) (*billing.Bill, error) {
	customer, err := s.dir.FindByMeter(meterNumber)
	if err != nil {
		return nil, err
	}
	bill, ok := customer.History.Bill(billIndex)
	if !ok {
		return nil, billing.ErrBillNotFound
	}
	if err := bill.RecordPayment(method, s.clock.Now()); err != nil {
		return nil, err
	}
	return bill, s.persist()
}

// PaymentHistory returns the customer's bills in chronological order.
func (s *Service) PaymentHistory(meterNumber string) ([]*billing.Bill, error) {
	customer, err := s.dir.FindByMeter(meterNumber)
	if err != nil {
		return nil, err
	}
	return customer.History.All(), nil
}

// Compare compares the customer's latest two bills.
func (s *Service) Compare(meterNumber string) (analytics.Comparison, error) {
	customer, err := s.dir.FindByMeter(meterNumber)
	if err != nil {
		return analytics.Comparison{}, err
	}
	return analytics.CompareLatestTwo(customer.History)
}

// Project estimates the customer's next bill.
func (s *Service) Project(meterNumber string) (analytics.Projection, error) {
	customer, err := s.dir.FindByMeter(meterNumber)
	if err != nil {
		return analytics.Projection{}, err
	}
	schedule, err := s.rates.Lookup(customer.Class)
	if err != nil {
		return analytics.Projection{}, err
	}
	return analytics.ProjectNext(customer.History, schedule)
}

// Alert analyzes the customer's usage level.
func (s *Service) Alert(meterNumber string) (analytics.Alert, error) {
	customer, err := s.dir.FindByMeter(meterNumber)
	if err != nil {
		return analytics.Alert{}, err
	}
	return analytics.UsageAlert(customer.History)
}

// UpdateName changes the customer's name and persists.
func (s *Service) UpdateName(meterNumber, name string) error {
	return s.update(meterNumber, func(c *directory.Customer) error {
		if name == "" {
			return directory.ErrEmptyName
		}
		c.Name = name
		return nil
	})
}

// UpdateAddress changes the customer's address and persists.
func (s *Service) UpdateAddress(meterNumber, address string) error {
	return s.update(meterNumber, func(c *directory.Customer) error {
		c.Address = address
		return nil
	})
}

// UpdatePhone changes the customer's phone and persists.
func (s *Service) UpdatePhone(meterNumber, phone string) error {
	return s.update(meterNumber, func(c *directory.Customer) error {
		c.Phone = phone
		return nil
	})
}

// UpdateEmail changes the customer's email and persists.
func (s *Service) UpdateEmail(meterNumber, email string) error {
	return s.update(meterNumber, func(c *directory.Customer) error {
		c.Email = email
		return nil
	})
}

// UpdateClass changes the customer's tariff class and persists. It
// affects future bills only.
func (s *Service) UpdateClass(meterNumber string, class billing.CustomerClass) error {
	return s.update(meterNumber, func(c *directory.Customer) error {
		if !class.IsValid() {
			return billing.ErrUnknownClass
		}
		c.Class = class
		return nil
	})
}

// SetActive changes the customer's active flag and persists.
func (s *Service) SetActive(meterNumber string, active bool) error {
	return s.update(meterNumber, func(c *directory.Customer) error {
		c.Active = active
		return nil
	})
}

func (s *Service) update(meterNumber string, apply func(*directory.Customer) error) error {
	customer, err := s.dir.FindByMeter(meterNumber)
	if err != nil {
		return err
	}
	if err := apply(customer); err != nil {
		return err
	}
	return s.persist()
}

// ListCustomers returns every customer in directory order.
func (s *Service) ListCustomers() []*directory.Customer {
	return s.dir.All()
}

// SearchByName returns customers whose name contains the term.
func (s *Service) SearchByName(term string) []*directory.Customer {
	return s.dir.SearchByName(term)
}

// SearchByMeter returns customers whose meter number contains the term.
func (s *Service) SearchByMeter(term string) []*directory.Customer {
	return s.dir.SearchByMeter(term)
}

// SearchByPhone returns customers whose phone contains the term.
func (s *Service) SearchByPhone(term string) []*directory.Customer {
	return s.dir.SearchByPhone(term)
}

// CustomerByID resolves a customer by id.
func (s *Service) CustomerByID(id int) (*directory.Customer, error) {
	return s.dir.FindByID(id)
}

// PeriodReport aggregates all histories over the given month.
func (s *Service) PeriodReport(month time.Month, year int) reporting.PeriodReport {
	return reporting.BuildPeriodReport(s.dir.All(), reporting.Period{Month: month, Year: year}, s.clock.Now())
}

// MonthlyReport aggregates over the current calendar month.
func (s *Service) MonthlyReport() reporting.PeriodReport {
	now := s.clock.Now()
	return s.PeriodReport(now.Month(), now.Year())
}
