package directory

import (
	"strings"
	"time"

	billing "utility-billing/internal/billing/domain"
)

// Defaults mirroring the configuration fallbacks.
const (
	DefaultCapacity        = 100
	DefaultCustomerIDBase  = 1001
	DefaultHistoryCapacity = billing.DefaultHistoryCapacity
)

// Directory is the root aggregate: an ordered, capacity-bounded
// collection of customers. Customer ids are assigned sequentially from
// the configured base; customers are never removed, so ids are stable.
// It also owns the monotonic bill-id sequence.
type Directory struct {
	customers       []*Customer
	capacity        int
	idBase          int
	historyCapacity int
	nextBillID      int
}

// State is the serializable whole-directory snapshot value.
type State struct {
	Customers  []*Customer `json:"customers"`
	NextBillID int         `json:"next_bill_id"`
}

// NewDirectory constructs an empty directory.
func NewDirectory(capacity, idBase, historyCapacity int) *Directory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if idBase <= 0 {
		idBase = DefaultCustomerIDBase
	}
	if historyCapacity <= 0 {
		historyCapacity = DefaultHistoryCapacity
	}
	return &Directory{
		capacity:        capacity,
		idBase:          idBase,
		historyCapacity: historyCapacity,
		nextBillID:      1,
	}
}

// Add registers a new customer: id from base plus position, connection
// date set to today, active, empty history. Meter numbers must be
// unique across the directory.
func (d *Directory) Add(profile Profile, today time.Time) (*Customer, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if len(d.customers) >= d.capacity {
		return nil, ErrDirectoryFull
	}
	meter := strings.TrimSpace(profile.MeterNumber)
	for _, existing := range d.customers {
		if existing.MeterNumber == meter {
			return nil, ErrDuplicateMeter
		}
	}

	customer := &Customer{
		ID:             d.idBase + len(d.customers),
		Name:           strings.TrimSpace(profile.Name),
		Address:        profile.Address,
		Phone:          profile.Phone,
		Email:          profile.Email,
		Class:          profile.Class,
		MeterNumber:    meter,
		ConnectionDate: today,
		Active:         true,
		History:        billing.NewHistory(d.historyCapacity),
	}
	d.customers = append(d.customers, customer)
	return customer, nil
}

// FindByMeter resolves a customer by exact meter number.
func (d *Directory) FindByMeter(meterNumber string) (*Customer, error) {
	for _, customer := range d.customers {
		if customer.MeterNumber == meterNumber {
			return customer, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// FindByID resolves a customer by id.
func (d *Directory) FindByID(id int) (*Customer, error) {
	for _, customer := range d.customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// SearchByName returns customers whose name contains the term.
func (d *Directory) SearchByName(term string) []*Customer {
	return d.search(func(c *Customer) bool { return strings.Contains(c.Name, term) })
}

// SearchByMeter returns customers whose meter number contains the term.
func (d *Directory) SearchByMeter(term string) []*Customer {
	return d.search(func(c *Customer) bool { return strings.Contains(c.MeterNumber, term) })
}

// SearchByPhone returns customers whose phone contains the term.
func (d *Directory) SearchByPhone(term string) []*Customer {
	return d.search(func(c *Customer) bool { return strings.Contains(c.Phone, term) })
}

func (d *Directory) search(match func(*Customer) bool) []*Customer {
	var found []*Customer
	for _, customer := range d.customers {
		if match(customer) {
			found = append(found, customer)
		}
	}
	return found
}

// All returns the customers in directory order.
func (d *Directory) All() []*Customer {
	out := make([]*Customer, len(d.customers))
	copy(out, d.customers)
	return out
}

// Len returns the number of customers.
func (d *Directory) Len() int { return len(d.customers) }

// NextBillID issues the next globally unique bill id.
func (d *Directory) NextBillID() int {
	id := d.nextBillID
	d.nextBillID++
	return id
}

// State exports the directory as a serializable snapshot value.
func (d *Directory) State() State {
	customers := make([]*Customer, len(d.customers))
	copy(customers, d.customers)
	return State{Customers: customers, NextBillID: d.nextBillID}
}

// Restore replaces the directory contents wholesale from a snapshot.
// Configured capacities are re-applied; a missing bill-id sequence is
// rebuilt from the highest id on record.
func (d *Directory) Restore(state State) error {
	customers := state.Customers
	if len(customers) > d.capacity {
		return ErrDirectoryFull
	}

	maxBillID := 0
	for _, customer := range customers {
		if customer.History == nil {
			customer.History = billing.NewHistory(d.historyCapacity)
			continue
		}
		customer.History.Capacity = d.historyCapacity
		for _, bill := range customer.History.Bills {
			if bill.ID > maxBillID {
				maxBillID = bill.ID
			}
		}
	}

	d.customers = customers
	d.nextBillID = state.NextBillID
	if d.nextBillID <= maxBillID {
		d.nextBillID = maxBillID + 1
	}
	return nil
}
