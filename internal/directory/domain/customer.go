package directory

import (
	"strings"
	"time"

	billing "utility-billing/internal/billing/domain"
)

// Customer is one utility customer and its owned billing history. The
// meter number is the external lookup key.
type Customer struct {
	ID             int                   `json:"id"`
	Name           string                `json:"name"`
	Address        string                `json:"address"`
	Phone          string                `json:"phone"`
	Email          string                `json:"email"`
	Class          billing.CustomerClass `json:"class"`
	MeterNumber    string                `json:"meter_number"`
	ConnectionDate time.Time             `json:"connection_date"`
	Active         bool                  `json:"active"`
	History        *billing.History      `json:"history"`
}

// Profile carries the operator-supplied fields of a new customer.
type Profile struct {
	Name        string
	Address     string
	Phone       string
	Email       string
	Class       billing.CustomerClass
	MeterNumber string
}

// Validate checks the profile invariants.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.MeterNumber) == "" {
		return ErrEmptyMeterNumber
	}
	if !p.Class.IsValid() {
		return billing.ErrUnknownClass
	}
	return nil
}
