package billing

import (
	"strings"
	"time"
)

// DueDays is the number of calendar days between issue and due date.
const DueDays = 15

// UsageSplit is the time-of-use decomposition of a bill. Peak covers
// 2pm-8pm, off-peak covers 8pm-2pm. The components are independent
// inputs and are not reconciled against total usage.
type UsageSplit struct {
	PeakUnits    float64 `json:"peak_units"`
	OffPeakUnits float64 `json:"off_peak_units"`
}

// Validate checks split invariants.
func (s UsageSplit) Validate() error {
	if s.PeakUnits < 0 || s.OffPeakUnits < 0 {
		return ErrNegativeUsage
	}
	return nil
}

// Bill is one issued bill. Created only by History.Generate; after that
// the single allowed mutation is RecordPayment.
type Bill struct {
	ID            int        `json:"id"`
	IssueDate     time.Time  `json:"issue_date"`
	DueDate       time.Time  `json:"due_date"`
	MeterStart    float64    `json:"meter_start"`
	MeterEnd      float64    `json:"meter_end"`
	TotalUsage    float64    `json:"total_usage"`
	Split         UsageSplit `json:"usage_split"`
	Amount        float64    `json:"amount"`
	Paid          bool       `json:"paid"`
	PaymentDate   time.Time  `json:"payment_date"`
	PaymentMethod string     `json:"payment_method,omitempty"`
}

// RecordPayment marks the bill paid. Paid is a terminal state: paying an
// already paid bill is rejected and leaves the bill unchanged.
func (b *Bill) RecordPayment(method string, on time.Time) error {
	if b.Paid {
		return ErrAlreadyPaid
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return ErrEmptyPaymentMethod
	}
	b.Paid = true
	b.PaymentDate = on
	b.PaymentMethod = method
	return nil
}

// PeakSharePct returns the peak fraction of total usage as a percentage,
// 0 when the bill has no usage.
func (b *Bill) PeakSharePct() float64 {
	if b.TotalUsage <= 0 {
		return 0
	}
	return b.Split.PeakUnits / b.TotalUsage * 100
}
