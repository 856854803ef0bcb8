package billing

import "errors"

var (
	// ErrUnknownClass is returned when a customer class is not supported.
	ErrUnknownClass = errors.New("billing: unknown customer class")
	// ErrScheduleNotConfigured is returned when the rate table is missing a class.
	ErrScheduleNotConfigured = errors.New("billing: rate schedule not configured")
	// ErrNegativeRate is returned when a schedule carries a negative rate.
	ErrNegativeRate = errors.New("billing: negative rate")
	// ErrNegativeUsage is returned when a usage value is negative.
	ErrNegativeUsage = errors.New("billing: negative usage")
	// ErrMeterReadingRegressed is returned when a meter reading is below the previous one.
	ErrMeterReadingRegressed = errors.New("billing: meter reading below previous reading")
	// ErrAlreadyPaid is returned when recording a payment on a paid bill.
	ErrAlreadyPaid = errors.New("billing: bill already paid")
	// ErrBillNotFound is returned when a bill index is out of range.
	ErrBillNotFound = errors.New("billing: bill not found")
	// ErrNoBills is returned when an operation needs at least one bill.
	ErrNoBills = errors.New("billing: no bills on record")
	// ErrEmptyPaymentMethod is returned when a payment is recorded without a method.
	ErrEmptyPaymentMethod = errors.New("billing: empty payment method")
)
