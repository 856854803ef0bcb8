package directory

import "errors"

var (
	// ErrCustomerNotFound is returned when no customer matches a lookup key.
	ErrCustomerNotFound = errors.New("directory: customer not found")
	// ErrDirectoryFull is returned when adding beyond the configured capacity.
	ErrDirectoryFull = errors.New("directory: capacity exceeded")
	// ErrDuplicateMeter is returned when a meter number is already registered.
	ErrDuplicateMeter = errors.New("directory: duplicate meter number")
	// ErrEmptyMeterNumber is returned when a customer has no meter number.
	ErrEmptyMeterNumber = errors.New("directory: empty meter number")
	// ErrEmptyName is returned when a customer has no name.
	ErrEmptyName = errors.New("directory: empty name")
)
