package analytics

import "errors"

// ErrInsufficientData is returned when a history is too short for the
// requested analysis.
var ErrInsufficientData = errors.New("analytics: insufficient billing history")
