package billing

import "time"

// DefaultHistoryCapacity is the rolling window kept per customer.
const DefaultHistoryCapacity = 12

// BillIDSource issues bill identifiers. Ids are assigned once at
// creation and never change, so they stay unique across eviction.
type BillIDSource interface {
	NextBillID() int
}

// History is a customer's capacity-bounded billing log, chronological,
// oldest first. Appending at capacity evicts the oldest bill.
type History struct {
	Bills []*Bill `json:"bills"`

	// Capacity is configuration, re-applied after a snapshot load.
	Capacity int `json:"-"`
}

// NewHistory constructs an empty history with the given capacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{Capacity: capacity}
}

// Len returns the number of bills on record.
func (h *History) Len() int { return len(h.Bills) }

// Latest returns the most recent bill.
func (h *History) Latest() (*Bill, bool) {
	if len(h.Bills) == 0 {
		return nil, false
	}
	return h.Bills[len(h.Bills)-1], true
}

// Bill returns the bill at a history index, oldest first.
func (h *History) Bill(index int) (*Bill, bool) {
	if index < 0 || index >= len(h.Bills) {
		return nil, false
	}
	return h.Bills[index], true
}

// All returns the bills in chronological order.
func (h *History) All() []*Bill {
	out := make([]*Bill, len(h.Bills))
	copy(out, h.Bills)
	return out
}

// LastMeterEnd returns the closing reading of the latest bill, 0 when
// the history is empty.
func (h *History) LastMeterEnd() float64 {
	latest, ok := h.Latest()
	if !ok {
		return 0
	}
	return latest.MeterEnd
}

// Generate issues a new bill. The previous bill's closing reading
// becomes the new bill's opening reading; meterEnd may not regress
// below it. On success the bill is appended, evicting the oldest entry
// first when the history is at capacity. The history is left unchanged
// on any error.
func (h *History) Generate(ids BillIDSource, meterEnd float64, split UsageSplit, schedule RateSchedule, today time.Time) (*Bill, error) {
	if err := split.Validate(); err != nil {
		return nil, err
	}
	start := h.LastMeterEnd()
	if meterEnd < start {
		return nil, ErrMeterReadingRegressed
	}

	usage := meterEnd - start
	bill := &Bill{
		ID:         ids.NextBillID(),
		IssueDate:  today,
		DueDate:    today.AddDate(0, 0, DueDays),
		MeterStart: start,
		MeterEnd:   meterEnd,
		TotalUsage: usage,
		Split:      split,
		Amount:     ComputeAmount(schedule, usage, split),
	}

	if h.Capacity > 0 && len(h.Bills) >= h.Capacity {
		evict := len(h.Bills) - h.Capacity + 1
		h.Bills = append(h.Bills[:0], h.Bills[evict:]...)
	}
	h.Bills = append(h.Bills, bill)
	return bill, nil
}
