package billing

// Usage tier boundaries in units. Tier 1 covers 0-100, tier 2 covers
// 101-300, tier 3 covers everything above.
const (
	Tier1Limit = 100.0
	Tier2Limit = 300.0
)

// RateSchedule is the pricing for one customer class. TaxRate is a
// fraction applied to the full pre-tax amount.
type RateSchedule struct {
	BaseCharge  float64 `yaml:"base_charge"`
	Tier1Rate   float64 `yaml:"tier1_rate"`
	Tier2Rate   float64 `yaml:"tier2_rate"`
	Tier3Rate   float64 `yaml:"tier3_rate"`
	PeakRate    float64 `yaml:"peak_rate"`
	OffPeakRate float64 `yaml:"off_peak_rate"`
	TaxRate     float64 `yaml:"tax_rate"`
}

// Validate checks schedule invariants.
func (s RateSchedule) Validate() error {
	if s.BaseCharge < 0 || s.Tier1Rate < 0 || s.Tier2Rate < 0 || s.Tier3Rate < 0 {
		return ErrNegativeRate
	}
	if s.PeakRate < 0 || s.OffPeakRate < 0 || s.TaxRate < 0 {
		return ErrNegativeRate
	}
	return nil
}

// RateTable is the static per-class pricing lookup. Exactly one schedule
// per class; immutable once built.
type RateTable struct {
	schedules map[CustomerClass]RateSchedule
}

// NewRateTable builds a table from per-class schedules. Every class must
// be present and valid; a missing class is a configuration defect.
func NewRateTable(schedules map[CustomerClass]RateSchedule) (*RateTable, error) {
	table := &RateTable{schedules: make(map[CustomerClass]RateSchedule, len(schedules))}
	for _, class := range Classes() {
		schedule, ok := schedules[class]
		if !ok {
			return nil, ErrScheduleNotConfigured
		}
		if err := schedule.Validate(); err != nil {
			return nil, err
		}
		table.schedules[class] = schedule
	}
	return table, nil
}

// DefaultRateTable returns the built-in pricing.
func DefaultRateTable() *RateTable {
	table, err := NewRateTable(map[CustomerClass]RateSchedule{
		ClassResidential: {BaseCharge: 50.0, Tier1Rate: 3.5, Tier2Rate: 7.0, Tier3Rate: 10.0, PeakRate: 12.0, OffPeakRate: 5.0, TaxRate: 0.05},
		ClassCommercial:  {BaseCharge: 100.0, Tier1Rate: 5.0, Tier2Rate: 8.5, Tier3Rate: 12.0, PeakRate: 15.0, OffPeakRate: 7.0, TaxRate: 0.07},
		ClassIndustrial:  {BaseCharge: 200.0, Tier1Rate: 6.5, Tier2Rate: 10.0, Tier3Rate: 15.0, PeakRate: 18.0, OffPeakRate: 9.0, TaxRate: 0.09},
	})
	if err != nil {
		// The built-in table covers every class; failing here is a
		// programming defect, not a runtime condition.
		panic(err)
	}
	return table
}

// Lookup resolves the schedule for a class.
func (t *RateTable) Lookup(class CustomerClass) (RateSchedule, error) {
	schedule, ok := t.schedules[class]
	if !ok {
		return RateSchedule{}, ErrScheduleNotConfigured
	}
	return schedule, nil
}
