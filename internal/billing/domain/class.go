package billing

// CustomerClass is the tariff class of a customer connection.
type CustomerClass string

const (
	ClassResidential CustomerClass = "residential"
	ClassCommercial  CustomerClass = "commercial"
	ClassIndustrial  CustomerClass = "industrial"
)

// Classes returns all supported classes in display order.
func Classes() []CustomerClass {
	return []CustomerClass{ClassResidential, ClassCommercial, ClassIndustrial}
}

// IsValid checks if the class is one of the supported values.
func (c CustomerClass) IsValid() bool {
	switch c {
	case ClassResidential, ClassCommercial, ClassIndustrial:
		return true
	default:
		return false
	}
}

// Display returns the human-readable class name.
func (c CustomerClass) Display() string {
	switch c {
	case ClassResidential:
		return "Residential"
	case ClassCommercial:
		return "Commercial"
	case ClassIndustrial:
		return "Industrial"
	default:
		return string(c)
	}
}

// ParseClass resolves a class from its name.
func ParseClass(value string) (CustomerClass, error) {
	switch CustomerClass(value) {
	case ClassResidential:
		return ClassResidential, nil
	case ClassCommercial:
		return ClassCommercial, nil
	case ClassIndustrial:
		return ClassIndustrial, nil
	default:
		return "", ErrUnknownClass
	}
}
