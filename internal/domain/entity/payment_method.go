// Package entity contains the core business objects of the project.
package entity

// PaymentMethod represents how an order is paid.
type PaymentMethod string

const (
	// PaymentMethodCOD indicates cash on delivery.
	PaymentMethodCOD PaymentMethod = "COD"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a supported value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD:
		return true
	default:
		return false
	}
}
