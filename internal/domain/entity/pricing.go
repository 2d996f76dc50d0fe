// Package entity contains the core business objects of the project.
package entity

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 500.0
	// ShippingFee is the flat surcharge applied at or below the threshold.
	ShippingFee = 49.0
)

// ShippingFor returns the shipping surcharge for a subtotal.
func ShippingFor(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}

	return ShippingFee
}

// OrderTotal returns the amount charged at checkout for a subtotal.
func OrderTotal(subtotal float64) float64 {
	return subtotal + ShippingFor(subtotal)
}
