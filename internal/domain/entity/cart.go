// Package entity contains the core business objects of the project.
package entity

import (
	"errors"
	"math"
)

// Pricing rules applied by Cart.Summarize. The threshold is strict: a subtotal
// of exactly FreeShippingThreshold still pays the flat fee.
const (
	FreeShippingThreshold = 100.0
	FlatShippingFee       = 10.0
	TaxRate               = 0.08
)

// ErrInvalidQuantity is returned when a mutation is attempted with a quantity
// the cart refuses to hold. The cart rejects bad input instead of clamping it,
// so a caller bug surfaces immediately rather than as a silently altered cart.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// LineItem is one product entry in a cart together with its quantity.
// It carries the product's identifying and pricing fields so the cart can be
// priced and displayed without re-resolving the catalog.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart is an ordered collection of LineItems owned by a single shopping
// session. Order is insertion order; it never affects totals. At most one
// LineItem exists per product ID, and no LineItem ever has quantity zero.
type Cart struct {
	Items []LineItem `json:"items"`
}

// PricingSummary is the derived subtotal/shipping/tax/total for a cart at a
// point in time. It is always recomputed from the cart, never stored.
type PricingSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Rounded returns a copy with every amount rounded to two decimals, for the
// response boundary. Internal arithmetic always runs on the unrounded values.
func (s PricingSummary) Rounded() PricingSummary {
	return PricingSummary{
		Subtotal: math.Round(s.Subtotal*100) / 100,
		Shipping: math.Round(s.Shipping*100) / 100,
		Tax:      math.Round(s.Tax*100) / 100,
		Total:    math.Round(s.Total*100) / 100,
	}
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add merges a product into the cart. If a line for the product already
// exists its quantity grows by quantity, otherwise a new line is appended.
// The returned flag reports whether a new line was created, so callers can
// distinguish "added" from "quantity updated" when notifying the user.
// A quantity below 1 is rejected with ErrInvalidQuantity.
func (c *Cart) Add(product Product, quantity int) (added bool, err error) {
	if quantity < 1 {
		return false, ErrInvalidQuantity
	}

	for i := range c.Items {
		if c.Items[i].ProductID == product.ID {
			c.Items[i].Quantity += quantity

			return false, nil
		}
	}

	c.Items = append(c.Items, LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	})

	return true, nil
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// removes the line entirely. Unknown product IDs are a no-op; a line is never
// materialized by SetQuantity. Negative quantities are rejected.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.Remove(productID)

		return nil
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity

			return nil
		}
	}

	return nil
}

// Remove deletes the line for the given product ID. Removing an absent
// product is a no-op, not an error.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return
		}
	}
}

// Summarize derives the pricing summary from the current lines. Values are
// accumulated in full precision; rounding to two decimals is a display
// concern applied at the response boundary only.
func (c *Cart) Summarize() PricingSummary {
	var subtotal float64
	for _, item := range c.Items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	tax := subtotal * TaxRate

	return PricingSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// ItemCount is the sum of all quantities, used for badge display.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
