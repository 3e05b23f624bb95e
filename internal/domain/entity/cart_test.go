package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productA() Product {
	return Product{ID: "prod-a", Name: "Product A", Price: 60, Image: "a.jpg"}
}

func productB() Product {
	return Product{ID: "prod-b", Name: "Product B", Price: 50}
}

func TestCart_Add_MergesRepeatedProducts(t *testing.T) {
	cart := NewCart()

	added, err := cart.Add(productA(), 1)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = cart.Add(productA(), 2)
	require.NoError(t, err)
	assert.False(t, added, "second add of the same product must update the existing line")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "prod-a", cart.Items[0].ProductID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCart_Add_RejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()

	_, err := cart.Add(productA(), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = cart.Add(productA(), -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.True(t, cart.IsEmpty(), "rejected add must not mutate the cart")
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()

	_, err := cart.Add(productB(), 1)
	require.NoError(t, err)
	_, err = cart.Add(productA(), 1)
	require.NoError(t, err)
	_, err = cart.Add(productB(), 1)
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "prod-b", cart.Items[0].ProductID)
	assert.Equal(t, "prod-a", cart.Items[1].ProductID)
}

func TestCart_SetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	_, err := cart.Add(productA(), 2)
	require.NoError(t, err)

	require.NoError(t, cart.SetQuantity("prod-a", 0))
	assert.True(t, cart.IsEmpty())

	// A second removal of the same product is a no-op, not an error.
	cart.Remove("prod-a")
	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantity_UnknownProductIsNoOp(t *testing.T) {
	cart := NewCart()
	_, err := cart.Add(productA(), 1)
	require.NoError(t, err)

	require.NoError(t, cart.SetQuantity("prod-unknown", 5))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "prod-a", cart.Items[0].ProductID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCart_SetQuantity_ReplacesQuantity(t *testing.T) {
	cart := NewCart()
	_, err := cart.Add(productA(), 1)
	require.NoError(t, err)

	require.NoError(t, cart.SetQuantity("prod-a", 7))
	assert.Equal(t, 7, cart.Items[0].Quantity)

	assert.ErrorIs(t, cart.SetQuantity("prod-a", -1), ErrInvalidQuantity)
	assert.Equal(t, 7, cart.Items[0].Quantity, "rejected quantity must not mutate the line")
}

func TestCart_Summarize_FreeShippingAboveThreshold(t *testing.T) {
	// A: 60x1, B: 50x1 -> subtotal 110, free shipping, 8% tax.
	cart := NewCart()
	_, err := cart.Add(productA(), 1)
	require.NoError(t, err)
	_, err = cart.Add(productB(), 1)
	require.NoError(t, err)

	summary := cart.Summarize()

	assert.InDelta(t, 110.0, summary.Subtotal, 1e-9)
	assert.Equal(t, 0.0, summary.Shipping)
	assert.InDelta(t, 8.80, summary.Tax, 1e-9)
	assert.InDelta(t, 118.80, summary.Total, 1e-9)
}

func TestCart_Summarize_FlatShippingBelowThreshold(t *testing.T) {
	// A at price 30 x2 -> subtotal 60, flat shipping, 8% tax.
	cart := NewCart()
	_, err := cart.Add(Product{ID: "prod-a", Name: "Product A", Price: 30}, 2)
	require.NoError(t, err)

	summary := cart.Summarize()

	assert.InDelta(t, 60.0, summary.Subtotal, 1e-9)
	assert.Equal(t, 10.0, summary.Shipping)
	assert.InDelta(t, 4.80, summary.Tax, 1e-9)
	assert.InDelta(t, 74.80, summary.Total, 1e-9)
}

func TestCart_Summarize_ThresholdBoundaryIsStrict(t *testing.T) {
	// Exactly 100 still pays shipping; the rule is strictly greater than.
	cart := NewCart()
	_, err := cart.Add(Product{ID: "prod-c", Price: 100}, 1)
	require.NoError(t, err)

	assert.Equal(t, 10.0, cart.Summarize().Shipping)

	require.NoError(t, cart.SetQuantity("prod-c", 2))
	assert.Equal(t, 0.0, cart.Summarize().Shipping)
}

func TestCart_Summarize_TotalIsSumOfParts(t *testing.T) {
	carts := []*Cart{
		NewCart(),
		{Items: []LineItem{{ProductID: "x", UnitPrice: 19.99, Quantity: 3}}},
		{Items: []LineItem{
			{ProductID: "x", UnitPrice: 0.01, Quantity: 1},
			{ProductID: "y", UnitPrice: 123.45, Quantity: 2},
		}},
	}

	for _, cart := range carts {
		summary := cart.Summarize()
		assert.Equal(t, summary.Subtotal+summary.Shipping+summary.Tax, summary.Total)
		assert.InDelta(t, summary.Subtotal*TaxRate, summary.Tax, 1e-9)
	}
}

func TestCart_Summarize_EmptyCart(t *testing.T) {
	summary := NewCart().Summarize()

	assert.Equal(t, 0.0, summary.Subtotal)
	assert.Equal(t, FlatShippingFee, summary.Shipping)
	assert.Equal(t, 0.0, summary.Tax)
	assert.Equal(t, FlatShippingFee, summary.Total)
}

func TestPricingSummary_Rounded(t *testing.T) {
	cart := &Cart{Items: []LineItem{{ProductID: "x", UnitPrice: 19.99, Quantity: 3}}}

	rounded := cart.Summarize().Rounded()

	assert.Equal(t, 59.97, rounded.Subtotal)
	assert.Equal(t, FlatShippingFee, rounded.Shipping)
	assert.Equal(t, 4.8, rounded.Tax)
	assert.Equal(t, 74.77, rounded.Total)
}

func TestCart_ItemCount(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0, cart.ItemCount())

	_, err := cart.Add(productA(), 2)
	require.NoError(t, err)
	_, err = cart.Add(productB(), 3)
	require.NoError(t, err)

	assert.Equal(t, 5, cart.ItemCount())
}
