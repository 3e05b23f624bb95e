// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderItem is the product-id/quantity/unit-price triple submitted for each
// cart line when an order is placed.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderPayload is the finalized request body submitted to place an order.
// It is built once per checkout attempt and immutable after construction.
type OrderPayload struct {
	UserID        string      `json:"userId"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	Email         string      `json:"email"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
}

// Order is a placed order as reported by the backend, or archived locally
// after a confirmed checkout.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}
