// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a catalog item as supplied by the commerce backend.
// The gateway treats products as read-only reference data.
type Product struct {
	ID            string   // Backend identifier for the product, unique within the catalog.
	Name          string   // Display name.
	Price         float64  // Current unit price, non-negative.
	OriginalPrice *float64 // Pre-discount unit price. Nil when the product is not discounted.
	Image         string   // URL of the primary product image.
	Category      string   // Catalog category the product belongs to.
	Rating        float64  // Average review rating.
	Reviews       int      // Number of reviews behind the rating.
	InStock       bool     // Whether the product is currently available.
	Description   string   // Free-form description text.
	Features      []string // Ordered list of feature strings.
}
