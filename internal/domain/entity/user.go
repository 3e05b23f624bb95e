// Package entity contains the core business objects of the project.
package entity

// User is the signed-in shopper as reported by the commerce backend.
// The backend owns the account; the gateway only caches the record for the
// lifetime of the session.
type User struct {
	ID    string // Backend account identifier. Opaque to the gateway.
	Name  string // Display name.
	Email string // Primary contact email, also the login identifier.
	Phone string // Contact phone number captured at registration.
}
