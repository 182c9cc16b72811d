package models

import "time"

// Order represents a purchase record placed by an authenticated user.
//
// BookID is a weak reference: it is not a foreign key and is not guaranteed
// to resolve after the referenced book has been deleted. Orders are
// historical records, not live joins.
type Order struct {
	// ID is the unique identifier of the order record.
	ID string `json:"_id"`

	// BookID references the ordered book by identifier.
	BookID string `json:"book"`

	// Email is the email of the buyer, stamped from the verified identity.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the order was placed.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the most recent modification.
	// Orders are never directly updated after creation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
