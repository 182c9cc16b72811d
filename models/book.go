package models

import "time"

// Book represents a single listing in the store catalog.
//
// Price and Quantity are stored as strings end-to-end: the service keeps
// whatever the seller submitted and performs no arithmetic on either field.
type Book struct {
	// ID is the unique identifier of the book record.
	ID string `json:"_id"`

	// Name is the book title. Required.
	Name string `json:"name"`

	// Author is the book author. Required.
	Author string `json:"author"`

	// Price is the listed price as submitted by the seller. Required.
	Price string `json:"price"`

	// Quantity is the number of copies offered. Defaults to "1" when the
	// seller omits it.
	Quantity string `json:"quantity"`

	// Image is the URL of the cover image. Required.
	Image string `json:"image"`

	// Email is the email of the authenticated user who listed the book.
	// It is stamped server-side from the verified identity, never taken
	// from the request body.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the listing was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the most recent modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}
