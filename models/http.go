package models

// CreateBookRequest is the body of POST /books. The book payload is nested
// under the "book" key.
type CreateBookRequest struct {
	// Book carries the listing fields submitted by the seller. The owner
	// email is never read from here; it comes from the verified identity.
	Book Book `json:"book"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	// BookID is the identifier of the book being ordered. The referenced
	// book is not required to exist (see Order.BookID).
	BookID string `json:"bookId"`
}
