package models

// ErrorResponse is the uniform JSON error body returned by every failing
// endpoint, including the 401 produced by the auth middleware.
type ErrorResponse struct {
	// Err is a short human-readable description of the failure.
	Err string `json:"err"`
}

// BookSummary is the subset of book fields denormalized into an order
// listing entry.
type BookSummary struct {
	Name   string `json:"name"`
	Price  string `json:"price"`
	Author string `json:"author"`
}

// OrderWithBook is a single entry of the order listing: the order fields
// annotated with a projection of the referenced book.
//
// Book is nil when the order's reference is dangling (the book was removed
// outside the cascade path, or never existed). The nil projection is the
// explicit, typed form of the "unresolvable reference" outcome.
type OrderWithBook struct {
	Order

	// Book is the resolved projection of the referenced book, or nil when
	// the reference does not resolve.
	Book *BookSummary `json:"book"`
}
