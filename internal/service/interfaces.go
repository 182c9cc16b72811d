package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/tilyasov/bookstore/models"
)

// UserService manages the local account mirror of identity-provider users.
type UserService interface {
	// Login records the verified identity in the local users table,
	// creating the account on first sight and refreshing the display name
	// on every subsequent call. Returns the canonical stored record.
	Login(ctx context.Context, identity models.Identity) (models.User, error)

	// Profile returns the stored account for the given verified identity.
	Profile(ctx context.Context, identity models.Identity) (models.User, error)
}

// BookService manages catalog listings.
type BookService interface {
	// CreateBook validates and persists a new listing owned by the caller.
	CreateBook(ctx context.Context, book models.Book, owner models.Identity) (models.Book, error)

	// GetAllBooks returns the whole catalog, newest listings first.
	GetAllBooks(ctx context.Context) ([]models.Book, error)

	// GetBook returns the single listing with the given id.
	GetBook(ctx context.Context, id string) (models.Book, error)

	// DeleteBook removes the listing and every order referencing it.
	// Returns the removed listing and the number of orders deleted with it.
	DeleteBook(ctx context.Context, id string) (models.Book, int64, error)
}

// OrderService manages purchase records.
type OrderService interface {
	// CreateOrder records the caller's purchase of the referenced book.
	CreateOrder(ctx context.Context, bookID string, buyer models.Identity) (models.Order, error)

	// GetOrders returns the caller's purchase history, newest first, each
	// entry annotated with a projection of the referenced book.
	GetOrders(ctx context.Context, buyer models.Identity) ([]models.OrderWithBook, error)
}
