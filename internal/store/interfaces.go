package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/tilyasov/bookstore/models"
)

type UserRepository interface {
	// UpsertUser inserts a user keyed by email or, when the email already
	// exists, refreshes its name. Returns the canonical stored record.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type BookRepository interface {
	// CreateBook persists a new listing and returns it with server-assigned
	// timestamps.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)

	// GetAllBooks returns every listing in the catalog.
	GetAllBooks(ctx context.Context) ([]models.Book, error)

	// FindBookByID returns the book with the given id or [ErrBookNotFound].
	FindBookByID(ctx context.Context, id string) (models.Book, error)

	// DeleteBookWithOrders removes the book and every order referencing it
	// in a single transaction. Returns the deleted book, the number of
	// cascade-deleted orders, or [ErrBookNotFound] when no book matched
	// (in which case no orders are touched).
	DeleteBookWithOrders(ctx context.Context, id string) (models.Book, int64, error)
}

type OrderRepository interface {
	// CreateOrder persists a new order. The referenced book is not required
	// to exist.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// FindOrdersByEmail returns the buyer's orders, each annotated with a
	// projection of the referenced book, or a nil projection when the
	// reference does not resolve.
	FindOrdersByEmail(ctx context.Context, email string) ([]models.OrderWithBook, error)
}
