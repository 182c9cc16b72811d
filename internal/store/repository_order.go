package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. It persists purchase records against the "orders" table
// and resolves the book projection for listings.
//
// orders.book_id is deliberately not a foreign key: an order must outlive
// the listing it references, so resolution happens at read time via a LEFT
// JOIN instead of being enforced at write time.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder persists a new purchase record and returns it with
// server-assigned timestamps. The referenced book id is stored as given —
// dangling references are permitted.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	var storedOrder models.Order
	row := r.db.QueryRowContext(ctx, createOrder, order.ID, order.BookID, order.Email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation:
			return models.Order{}, ErrRequiredFieldMissing
		default:
			return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&storedOrder.ID, &storedOrder.BookID, &storedOrder.Email, &storedOrder.CreatedAt, &storedOrder.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.NotNullViolation {
			return models.Order{}, ErrRequiredFieldMissing
		}
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error: scanning error")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return storedOrder, nil
}

// FindOrdersByEmail retrieves every order placed by the given buyer, newest
// first, each annotated with the {name, price, author} projection of its
// referenced book.
//
// Orders whose reference no longer resolves are still returned; their Book
// projection is nil.
func (r *orderRepository) FindOrdersByEmail(ctx context.Context, email string) ([]models.OrderWithBook, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOrdersWithBooksQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.FindOrdersByEmail").Str("email", email).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.FindOrdersByEmail").Str("email", email).Msg("failed to execute order listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.OrderWithBook, 0, 20)

	for rows.Next() {
		var entry models.OrderWithBook
		var bookName, bookPrice, bookAuthor sql.NullString

		scanErr := rows.Scan(
			&entry.ID,
			&entry.BookID,
			&entry.Email,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&bookName,
			&bookPrice,
			&bookAuthor,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*orderRepository.FindOrdersByEmail").Str("email", email).Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		// NULL book columns mean the LEFT JOIN found nothing: the reference
		// is dangling and the projection stays nil.
		if bookName.Valid {
			entry.Book = &models.BookSummary{
				Name:   bookName.String,
				Price:  bookPrice.String,
				Author: bookAuthor.String,
			}
		}

		orders = append(orders, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*orderRepository.FindOrdersByEmail").Str("email", email).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return orders, nil
}
