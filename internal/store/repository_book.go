package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
// It executes all catalog CRUD operations against the "books" table and owns
// the transactional delete-with-cascade path.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook persists a new listing and returns the fully populated
// [models.Book] with server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL not_null_violation (23502) → [ErrRequiredFieldMissing].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	var storedBook models.Book
	row := r.db.QueryRowContext(ctx, createBook,
		book.ID, book.Name, book.Author, book.Price, book.Quantity, book.Image, book.Email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation:
			return models.Book{}, ErrRequiredFieldMissing
		default:
			return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanBook(row, &storedBook); err != nil {
		if postgresError(err) == pgerrcode.NotNullViolation {
			return models.Book{}, ErrRequiredFieldMissing
		}
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error: scanning error")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return storedBook, nil
}

// GetAllBooks retrieves every listing in the catalog, newest first.
//
// Returns an empty slice when the catalog is empty.
func (r *bookRepository) GetAllBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllBooksQuery()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetAllBooks").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetAllBooks").Msg("failed to execute catalog query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 50)

	for rows.Next() {
		var book models.Book
		if scanErr := scanBook(rows, &book); scanErr != nil {
			log.Err(scanErr).Str("func", "*bookRepository.GetAllBooks").Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		books = append(books, book)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*bookRepository.GetAllBooks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return books, nil
}

// FindBookByID retrieves a single listing by its identifier.
//
// Error handling:
//   - No matching row → [ErrBookNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *bookRepository) FindBookByID(ctx context.Context, id string) (models.Book, error) {
	log := logger.FromContext(ctx)

	var foundBook models.Book
	row := r.db.QueryRowContext(ctx, findBookByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBookByID").Str("book_id", id).Msg("error: row is nil")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanBook(row, &foundBook); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.FindBookByID").Str("book_id", id).Msg("error: scanning error")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundBook, nil
}

// DeleteBookWithOrders removes the listing and cascades to every order
// referencing it, atomically.
//
// Both statements run inside one transaction: either the book and its orders
// are all gone, or nothing changed. A missing book id aborts the transaction
// before the cascade runs, so deleting a nonexistent book performs zero
// order deletions.
func (r *bookRepository) DeleteBookWithOrders(ctx context.Context, id string) (models.Book, int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBookWithOrders").Str("book_id", id).Msg("failed to begin transaction")
		return models.Book{}, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	// no-op after a successful Commit
	defer tx.Rollback() //nolint:errcheck

	var deletedBook models.Book
	row := tx.QueryRowContext(ctx, deleteBookByID, id)

	if err = scanBook(row, &deletedBook); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, 0, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.DeleteBookWithOrders").Str("book_id", id).Msg("error: scanning deleted book")
		return models.Book{}, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	result, err := tx.ExecContext(ctx, deleteOrdersByBookID, id)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBookWithOrders").Str("book_id", id).Msg("failed to cascade-delete orders")
		return models.Book{}, 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	ordersDeleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBookWithOrders").Str("book_id", id).Msg("failed to count cascade-deleted orders")
		return models.Book{}, 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBookWithOrders").Str("book_id", id).Msg("failed to commit transaction")
		return models.Book{}, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("book_id", id).
		Int64("orders_deleted", ordersDeleted).
		Msg("book deleted with order cascade")

	return deletedBook, ordersDeleted, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner, book *models.Book) error {
	return row.Scan(
		&book.ID,
		&book.Name,
		&book.Author,
		&book.Price,
		&book.Quantity,
		&book.Image,
		&book.Email,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
}
