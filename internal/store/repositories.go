package store

import (
	"context"

	"github.com/tilyasov/bookstore/internal/config"
	"github.com/tilyasov/bookstore/internal/logger"
)

// Repositories aggregates every data-access interface of the application
// plus the shared connection handle, so callers can close it at shutdown.
type Repositories struct {
	UserRepository  UserRepository
	BookRepository  BookRepository
	OrderRepository OrderRepository

	db *DB
}

// NewStorages opens the database connection described by cfg and constructs
// all repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		UserRepository:  NewUserRepository(db, log),
		BookRepository:  NewBookRepository(db, log),
		OrderRepository: NewOrderRepository(db, log),
		db:              db,
	}, nil
}

// DB exposes the underlying connection for schema migrations at startup.
func (r *Repositories) DB() *DB {
	return r.db
}

// Close releases the shared database connection. Call once at shutdown.
func (r *Repositories) Close() error {
	return r.db.Close()
}
