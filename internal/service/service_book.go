// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package service

import (
	"context"
	"fmt"

	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/store"
	"github.com/tilyasov/bookstore/internal/utils"
	"github.com/tilyasov/bookstore/internal/validators"
	"github.com/tilyasov/bookstore/models"
)

// defaultQuantity is stamped on new listings that omit a stock quantity.
const defaultQuantity = "1"

// bookService is the concrete implementation of BookService.
type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator
	ids            *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewBookService constructs a BookService wired to the given BookRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewBookService(bookRepository store.BookRepository, validator validators.Validator, ids *utils.UUIDGenerator, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validator,
		ids:            ids,
		logger:         logger,
	}
}

// CreateBook validates the submitted listing, stamps it with a fresh id and
// the caller's email as owner, and persists it.
//
// An omitted quantity is filled with defaultQuantity. Whatever email the
// client put in the payload is discarded: ownership always comes from the
// verified identity.
//
// Returns ErrInvalidDataProvided (wrapping the specific field error) when
// the payload fails validation.
func (s *bookService) CreateBook(ctx context.Context, book models.Book, owner models.Identity) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, book); err != nil {
		log.Debug().Err(err).Str("name", book.Name).Msg("book payload rejected")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	book.ID = s.ids.Generate()
	book.Email = owner.Email
	if book.Quantity == "" {
		book.Quantity = defaultQuantity
	}

	createdBook, err := s.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("name", book.Name).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return createdBook, nil
}

// GetAllBooks returns the whole catalog, newest listings first. The catalog
// is public: no identity is required.
func (s *bookService) GetAllBooks(ctx context.Context) ([]models.Book, error) {
	books, err := s.bookRepository.GetAllBooks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("catalog listing failed")
		return nil, fmt.Errorf("catalog listing failed: %w", err)
	}

	return books, nil
}

// GetBook returns the single listing with the given id, or a wrapped
// store.ErrBookNotFound.
func (s *bookService) GetBook(ctx context.Context, id string) (models.Book, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Book{}, ErrInvalidDataProvided
	}

	book, err := s.bookRepository.FindBookByID(ctx, id)
	if err != nil {
		log.Err(err).Str("book_id", id).Msg("book lookup failed")
		return models.Book{}, fmt.Errorf("book lookup failed: %w", err)
	}

	return book, nil
}

// DeleteBook removes the listing and cascade-deletes every order referencing
// it, atomically.
//
// Any authenticated caller may delete any listing; ownership is not checked.
// Returns a wrapped store.ErrBookNotFound when no listing matched, in which
// case no orders were touched.
func (s *bookService) DeleteBook(ctx context.Context, id string) (models.Book, int64, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Book{}, 0, ErrInvalidDataProvided
	}

	deletedBook, ordersDeleted, err := s.bookRepository.DeleteBookWithOrders(ctx, id)
	if err != nil {
		log.Err(err).Str("book_id", id).Msg("book deletion failed")
		return models.Book{}, 0, fmt.Errorf("book deletion failed: %w", err)
	}

	log.Info().Str("book_id", id).Int64("orders_deleted", ordersDeleted).Msg("book deleted with its orders")
	return deletedBook, ordersDeleted, nil
}
