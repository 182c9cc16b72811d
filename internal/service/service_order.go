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

// orderService is the concrete implementation of OrderService.
type orderService struct {
	orderRepository store.OrderRepository
	validator       validators.Validator
	ids             *utils.UUIDGenerator
	logger          *logger.Logger
}

// NewOrderService constructs an OrderService wired to the given
// OrderRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewOrderService(orderRepository store.OrderRepository, validator validators.Validator, ids *utils.UUIDGenerator, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		validator:       validator,
		ids:             ids,
		logger:          logger,
	}
}

// CreateOrder records the caller's purchase of the referenced book.
//
// The reference is not resolved at write time: a purchase of an id that
// never existed is stored as given and simply yields a nil book projection
// in listings.
func (s *orderService) CreateOrder(ctx context.Context, bookID string, buyer models.Identity) (models.Order, error) {
	log := logger.FromContext(ctx)

	order := models.Order{
		ID:     s.ids.Generate(),
		BookID: bookID,
		Email:  buyer.Email,
	}

	if err := s.validator.Validate(ctx, order); err != nil {
		log.Debug().Err(err).Msg("order payload rejected")
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	createdOrder, err := s.orderRepository.CreateOrder(ctx, order)
	if err != nil {
		log.Err(err).Str("book_id", bookID).Msg("order creation ended with error")
		return models.Order{}, fmt.Errorf("order creation ended with error: %w", err)
	}

	return createdOrder, nil
}

// GetOrders returns the caller's purchase history, newest first.
func (s *orderService) GetOrders(ctx context.Context, buyer models.Identity) ([]models.OrderWithBook, error) {
	orders, err := s.orderRepository.FindOrdersByEmail(ctx, buyer.Email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", buyer.Email).Msg("order listing failed")
		return nil, fmt.Errorf("order listing failed: %w", err)
	}

	return orders, nil
}
