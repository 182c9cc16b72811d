// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package service

import (
	"context"
	"fmt"

	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/store"
	"github.com/tilyasov/bookstore/internal/utils"
	"github.com/tilyasov/bookstore/models"
)

// userService is the concrete implementation of UserService.
//
// Accounts are mirrors of identity-provider users, keyed by email: the
// provider owns authentication, this service only keeps a local record for
// profile reads and ownership stamps.
type userService struct {
	userRepository store.UserRepository
	ids            *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, ids *utils.UUIDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		ids:            ids,
		logger:         logger,
	}
}

// Login mirrors the verified identity into the users table.
//
// The generated id is only used when the email has never been seen before;
// on conflict the stored id wins and the display name is refreshed. Calling
// Login repeatedly with the same identity is therefore idempotent apart from
// the name refresh.
func (s *userService) Login(ctx context.Context, identity models.Identity) (models.User, error) {
	log := logger.FromContext(ctx)

	if identity.Email == "" {
		log.Error().Msg("cannot login an identity without email")
		return models.User{}, ErrInvalidDataProvided
	}

	user := models.User{
		ID:    s.ids.Generate(),
		Email: identity.Email,
		Name:  identity.Name,
	}

	storedUser, err := s.userRepository.UpsertUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", identity.Email).Msg("user upsert ended with error")
		return models.User{}, fmt.Errorf("user upsert ended with error: %w", err)
	}

	return storedUser, nil
}

// Profile returns the stored account for the verified identity.
//
// Returns store.ErrNoUserWasFound when the identity has never logged in.
func (s *userService) Profile(ctx context.Context, identity models.Identity) (models.User, error) {
	log := logger.FromContext(ctx)

	if identity.Email == "" {
		log.Error().Msg("cannot look up an identity without email")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByEmail(ctx, identity.Email)
	if err != nil {
		log.Err(err).Str("email", identity.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return foundUser, nil
}
