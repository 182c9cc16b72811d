// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package http

import (
	"net/http"

	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/utils"
)

// login mirrors the verified identity into the local users table and returns
// the stored account. The request body is ignored: everything the endpoint
// needs comes from the verified token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	callerIdentity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.Login(r.Context(), callerIdentity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("login failed")
		respondError(w, err)
		return
	}

	log.Debug().Str("id", user.ID).Str("email", user.Email).Msg("user logged in")
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

// profile returns the stored account of the caller. 404 when the identity
// has never logged in.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	callerIdentity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.Profile(r.Context(), callerIdentity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.profile").Msg("profile lookup failed")
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
