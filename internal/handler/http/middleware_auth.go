// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/tilyasov/bookstore/internal/identity"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/utils"
	"github.com/tilyasov/bookstore/models"
)

// authTokenHeader is the request header carrying the raw identity-provider
// ID token. Unlike a standard Authorization header there is no scheme
// prefix: the header value is the token itself.
const authTokenHeader = "Authtoken"

// auth is an HTTP middleware that enforces identity-token authentication.
//
// It reads the raw ID token from the "Authtoken" header, verifies it via the
// configured [identity.TokenVerifier], and — on success — stores the
// verified identity in the request context under [utils.IdentityCtxKey]
// before delegating to the next handler.
//
// Every authentication rejection yields the same response: HTTP 401 with
// body {"err": "Invalid token"}. Clients cannot distinguish a missing header
// from an expired or forged token, and a signing-key outage on our side is
// answered the same way. Outages are logged at error level so operators can
// tell them apart from ordinary rejections.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rawToken := r.Header.Get(authTokenHeader)
		if rawToken == "" {
			log.Debug().Err(ErrEmptyAuthTokenHeader).Send()
			respondInvalidToken(w)
			return
		}

		ctx := r.Context()
		callerIdentity, err := h.verifier.Verify(ctx, rawToken)
		if err != nil {
			if errors.Is(err, identity.ErrCertificateFetch) || errors.Is(err, identity.ErrCertificateParse) {
				log.Err(err).Msg("cannot verify token: signing keys unavailable")
			} else {
				log.Debug().Err(err).Msg("token rejected")
			}
			respondInvalidToken(w)
			return
		}

		// Store the verified identity in the context so that downstream
		// handlers can retrieve it without re-verifying the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, callerIdentity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// respondInvalidToken writes the uniform 401 rejection body.
func respondInvalidToken(w http.ResponseWriter) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Err: invalidTokenMessage}, http.StatusUnauthorized)
}

// identityFromRequest extracts the verified identity placed in the context
// by the auth middleware. A protected route reached without one is a wiring
// bug; the request is rejected the same way the middleware would.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	callerIdentity, found := utils.GetIdentityFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Str("uri", r.RequestURI).Msg("protected route reached without identity in context")
		respondInvalidToken(w)
		return models.Identity{}, false
	}
	return callerIdentity, true
}
