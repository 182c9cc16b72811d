// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tilyasov/bookstore/internal/config"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/models"
)

// Verifier validates RS256 ID tokens minted by the external identity
// provider against its published signing certificates.
//
// A token is accepted when its signature verifies against the key named by
// the "kid" header, its issuer and audience match the configured provider
// project, and it has not expired. The application never mints tokens of its
// own; this is the only authentication path.
type Verifier struct {
	keys     KeySource
	issuer   string
	audience string
	logger   *logger.Logger
}

// NewVerifier constructs a [Verifier] for the configured provider project.
func NewVerifier(cfg config.Identity, keys KeySource, log *logger.Logger) *Verifier {
	log.Debug().Str("issuer", cfg.Issuer).Str("audience", cfg.Audience).Msg("creating identity token verifier")
	return &Verifier{
		keys:     keys,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		logger:   log,
	}
}

// Verify implements [TokenVerifier].
func (v *Verifier) Verify(ctx context.Context, rawToken string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	token, err := jwt.Parse(rawToken, v.keyFunc(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		// keep the fetch failure distinguishable: it is our outage,
		// not the caller's bad token
		if errors.Is(err, ErrCertificateFetch) || errors.Is(err, ErrCertificateParse) {
			log.Err(err).Str("func", "*Verifier.Verify").Msg("cannot verify token: signing keys unavailable")
			return models.Identity{}, err
		}
		log.Debug().Err(err).Str("func", "*Verifier.Verify").Msg("token rejected")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, fmt.Errorf("%w: unexpected claims type", ErrTokenInvalid)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		log.Debug().Str("func", "*Verifier.Verify").Msg("token rejected: no email claim")
		return models.Identity{}, ErrMissingEmailClaim
	}
	name, _ := claims["name"].(string)

	return models.Identity{Email: email, Name: name}, nil
}

// keyFunc resolves the verification key named by the token's "kid" header.
func (v *Verifier) keyFunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, fmt.Errorf("token header carries no kid")
		}
		return v.keys.Key(ctx, kid)
	}
}
