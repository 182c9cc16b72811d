package identity

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_mock.go -package=mock

import (
	"context"
	"crypto/rsa"

	"github.com/tilyasov/bookstore/models"
)

// TokenVerifier checks an identity-provider ID token and extracts the caller
// identity from its claims.
type TokenVerifier interface {
	// Verify validates the raw token string (signature, issuer, audience,
	// expiry) and returns the identity it asserts. Any rejection is reported
	// as [ErrTokenInvalid] or one of the more specific sentinel errors.
	Verify(ctx context.Context, rawToken string) (models.Identity, error)
}

// KeySource resolves token-signing public keys by key id and can refresh its
// view of the provider's current key set.
type KeySource interface {
	Key(ctx context.Context, keyID string) (*rsa.PublicKey, error)
	Refresh(ctx context.Context) error
}
