package identity

import "errors"

var (
	// ErrCertificateFetch indicates the provider's signing certificates could
	// not be downloaded.
	ErrCertificateFetch = errors.New("failed to fetch identity provider certificates")
	// ErrCertificateParse indicates a downloaded certificate could not be
	// decoded into an RSA public key.
	ErrCertificateParse = errors.New("failed to parse identity provider certificate")
	// ErrUnknownKeyID indicates the token names a signing key the provider no
	// longer publishes.
	ErrUnknownKeyID = errors.New("token signed with unknown key id")
	// ErrTokenInvalid covers every token rejection: bad signature, wrong
	// issuer or audience, expiry, malformed payload.
	ErrTokenInvalid = errors.New("invalid identity token")
	// ErrMissingEmailClaim indicates a structurally valid token without the
	// email claim the application keys every record on.
	ErrMissingEmailClaim = errors.New("identity token carries no email claim")
)
