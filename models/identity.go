package models

// Identity is the verified identity extracted from an identity-provider
// token. It is attached to the request context by the auth middleware and
// is the only trusted source of the caller's email and name.
type Identity struct {
	// Email is the verified email address of the caller. Always non-empty
	// for a successfully verified token.
	Email string `json:"email"`

	// Name is the display name claim of the caller. May be empty if the
	// provider did not include it.
	Name string `json:"name"`
}
