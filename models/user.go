package models

import "time"

// User represents a customer account mirrored from the identity provider.
// A record is created (or its name refreshed) on every successful login;
// there is no deletion path.
type User struct {
	// ID is the internal unique identifier of the user record.
	ID string `json:"_id"`

	// Email is the unique identity key of the user. It is established by
	// the identity provider and never changes for an existing record.
	Email string `json:"email"`

	// Name is the display name of the user as reported by the identity
	// provider on the most recent login.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the user record was first created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the most recent login upsert.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
