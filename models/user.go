package models

import "time"

// User represents a registered account.
// The password is never serialized; outside the store it only ever holds
// plaintext on its way in (registration, login) or a bcrypt hash on its way
// out of the database.
type User struct {
	// ID is the store-assigned identifier (UUIDv7).
	ID string `json:"_id"`

	// Username is unique across all users and is copied into every blog
	// the user creates as the author display name.
	Username string `json:"username"`

	// Email is unique across all users and is the login identifier.
	Email string `json:"email"`

	// Password holds either the plaintext password supplied by a client or
	// the salted hash read from storage. It is never written to JSON.
	Password string `json:"-"`

	// CreatedAt is the moment the account was persisted.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated caller resolved from a bearer token.
// It is attached to the request context by the auth middleware.
type Identity struct {
	UserID   string
	Username string
}

// IsOwnerOf reports whether the identity created the given blog.
func (i Identity) IsOwnerOf(blog Blog) bool {
	return i.UserID != "" && i.UserID == blog.AuthorID
}
