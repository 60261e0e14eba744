// Package crypto holds the password hashing used for user credentials.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them. It knows nothing about users, storage or
// the network.
type PasswordHasher interface {
	// Hash returns a salted hash of password. A fresh random salt is drawn
	// on every call, so hashing the same password twice yields different
	// results.
	Hash(password string) (string, error)

	// Verify reports whether password matches the previously produced hash.
	// A malformed hash never matches.
	Verify(password, hash string) bool
}
