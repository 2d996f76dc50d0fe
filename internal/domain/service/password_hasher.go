// Package service defines the contracts of the adapters the usecases depend on:
// hashing, ids, seed data, payment, QR codes and event publishing.
package service

// PasswordHasher turns passwords into the hashes kept in the account registry.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
