// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes and verifies user passwords with a one-way, salted algorithm.
type PasswordHasher interface {
	// Hash returns the salted hash of password. The plaintext is never stored.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
