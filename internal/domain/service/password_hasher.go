// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher turns passwords into self-describing storable hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify never fails: malformed stored values simply do not match.
	Verify(password, stored string) bool
}
