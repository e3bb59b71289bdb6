// Package crypto holds the credential hashing used for user passcodes.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plain-text passcodes into one-way digests and checks
// passcodes against stored digests.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Hashing the same input
	// twice yields different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A mismatch or a
	// malformed digest is reported as false, never as an error.
	Verify(plaintext, digest string) bool
}
