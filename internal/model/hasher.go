package model

// PasswordHasher produces and verifies one-way password digests.
type PasswordHasher interface {
	// Hash produces a salted digest of the password. The digest is never
	// equal to the plaintext.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the digest using a
	// comparison that is safe against timing attacks.
	Verify(password, digest string) bool
}
