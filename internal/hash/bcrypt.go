// Package hash provides password hashing backed by bcrypt.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/askhub/askhub-server/internal/model"
)

// Cost is the bcrypt work factor applied to every new digest.
const Cost = 10

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements model.PasswordHasher using bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the standard cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: Cost}
}

// Hash produces a salted bcrypt digest of the password.
func (h *Bcrypt) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether the password matches the digest. bcrypt's own
// comparison is resistant to timing attacks.
func (h *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
