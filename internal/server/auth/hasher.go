// Package auth provides the authentication core: password hashing, the JWT
// codec, and the access guard that resolves bearer tokens to users.
package auth

import "golang.org/x/crypto/bcrypt"

// Hasher hashes plaintext credentials and verifies candidates against stored
// digests.
type Hasher interface {
	// Hash produces a salted, irreversible digest of the password.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the digest. A malformed
	// digest counts as a mismatch, never an error.
	Verify(password, digest string) bool
}

// DummyDigest is verified against when a login names an unknown email, so the
// request costs the same as a real verification. It is a structurally valid
// bcrypt digest that matches no password.
const DummyDigest = "$2a$10$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// BcryptHasher implements Hasher using bcrypt. The comparison inside bcrypt
// is constant time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor. Costs outside
// bcrypt's allowed range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
