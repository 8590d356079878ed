package auth

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// dummyDigest is a valid bcrypt digest of a throwaway value. Login
// compares against it when no account matches the email, so the
// missing-account path costs the same bcrypt work as a real
// verification. The comparison result is always discarded.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hasher produces and verifies bcrypt password digests with a fixed
// work factor. The digest embeds its own salt and parameters, so
// verification needs no side channel.
type Hasher struct {
	cost int
}

// NewHasher creates a password hasher. Costs outside bcrypt's valid
// range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash creates a bcrypt digest of the password.
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the password matches the digest. Malformed
// digests verify as false rather than erroring; bcrypt's own
// constant-time comparison is used underneath.
func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// BurnDigest performs one bcrypt comparison against the dummy digest.
func (h *Hasher) BurnDigest(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyDigest), []byte(password))
}

// GenerateSecret creates a random 32-byte secret for token signing.
func GenerateSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
