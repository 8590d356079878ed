package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionPayload is the identity a session token asserts. It is the
// only state a session has; nothing is kept server-side, so the
// payload can go stale relative to the store until the token expires.
type SessionPayload struct {
	UserID string
	Email  string
	Name   *string
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string  `json:"uid"`
	Email  string  `json:"email"`
	Name   *string `json:"name,omitempty"`
}

// Codec signs and verifies session tokens with HMAC-SHA256. The
// secret is loaded once at startup and never changes for the life of
// the process.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a token codec with the given signing secret and
// token lifetime.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue serializes the payload with issued-at and expiry claims and
// signs the result.
func (c *Codec) Issue(payload SessionPayload) (string, error) {
	now := c.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: payload.UserID,
		Email:  payload.Email,
		Name:   payload.Name,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks the token's signature, structure and expiry and
// returns the embedded payload. Every rejection, whatever the cause,
// yields nil; callers cannot and must not distinguish a forged token
// from an expired or malformed one.
func (c *Codec) Verify(token string) *SessionPayload {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return nil
	}

	return &SessionPayload{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
	}
}
