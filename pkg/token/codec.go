// Package token signs and verifies the short-lived access tokens. Access
// tokens are stateless HS256 JWTs carrying the owning user id and an
// expiry; they are never persisted.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrVerificationFailed covers every decode failure: bad signature,
// malformed token, or expiry. Callers are not told which.
var ErrVerificationFailed = errors.New("token verification failed")

// Claims is the access-token payload.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Codec holds the signing secret and the access-token lifetime.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// TTL returns the access-token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Mint issues a signed access token for userID expiring after the
// codec's TTL.
func (c *Codec) Mint(userID int64) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry in a single pass and returns the
// decoded claims. It enforces HMAC signing to avoid algorithm confusion
// attacks.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	if !parsed.Valid {
		return nil, ErrVerificationFailed
	}

	return claims, nil
}
