package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens minted when
// an account is created (onboarding or invitation acceptance).
const DefaultSessionTTL = 24 * time.Hour

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
)

// Claims are the session-token claims carried between this service and the
// identity layer. The principal is {sub, role}; everything else is display
// convenience.
type Claims struct {
	jwt.RegisteredClaims

	// Role is "requester" or "responder".
	Role string `json:"role,omitempty"`

	// Name is the account's display name.
	Name string `json:"name,omitempty"`

	// Email is the account's email address.
	Email string `json:"email,omitempty"`
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(subject, role, name, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		Role:  role,
		Name:  name,
		Email: email,
	}
}

// newJTI returns a URL-safe random identifier for the "jti" claim.
func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrMalformed
	}
	return nil
}
