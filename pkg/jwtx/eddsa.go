package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Signer signs and verifies session tokens with a single Ed25519 key. The
// key is generated at startup and lives only in memory: sessions don't
// survive a restart, which is acceptable for this service's short-lived
// session artifacts.
type Signer struct {
	kid    string
	key    ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
}

// NewEphemeralSigner generates a fresh Ed25519 keypair.
func NewEphemeralSigner(issuer string) (*Signer, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate Ed25519 key: %w", err)
	}

	return &Signer{
		kid:    newJTI(),
		key:    key,
		pub:    pub,
		issuer: issuer,
	}, nil
}

func (s *Signer) KID() string { return s.kid }

// Issuer returns the issuer this signer stamps and enforces on tokens.
func (s *Signer) Issuer() string { return s.issuer }

// Sign turns claims into a signed JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Verify parses and validates a token signed by this signer.
func (s *Signer) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodEdDSA.Alg() {
			return nil, ErrAlgMismatch
		}
		return s.pub, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, fmt.Errorf("jwtx: %w", err)
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(s.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
