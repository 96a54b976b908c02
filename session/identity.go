package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity mirrors the claims StaffDesk embeds in its bearer tokens.

type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

// ParseIdentity reads the identity claims without verifying the signature.
// The client holds no signing secret; the server is the authority and
// rejects a bad token with 401 on the next request.
func ParseIdentity(token string) (*Identity, error) {
	claims := &IdentityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return &claims.Identity, nil
}

// MintToken signs an identity with HS256. Real tokens come from
// POST /auth/login; this exists for tests and local stub servers.
func MintToken(identity *Identity, secret []byte, ttl time.Duration) (string, error) {
	claims := IdentityClaims{
		Identity: *identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "staffdesk",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}
