// Package jwt issues and verifies the signed bearer tokens used by the
// admin API.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. Expired and invalid are distinct so handlers can
// report them differently; both deny access.
var (
	// ErrTokenExpired is returned when the token's expiry is in the past.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned when the signature does not verify, the
	// token is malformed, or a required claim is missing.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the verified payload of a token.
type Claims struct {
	// Subject is the user ID the token was issued for.
	Subject string

	// Role is the role embedded at issuance time. Authorization re-reads the
	// stored role on every request; this copy is kept for logging.
	Role string
}

// tokenClaims is the wire representation of the payload.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies HS256-signed tokens with a fixed lifetime.
type Issuer struct {
	secret     []byte
	expiration time.Duration
}

// NewIssuer creates an Issuer with the provided secret and token lifetime.
func NewIssuer(secret string, expiration time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Issue creates a signed token for the given user and role.
func (i *Issuer) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token and returns its claims.
// It returns ErrTokenExpired for an expired token and ErrTokenInvalid for
// everything else that fails verification.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	return &Claims{Subject: claims.Subject, Role: claims.Role}, nil
}
