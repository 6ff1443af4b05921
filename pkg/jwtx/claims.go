package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the fallback lifetime for access tokens when the
// configuration does not specify one.
const DefaultAccessTokenTTL = 30 * time.Minute

var (
	ErrMalformed = errors.New("jwtx: malformed token")
	ErrExpired   = errors.New("jwtx: token expired")

	// ErrMissingFields means the signature verified but the subject is
	// structurally incomplete (missing id, email or role id). Callers need
	// to tell "badly signed" apart from "well signed but incomplete".
	ErrMissingFields = errors.New("jwtx: claims missing required fields")
)

// Subject is the identity payload carried in the "sub" claim. All three
// fields are mandatory; a token missing any of them is invalid regardless
// of signature validity.
type Subject struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	RoleID int64  `json:"role_id"`
}

// Claims are the access-token claims. The structured subject shadows the
// registered string "sub" claim.
type Claims struct {
	jwt.RegisteredClaims

	Subject Subject `json:"sub"`
}

// NewAccessClaims builds minimally-correct claims with an absolute expiry of
// now + ttl.
func NewAccessClaims(sub Subject, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Subject: sub,
	}
}

// ValidateSubject ensures the subject carries all required identity fields.
func (c *Claims) ValidateSubject() error {
	if c.Subject.UserID == 0 || c.Subject.Email == "" || c.Subject.RoleID == 0 {
		return ErrMissingFields
	}
	return nil
}

// ValidateExpiry ensures the token carries an expiry and hasn't passed it.
// Verify already enforces this; it is exported for callers holding claims
// obtained elsewhere.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrMalformed
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
