package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints signed access tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a token string and gives you back the claims if it's
// legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HMACService signs and verifies tokens with a shared secret. The algorithm
// is pinned at construction; tokens signed with anything else fail
// verification as malformed.
type HMACService struct {
	method *jwt.SigningMethodHMAC
	secret []byte
	now    func() time.Time
}

// NewHMAC builds an HMACService for the given algorithm identifier
// (HS256, HS384 or HS512) and secret key.
func NewHMAC(alg, secret string) (*HMACService, error) {
	if secret == "" {
		return nil, errors.New("jwtx: empty signing secret")
	}

	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok || method == nil {
		return nil, fmt.Errorf("jwtx: unsupported signing algorithm %q", alg)
	}

	return &HMACService{
		method: method,
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

// Alg returns the pinned signing algorithm identifier.
func (s *HMACService) Alg() string { return s.method.Alg() }

// Sign encodes the claims into a signed compact JWT. Pure function of the
// claims and the secret; no side effects.
func (s *HMACService) Sign(c Claims) (string, error) {
	return jwt.NewWithClaims(s.method, c).SignedString(s.secret)
}

// Verify decodes and checks the token. Exactly one of three failures is
// reported: ErrMalformed for anything that cannot be parsed or doesn't
// verify against the secret, ErrExpired for a well-signed token at or past
// its expiry, and ErrMissingFields for a well-signed, unexpired token whose
// subject lacks required identity fields.
func (s *HMACService) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

var (
	_ Signer   = (*HMACService)(nil)
	_ Verifier = (*HMACService)(nil)
)
