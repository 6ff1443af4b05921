package service

import (
	"context"
	"errors"
	"time"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
	"github.com/spendlog/spendlog/pkg/cryptox"
	"github.com/spendlog/spendlog/pkg/jwtx"
	"github.com/spendlog/spendlog/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers every login failure: unknown email and
	// wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken means no bearer token accompanied the request.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken covers malformed tokens, bad signatures, incomplete
	// claims and tokens whose user or role no longer resolves.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is a well-signed token at or past its expiry.
	ErrExpiredToken = errors.New("expired token")
)

// AuthService issues access tokens on login and resolves bearer tokens into
// authenticated principals.
type AuthService struct {
	Store  store.Store
	Signer jwtx.Signer
	Verify jwtx.Verifier

	Issuer   string
	TokenTTL time.Duration
}

func (s *AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// Login checks the credentials and mints a signed access token. The token is
// also recorded on the user row for reference; verification never reads it
// back, so it is not a revocation list.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		return "", domain.User{}, ErrInvalidCredentials
	}

	claims := jwtx.NewAccessClaims(jwtx.Subject{
		UserID: user.ID,
		Email:  user.Email,
		RoleID: user.RoleID,
	}, s.ttl(), s.Issuer, time.Now())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.User{}, err
	}

	// The stored token is advisory; verification never reads it, so a
	// failed write does not fail the login.
	if err := s.Store.Users().UpdateToken(ctx, user.ID, token); err != nil {
		slogx.FromContext(ctx).Warn("failed to record issued token", "user_id", user.ID, "error", err)
	}

	return token, user, nil
}

// Authenticate turns a raw bearer token into a resolved Principal. The
// pipeline is strictly sequential: verify the signature and claim shape,
// look up the user by the email claim, then look up the role by the role id
// claim. The role comes from the token, not from the stored user row, and
// the two are deliberately not cross-checked; a stale token keeps its role
// until it expires.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (domain.Principal, error) {
	if raw == "" {
		return domain.Principal{}, ErrMissingToken
	}

	claims, err := s.Verify.Verify(raw)
	if err != nil {
		switch {
		case errors.Is(err, jwtx.ErrExpired):
			return domain.Principal{}, ErrExpiredToken
		default:
			// Malformed tokens and incomplete claims both land here.
			return domain.Principal{}, ErrInvalidToken
		}
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, claims.Subject.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Principal{}, ErrInvalidToken
		}
		return domain.Principal{}, err
	}

	role, err := s.Store.Roles().GetRoleByID(ctx, claims.Subject.RoleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Principal{}, ErrInvalidToken
		}
		return domain.Principal{}, err
	}

	return domain.Principal{
		UserID:   user.ID,
		Email:    user.Email,
		RoleID:   role.ID,
		RoleName: role.Name,
	}, nil
}
