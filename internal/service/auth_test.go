package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
	"github.com/spendlog/spendlog/pkg/jwtx"
)

func newAuthService(t *testing.T) (*AuthService, *jwtx.HMACService) {
	t.Helper()

	tokens, err := jwtx.NewHMAC("HS256", "test-secret-for-auth-service")
	require.NoError(t, err)

	s := newTestStore(t)
	seedTestStore(t, s)

	return &AuthService{
		Store:  s,
		Signer: tokens,
		Verify: tokens,
		Issuer: "spendlog-test",
	}, tokens
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, user, err := svc.Login(ctx, "superadmin@yopmail.com", "Test@1234")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, "superadmin@yopmail.com", user.Email)

		claims, err := svc.Verify.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject.UserID)
		require.Equal(t, user.RoleID, claims.Subject.RoleID)
	})

	t.Run("issued token is recorded on the user row", func(t *testing.T) {
		token, user, err := svc.Login(ctx, "admin@yopmail.com", "Test@1234")
		require.NoError(t, err)

		stored, err := svc.Store.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, token, stored.Token)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, _, errUnknown := svc.Login(ctx, "nobody@yopmail.com", "Test@1234")
		_, _, errWrong := svc.Login(ctx, "superadmin@yopmail.com", "WrongPass@1")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token resolves a principal", func(t *testing.T) {
		svc, _ := newAuthService(t)
		token, user, err := svc.Login(ctx, "superadmin@yopmail.com", "Test@1234")
		require.NoError(t, err)

		p, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		require.Equal(t, user.ID, p.UserID)
		require.Equal(t, user.Email, p.Email)
		require.Equal(t, domain.RoleSuperAdmin, p.RoleName)
	})

	t.Run("empty token is missing", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, err := svc.Authenticate(ctx, "")
		require.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("garbage token is invalid", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, err := svc.Authenticate(ctx, "not.a.token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token is reported as expired, not invalid", func(t *testing.T) {
		svc, tokens := newAuthService(t)
		user, err := svc.Store.Users().GetUserByEmail(ctx, "superadmin@yopmail.com")
		require.NoError(t, err)

		claims := jwtx.NewAccessClaims(jwtx.Subject{
			UserID: user.ID,
			Email:  user.Email,
			RoleID: user.RoleID,
		}, time.Minute, "spendlog-test", time.Now().Add(-time.Hour))

		expired, err := tokens.Sign(claims)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, expired)
		require.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		svc, _ := newAuthService(t)
		other, err := jwtx.NewHMAC("HS256", "a-completely-different-secret")
		require.NoError(t, err)

		user, err := svc.Store.Users().GetUserByEmail(ctx, "superadmin@yopmail.com")
		require.NoError(t, err)

		claims := jwtx.NewAccessClaims(jwtx.Subject{
			UserID: user.ID,
			Email:  user.Email,
			RoleID: user.RoleID,
		}, time.Hour, "spendlog-test", time.Now())

		forged, err := other.Sign(claims)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, forged)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token for a deleted user is invalid", func(t *testing.T) {
		svc, _ := newAuthService(t)
		user := createTestUser(t, svc.Store, "doomed@yopmail.com", "Test@1234", domain.RoleUser)

		token, _, err := svc.Login(ctx, user.Email, "Test@1234")
		require.NoError(t, err)

		require.NoError(t, svc.Store.Users().DeleteUser(ctx, user.ID))

		_, err = svc.Authenticate(ctx, token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("role comes from the token, not the stored user row", func(t *testing.T) {
		svc, tokens := newAuthService(t)
		user := createTestUser(t, svc.Store, "stale@yopmail.com", "Test@1234", domain.RoleUser)

		adminRole, err := svc.Store.Roles().GetRoleByName(ctx, domain.RoleAdmin)
		require.NoError(t, err)

		// Claims carry the Admin role even though the stored row says User.
		claims := jwtx.NewAccessClaims(jwtx.Subject{
			UserID: user.ID,
			Email:  user.Email,
			RoleID: adminRole.ID,
		}, time.Hour, "spendlog-test", time.Now())

		token, err := tokens.Sign(claims)
		require.NoError(t, err)

		p, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, p.RoleName)
	})

	t.Run("token with an unknown role id is invalid", func(t *testing.T) {
		svc, tokens := newAuthService(t)
		user := createTestUser(t, svc.Store, "ghostrole@yopmail.com", "Test@1234", domain.RoleUser)

		claims := jwtx.NewAccessClaims(jwtx.Subject{
			UserID: user.ID,
			Email:  user.Email,
			RoleID: 9999,
		}, time.Hour, "spendlog-test", time.Now())

		token, err := tokens.Sign(claims)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

// brokenTokenStore fails every advisory token write while leaving the rest
// of the store intact.
type brokenTokenStore struct {
	store.Store
}

func (s *brokenTokenStore) Users() store.Users {
	return &brokenTokenUsers{s.Store.Users()}
}

type brokenTokenUsers struct {
	store.Users
}

func (u *brokenTokenUsers) UpdateToken(ctx context.Context, id int64, token string) error {
	return errors.New("write failed")
}

func TestAuthService_Login_AdvisoryTokenWrite(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)
	svc.Store = &brokenTokenStore{svc.Store}

	// The token column is advisory only; a failed write must not turn a
	// good login into a failure.
	token, user, err := svc.Login(ctx, "superadmin@yopmail.com", "Test@1234")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "superadmin@yopmail.com", user.Email)
}
