package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spendlog/spendlog/internal/domain"
)

func TestPasswordIsStrong(t *testing.T) {
	cases := []struct {
		password string
		strong   bool
	}{
		{"Test@1234", true},
		{"short1!", false},
		{"alllowercase", false},
		{"12345678!", false},
		{"NoDigitsHere!", false},
		{"NoSpecials123", false},
		{"G00d-enough", true},
	}

	for _, tc := range cases {
		require.Equal(t, tc.strong, PasswordIsStrong(tc.password), "password %q", tc.password)
	}
}

func TestUsersService_CreateUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTestStore(t, s)
	svc := &UsersService{Store: s}

	role, err := s.Roles().GetRoleByName(ctx, domain.RoleUser)
	require.NoError(t, err)

	t.Run("creates and hashes the password", func(t *testing.T) {
		user, err := svc.CreateUser(ctx, "Alice", "Nguyen", "alice@yopmail.com", "Str0ng!pass", role.ID)
		require.NoError(t, err)
		require.NotZero(t, user.ID)
		require.NotEqual(t, "Str0ng!pass", user.PasswordHash)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "Alice", "Again", "alice@yopmail.com", "Str0ng!pass", role.ID)
		require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "Bob", "Weak", "bob@yopmail.com", "weak", role.ID)
		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "Carol", "NoRole", "carol@yopmail.com", "Str0ng!pass", 9999)
		require.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestUsersService_ListUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTestStore(t, s)
	svc := &UsersService{Store: s}

	t.Run("paginates and counts", func(t *testing.T) {
		users, total, err := svc.ListUsers(ctx, 0, 2, "email", "asc")
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.EqualValues(t, 3, total)
	})

	t.Run("rejects unknown sort field", func(t *testing.T) {
		_, _, err := svc.ListUsers(ctx, 0, 10, "password_hash", "asc")
		require.ErrorIs(t, err, ErrInvalidSortField)
	})

	t.Run("rejects unknown sort order", func(t *testing.T) {
		_, _, err := svc.ListUsers(ctx, 0, 10, "email", "sideways")
		require.ErrorIs(t, err, ErrInvalidSortOrder)
	})
}

func TestUsersService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTestStore(t, s)
	svc := &UsersService{Store: s}

	user := createTestUser(t, s, "rotate@yopmail.com", "Old@12345", domain.RoleUser)

	t.Run("wrong old password is rejected", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "Nope@12345", "New@12345")
		require.ErrorIs(t, err, ErrPasswordIncorrect)
	})

	t.Run("weak new password is rejected", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "Old@12345", "weak")
		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("rotates the hash", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, user.ID, "Old@12345", "New@12345"))

		err := svc.ChangePassword(ctx, user.ID, "Old@12345", "Other@12345")
		require.ErrorIs(t, err, ErrPasswordIncorrect)
		require.NoError(t, svc.ChangePassword(ctx, user.ID, "New@12345", "Other@12345"))
	})
}

func TestUsersService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTestStore(t, s)
	svc := &UsersService{Store: s}

	user := createTestUser(t, s, "mutable@yopmail.com", "Test@1234", domain.RoleUser)

	t.Run("updates name fields", func(t *testing.T) {
		updated, err := svc.UpdateUser(ctx, user.ID, "Renamed", "Person")
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.FirstName)
		require.Equal(t, "Person", updated.LastName)
	})

	t.Run("update of a missing user reports not found", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, 9999, "No", "One")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("delete removes the user", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctx, user.ID))
		_, err := svc.GetUser(ctx, user.ID)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
