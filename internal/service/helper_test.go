package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
	"github.com/spendlog/spendlog/internal/store/drivers/sqlite"
	"github.com/spendlog/spendlog/pkg/cryptox"
)

// newTestStore opens a migrated sqlite store backed by a per-test temp file.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// seedTestStore installs the default roles, users and modules.
func seedTestStore(t *testing.T, s store.Store) {
	t.Helper()

	seeder := &SeedService{
		Store:  s,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	require.NoError(t, seeder.Run(context.Background()))
}

// createTestUser inserts a user with the given role name and returns it.
func createTestUser(t *testing.T, s store.Store, email, password, roleName string) domain.User {
	t.Helper()

	ctx := context.Background()
	role, err := s.Roles().GetRoleByName(ctx, roleName)
	require.NoError(t, err)

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	id, err := s.Users().CreateUser(ctx, domain.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.ID,
	})
	require.NoError(t, err)

	user, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	return user
}
