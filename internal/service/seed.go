package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
	"github.com/spendlog/spendlog/pkg/cryptox"
)

// SeedService installs the default roles, users and modules into an empty
// database. Each group is skipped entirely when it already has rows, so
// running it on every startup is safe.
type SeedService struct {
	Store  store.Store
	Logger *slog.Logger
}

type seedUser struct {
	firstName string
	lastName  string
	email     string
	password  string
	roleName  string
}

var (
	defaultRoles = []domain.Role{
		{Name: domain.RoleSuperAdmin, Description: "All access to all features"},
		{Name: domain.RoleAdmin, Description: "Limited access to all features"},
		{Name: domain.RoleUser, Description: "User-related modules permission."},
	}

	defaultModules = []domain.Module{
		{Name: "Dashboard", LinkName: "dashboard", Description: "All report"},
	}

	defaultUsers = []seedUser{
		{"Super", "Admin", "superadmin@yopmail.com", "Test@1234", domain.RoleSuperAdmin},
		{"Admin", "", "admin@yopmail.com", "Test@1234", domain.RoleAdmin},
		{"Normal", "User", "testuser@yopmail.com", "Test@1234", domain.RoleUser},
	}
)

// Run seeds roles, users, modules and module permissions in dependency
// order.
func (s *SeedService) Run(ctx context.Context) error {
	if err := s.seedRoles(ctx); err != nil {
		return err
	}
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	seeded, err := s.seedModules(ctx)
	if err != nil {
		return err
	}
	if !seeded {
		return nil
	}
	return s.seedModulePermissions(ctx)
}

func (s *SeedService) seedRoles(ctx context.Context) error {
	empty, err := s.Store.Roles().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		s.Logger.Debug("roles already exist, skipping seed")
		return nil
	}

	for _, r := range defaultRoles {
		if _, err := s.Store.Roles().CreateRole(ctx, r); err != nil {
			return err
		}
	}
	s.Logger.Info("seeded default roles", "count", len(defaultRoles))
	return nil
}

func (s *SeedService) seedUsers(ctx context.Context) error {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		s.Logger.Debug("users already exist, skipping seed")
		return nil
	}

	for _, u := range defaultUsers {
		role, err := s.Store.Roles().GetRoleByName(ctx, u.roleName)
		if err != nil {
			return err
		}

		hash, err := cryptox.HashPassword(u.password)
		if err != nil {
			return err
		}

		_, err = s.Store.Users().CreateUser(ctx, domain.User{
			FirstName:    u.firstName,
			LastName:     u.lastName,
			Email:        u.email,
			PasswordHash: hash,
			RoleID:       role.ID,
		})
		if err != nil {
			return err
		}
	}
	s.Logger.Info("seeded default users", "count", len(defaultUsers))
	return nil
}

// seedModules reports whether it inserted the default modules, so the
// grant pass can be limited to that first boot.
func (s *SeedService) seedModules(ctx context.Context) (bool, error) {
	empty, err := s.Store.Modules().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		s.Logger.Debug("modules already exist, skipping seed")
		return false, nil
	}

	for _, m := range defaultModules {
		if _, err := s.Store.Modules().CreateModule(ctx, m); err != nil {
			return false, err
		}
	}
	s.Logger.Info("seeded default modules", "count", len(defaultModules))
	return true, nil
}

// seedModulePermissions grants every default role access to every default
// module. It only runs on the boot that inserted the modules; later
// restarts must not restore grants an administrator has since revoked.
func (s *SeedService) seedModulePermissions(ctx context.Context) error {
	for _, r := range defaultRoles {
		role, err := s.Store.Roles().GetRoleByName(ctx, r.Name)
		if errors.Is(err, store.ErrNotFound) {
			s.Logger.Warn("default role missing, skipping its grants", "role", r.Name)
			continue
		}
		if err != nil {
			return err
		}

		for _, m := range defaultModules {
			module, err := s.Store.Modules().GetModuleByLinkName(ctx, m.LinkName)
			if err != nil {
				return err
			}

			exists, err := s.Store.ModulePermissions().Find(ctx, role.ID, module.ID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			if err := s.Store.ModulePermissions().Insert(ctx, role.ID, module.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
