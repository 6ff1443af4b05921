package service

import (
	"context"
	"errors"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
)

var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleAlreadyExists = errors.New("role name already exists")

	// ErrRoleInUse blocks deleting a role while users still hold it.
	ErrRoleInUse = errors.New("role is assigned to users")
)

// RolesService manages the role catalogue.
type RolesService struct {
	Store store.Store
}

// CreateRole adds a role. Names are unique.
func (s *RolesService) CreateRole(ctx context.Context, name, description string) (domain.Role, error) {
	id, err := s.Store.Roles().CreateRole(ctx, domain.Role{Name: name, Description: description})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Role{}, ErrRoleAlreadyExists
		}
		return domain.Role{}, err
	}
	return s.Store.Roles().GetRoleByID(ctx, id)
}

// ListRoles returns every role ordered by id.
func (s *RolesService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListRoles(ctx, "id", "asc")
}

// GetRole fetches one role.
func (s *RolesService) GetRole(ctx context.Context, id int64) (domain.Role, error) {
	role, err := s.Store.Roles().GetRoleByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	return role, err
}

// UpdateRole renames a role.
func (s *RolesService) UpdateRole(ctx context.Context, id int64, name, description string) (domain.Role, error) {
	if err := s.Store.Roles().UpdateRole(ctx, id, name, description); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Role{}, ErrRoleNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Role{}, ErrRoleAlreadyExists
		}
		return domain.Role{}, err
	}
	return s.Store.Roles().GetRoleByID(ctx, id)
}

// DeleteRole removes a role. The reference check and the delete run in one
// transaction so a concurrent user creation cannot slip between them.
func (s *RolesService) DeleteRole(ctx context.Context, id int64) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Roles().GetRoleByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		n, err := tx.Users().CountUsersWithRole(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrRoleInUse
		}

		return tx.Roles().DeleteRole(ctx, id)
	})
}
