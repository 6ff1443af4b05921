package service

import (
	"context"
	"errors"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
)

var (
	ErrModuleNotFound      = errors.New("module not found")
	ErrModuleAlreadyExists = errors.New("module name already exists")
)

// ModulesService manages modules and the per-role permission toggle that
// gates access to module-scoped resources.
type ModulesService struct {
	Store store.Store
}

// CreateModule registers a module. Name and link name are both unique.
func (s *ModulesService) CreateModule(ctx context.Context, name, linkName, description string) (domain.Module, error) {
	id, err := s.Store.Modules().CreateModule(ctx, domain.Module{
		Name:        name,
		LinkName:    linkName,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Module{}, ErrModuleAlreadyExists
		}
		return domain.Module{}, err
	}
	return s.Store.Modules().GetModuleByID(ctx, id)
}

// UpdateModule rewrites a module's fields.
func (s *ModulesService) UpdateModule(ctx context.Context, id int64, name, linkName, description string) (domain.Module, error) {
	if err := s.Store.Modules().UpdateModule(ctx, id, name, linkName, description); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Module{}, ErrModuleNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Module{}, ErrModuleAlreadyExists
		}
		return domain.Module{}, err
	}
	return s.Store.Modules().GetModuleByID(ctx, id)
}

// ListModulesForRole returns every module annotated with whether the role
// holds a permission entry for it. The role must exist.
func (s *ModulesService) ListModulesForRole(ctx context.Context, roleID int64) ([]domain.ModuleAccess, error) {
	if _, err := s.Store.Roles().GetRoleByID(ctx, roleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return s.Store.Modules().ListModulesForRole(ctx, roleID, "id", "asc")
}

// TogglePermission flips a role's access to a module: an existing entry is
// deleted, a missing one is created. Returns true when the entry was
// created. The check and the write share a transaction so two concurrent
// toggles cannot double-insert.
func (s *ModulesService) TogglePermission(ctx context.Context, roleID, moduleID int64) (bool, error) {
	var created bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Roles().GetRoleByID(ctx, roleID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRoleNotFound
			}
			return err
		}
		if _, err := tx.Modules().GetModuleByID(ctx, moduleID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrModuleNotFound
			}
			return err
		}

		exists, err := tx.ModulePermissions().Find(ctx, roleID, moduleID)
		if err != nil {
			return err
		}

		if exists {
			return tx.ModulePermissions().Delete(ctx, roleID, moduleID)
		}
		created = true
		return tx.ModulePermissions().Insert(ctx, roleID, moduleID)
	})
	return created, err
}

// HasModuleAccess reports whether a role holds permission on the module
// identified by link name. Unknown link names deny.
func (s *ModulesService) HasModuleAccess(ctx context.Context, roleID int64, linkName string) (bool, error) {
	module, err := s.Store.Modules().GetModuleByLinkName(ctx, linkName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.Store.ModulePermissions().Find(ctx, roleID, module.ID)
}
