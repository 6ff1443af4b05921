package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateModule registers a new module.
func (s *Session) CreateModule(ctx context.Context, req ModuleRequest) (ModuleData, error) {
	var data ModuleData
	err := s.call(ctx, http.MethodPost, "/v1/modules", req, &data)
	return data, err
}

// UpdateModule changes a module's name, link name or description.
func (s *Session) UpdateModule(ctx context.Context, id int64, req ModuleRequest) (ModuleData, error) {
	var data ModuleData
	err := s.call(ctx, http.MethodPut, fmt.Sprintf("/v1/modules/%d", id), req, &data)
	return data, err
}

// ListModulesForRole returns every module flagged with whether the given
// role currently holds permission on it.
func (s *Session) ListModulesForRole(ctx context.Context, roleID int64) ([]ModuleData, error) {
	var data []ModuleData
	err := s.call(ctx, http.MethodGet, fmt.Sprintf("/v1/modules/role/%d", roleID), nil, &data)
	return data, err
}

// TogglePermission flips a role's access to a module. The returned message
// says whether the entry was created or deleted.
func (s *Session) TogglePermission(ctx context.Context, req TogglePermissionRequest) (string, error) {
	env, err := s.callEnvelope(ctx, http.MethodPut, "/v1/modules/permission", req)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
