package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateRole adds a new role.
func (s *Session) CreateRole(ctx context.Context, req RoleRequest) (RoleData, error) {
	var data RoleData
	err := s.call(ctx, http.MethodPost, "/v1/roles", req, &data)
	return data, err
}

// ListRoles returns every role.
func (s *Session) ListRoles(ctx context.Context) ([]RoleData, error) {
	var data []RoleData
	err := s.call(ctx, http.MethodGet, "/v1/roles", nil, &data)
	return data, err
}

// GetRole fetches one role by id.
func (s *Session) GetRole(ctx context.Context, id int64) (RoleData, error) {
	var data RoleData
	err := s.call(ctx, http.MethodGet, fmt.Sprintf("/v1/roles/%d", id), nil, &data)
	return data, err
}

// UpdateRole renames a role.
func (s *Session) UpdateRole(ctx context.Context, id int64, req RoleRequest) (RoleData, error) {
	var data RoleData
	err := s.call(ctx, http.MethodPut, fmt.Sprintf("/v1/roles/%d", id), req, &data)
	return data, err
}

// DeleteRole removes a role. Fails while users still hold it.
func (s *Session) DeleteRole(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, fmt.Sprintf("/v1/roles/%d", id), nil, nil)
}
