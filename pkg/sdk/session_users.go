package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateUser registers a new user.
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (UserData, error) {
	var data UserData
	err := s.call(ctx, http.MethodPost, "/v1/users", req, &data)
	return data, err
}

// ListUsers returns a page of users.
func (s *Session) ListUsers(ctx context.Context, offset, limit int, sortBy, order string) (UserListData, error) {
	q := url.Values{}
	q.Set("offset", fmt.Sprint(offset))
	q.Set("limit", fmt.Sprint(limit))
	if sortBy != "" {
		q.Set("sort_by", sortBy)
	}
	if order != "" {
		q.Set("order", order)
	}

	var data UserListData
	err := s.call(ctx, http.MethodGet, "/v1/users?"+q.Encode(), nil, &data)
	return data, err
}

// GetUser fetches one user by id.
func (s *Session) GetUser(ctx context.Context, id int64) (UserData, error) {
	var data UserData
	err := s.call(ctx, http.MethodGet, fmt.Sprintf("/v1/users/%d", id), nil, &data)
	return data, err
}

// UpdateUser changes a user's name fields.
func (s *Session) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (UserData, error) {
	var data UserData
	err := s.call(ctx, http.MethodPut, fmt.Sprintf("/v1/users/%d", id), req, &data)
	return data, err
}

// ChangePassword rotates a user's password after checking the old one.
func (s *Session) ChangePassword(ctx context.Context, id int64, req ChangePasswordRequest) error {
	return s.call(ctx, http.MethodPut, fmt.Sprintf("/v1/users/%d/password", id), req, nil)
}

// DeleteUser removes a user and everything they own.
func (s *Session) DeleteUser(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, fmt.Sprintf("/v1/users/%d", id), nil, nil)
}
