package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateCategory adds an expense category for the session's user.
func (s *Session) CreateCategory(ctx context.Context, req CategoryRequest) (CategoryData, error) {
	var data CategoryData
	err := s.call(ctx, http.MethodPost, "/v1/categories", req, &data)
	return data, err
}

// ListCategories returns the session user's categories.
func (s *Session) ListCategories(ctx context.Context) ([]CategoryData, error) {
	var data []CategoryData
	err := s.call(ctx, http.MethodGet, "/v1/categories", nil, &data)
	return data, err
}

// GetCategory fetches one of the session user's categories by id.
func (s *Session) GetCategory(ctx context.Context, id int64) (CategoryData, error) {
	var data CategoryData
	err := s.call(ctx, http.MethodGet, fmt.Sprintf("/v1/categories/%d", id), nil, &data)
	return data, err
}

// UpdateCategory renames a category.
func (s *Session) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (CategoryData, error) {
	var data CategoryData
	err := s.call(ctx, http.MethodPut, fmt.Sprintf("/v1/categories/%d", id), req, &data)
	return data, err
}

// DeleteCategory removes a category. Fails while expenses reference it.
func (s *Session) DeleteCategory(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, fmt.Sprintf("/v1/categories/%d", id), nil, nil)
}
