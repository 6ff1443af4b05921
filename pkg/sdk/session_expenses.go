package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateExpense records an expense for the session's user.
func (s *Session) CreateExpense(ctx context.Context, req ExpenseRequest) (ExpenseData, error) {
	var data ExpenseData
	err := s.call(ctx, http.MethodPost, "/v1/expenses", req, &data)
	return data, err
}

// ListExpenses returns a page of the session user's expenses.
func (s *Session) ListExpenses(ctx context.Context, offset, limit int, sortBy, order string) (ExpenseListData, error) {
	q := url.Values{}
	q.Set("offset", fmt.Sprint(offset))
	q.Set("limit", fmt.Sprint(limit))
	if sortBy != "" {
		q.Set("sort_by", sortBy)
	}
	if order != "" {
		q.Set("order", order)
	}

	var data ExpenseListData
	err := s.call(ctx, http.MethodGet, "/v1/expenses?"+q.Encode(), nil, &data)
	return data, err
}

// GetExpense fetches one of the session user's expenses by id.
func (s *Session) GetExpense(ctx context.Context, id int64) (ExpenseData, error) {
	var data ExpenseData
	err := s.call(ctx, http.MethodGet, fmt.Sprintf("/v1/expenses/%d", id), nil, &data)
	return data, err
}

// UpdateExpense rewrites an expense's fields.
func (s *Session) UpdateExpense(ctx context.Context, id int64, req ExpenseRequest) (ExpenseData, error) {
	var data ExpenseData
	err := s.call(ctx, http.MethodPut, fmt.Sprintf("/v1/expenses/%d", id), req, &data)
	return data, err
}

// DeleteExpense removes an expense.
func (s *Session) DeleteExpense(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, fmt.Sprintf("/v1/expenses/%d", id), nil, nil)
}

// SpendReport returns the session user's spend aggregated by category and by
// calendar month.
func (s *Session) SpendReport(ctx context.Context) (SpendReportData, error) {
	var data SpendReportData
	err := s.call(ctx, http.MethodGet, "/v1/reports/spend", nil, &data)
	return data, err
}
