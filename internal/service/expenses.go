package service

import (
	"context"
	"errors"
	"time"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
)

// expenseSortFields are the sort keys accepted on expense listings.
var expenseSortFields = map[string]bool{
	"id":         true,
	"amount":     true,
	"spent_at":   true,
	"created_at": true,
}

// ExpensesService manages a user's expenses and spend reports. All
// operations are scoped to the owning user.
type ExpensesService struct {
	Store store.Store
}

// CreateExpense records an expense against one of the user's categories.
func (s *ExpensesService) CreateExpense(ctx context.Context, userID, categoryID int64, amount float64, description string, spentAt time.Time) (domain.Expense, error) {
	if amount <= 0 {
		return domain.Expense{}, ErrInvalidAmount
	}

	cat, err := s.Store.Categories().GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Expense{}, ErrCategoryNotFound
		}
		return domain.Expense{}, err
	}
	if cat.UserID != userID {
		return domain.Expense{}, ErrCategoryNotFound
	}

	id, err := s.Store.Expenses().CreateExpense(ctx, domain.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		SpentAt:     spentAt,
	})
	if err != nil {
		return domain.Expense{}, err
	}
	return s.Store.Expenses().GetExpenseByID(ctx, id)
}

// ListExpenses returns a validated, paginated page of the user's expenses
// plus the total count.
func (s *ExpensesService) ListExpenses(ctx context.Context, userID int64, offset, limit int, sortBy, order string) ([]domain.Expense, int64, error) {
	sortBy, order, err := ValidateSort(expenseSortFields, sortBy, order)
	if err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	expenses, err := s.Store.Expenses().ListExpensesByUser(ctx, userID, store.ListParams{
		Offset: offset,
		Limit:  limit,
		SortBy: sortBy,
		Order:  order,
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := s.Store.Expenses().CountExpensesByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// GetExpense fetches one of the user's expenses.
func (s *ExpensesService) GetExpense(ctx context.Context, userID, id int64) (domain.Expense, error) {
	e, err := s.Store.Expenses().GetExpenseByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Expense{}, ErrExpenseNotFound
		}
		return domain.Expense{}, err
	}
	if e.UserID != userID {
		return domain.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}

// UpdateExpense rewrites an expense. The target category must belong to the
// same user.
func (s *ExpensesService) UpdateExpense(ctx context.Context, userID, id, categoryID int64, amount float64, description string, spentAt time.Time) (domain.Expense, error) {
	if amount <= 0 {
		return domain.Expense{}, ErrInvalidAmount
	}

	if _, err := s.GetExpense(ctx, userID, id); err != nil {
		return domain.Expense{}, err
	}

	cat, err := s.Store.Categories().GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Expense{}, ErrCategoryNotFound
		}
		return domain.Expense{}, err
	}
	if cat.UserID != userID {
		return domain.Expense{}, ErrCategoryNotFound
	}

	err = s.Store.Expenses().UpdateExpense(ctx, domain.Expense{
		ID:          id,
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		SpentAt:     spentAt,
	})
	if err != nil {
		return domain.Expense{}, err
	}
	return s.Store.Expenses().GetExpenseByID(ctx, id)
}

// DeleteExpense removes one of the user's expenses.
func (s *ExpensesService) DeleteExpense(ctx context.Context, userID, id int64) error {
	if _, err := s.GetExpense(ctx, userID, id); err != nil {
		return err
	}
	return s.Store.Expenses().DeleteExpense(ctx, id)
}

// SpendReport aggregates the user's spend by category and by calendar
// month.
func (s *ExpensesService) SpendReport(ctx context.Context, userID int64) ([]domain.CategorySpend, []domain.MonthSpend, error) {
	byCategory, err := s.Store.Expenses().SpendByCategory(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	byMonth, err := s.Store.Expenses().SpendByMonth(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return byCategory, byMonth, nil
}
