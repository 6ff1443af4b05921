package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spendlog/spendlog/internal/domain"
)

func TestCategoriesService(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTestStore(t, s)
	svc := &CategoriesService{Store: s}

	owner := createTestUser(t, s, "owner@yopmail.com", "Test@1234", domain.RoleUser)
	other := createTestUser(t, s, "other@yopmail.com", "Test@1234", domain.RoleUser)

	t.Run("creates a category", func(t *testing.T) {
		cat, err := svc.CreateCategory(ctx, owner.ID, "Groceries", "Daily groceries")
		require.NoError(t, err)
		require.NotZero(t, cat.ID)
		require.Equal(t, owner.ID, cat.UserID)
	})

	t.Run("names are unique per user, not globally", func(t *testing.T) {
		_, err := svc.CreateCategory(ctx, owner.ID, "Groceries", "dup")
		require.ErrorIs(t, err, ErrCategoryAlreadyExists)

		_, err = svc.CreateCategory(ctx, other.ID, "Groceries", "same name, other user")
		require.NoError(t, err)
	})

	t.Run("cross-user access reads as not found", func(t *testing.T) {
		cat, err := s.Categories().GetCategoryByName(ctx, owner.ID, "Groceries")
		require.NoError(t, err)

		_, err = svc.GetCategory(ctx, other.ID, cat.ID)
		require.ErrorIs(t, err, ErrCategoryNotFound)

		_, err = svc.UpdateCategory(ctx, other.ID, cat.ID, "Stolen", "")
		require.ErrorIs(t, err, ErrCategoryNotFound)

		require.ErrorIs(t, svc.DeleteCategory(ctx, other.ID, cat.ID), ErrCategoryNotFound)
	})

	t.Run("delete is blocked while expenses reference it", func(t *testing.T) {
		cat, err := s.Categories().GetCategoryByName(ctx, owner.ID, "Groceries")
		require.NoError(t, err)

		expenses := &ExpensesService{Store: s}
		expense, err := expenses.CreateExpense(ctx, owner.ID, cat.ID, 12.50, "milk", time.Now())
		require.NoError(t, err)

		require.ErrorIs(t, svc.DeleteCategory(ctx, owner.ID, cat.ID), ErrCategoryInUse)

		require.NoError(t, expenses.DeleteExpense(ctx, owner.ID, expense.ID))
		require.NoError(t, svc.DeleteCategory(ctx, owner.ID, cat.ID))
	})
}
