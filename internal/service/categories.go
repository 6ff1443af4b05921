package service

import (
	"context"
	"errors"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category name already exists")

	// ErrCategoryInUse blocks deleting a category that expenses reference.
	ErrCategoryInUse = errors.New("category has expenses")
)

// CategoriesService manages a user's expense categories. Every operation is
// scoped to the owning user; cross-user access reads as not found.
type CategoriesService struct {
	Store store.Store
}

// CreateCategory adds a category for the user. Names are unique per user.
func (s *CategoriesService) CreateCategory(ctx context.Context, userID int64, name, description string) (domain.Category, error) {
	id, err := s.Store.Categories().CreateCategory(ctx, domain.Category{
		UserID:      userID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Category{}, ErrCategoryAlreadyExists
		}
		return domain.Category{}, err
	}
	return s.Store.Categories().GetCategoryByID(ctx, id)
}

// ListCategories returns the user's categories ordered by name.
func (s *CategoriesService) ListCategories(ctx context.Context, userID int64) ([]domain.Category, error) {
	return s.Store.Categories().ListCategoriesByUser(ctx, userID, "name", "asc")
}

// GetCategory fetches one of the user's categories.
func (s *CategoriesService) GetCategory(ctx context.Context, userID, id int64) (domain.Category, error) {
	cat, err := s.Store.Categories().GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	if cat.UserID != userID {
		return domain.Category{}, ErrCategoryNotFound
	}
	return cat, nil
}

// UpdateCategory renames one of the user's categories.
func (s *CategoriesService) UpdateCategory(ctx context.Context, userID, id int64, name, description string) (domain.Category, error) {
	if _, err := s.GetCategory(ctx, userID, id); err != nil {
		return domain.Category{}, err
	}
	if err := s.Store.Categories().UpdateCategory(ctx, id, name, description); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Category{}, ErrCategoryAlreadyExists
		}
		return domain.Category{}, err
	}
	return s.Store.Categories().GetCategoryByID(ctx, id)
}

// DeleteCategory removes a category. The expense-reference check and the
// delete share a transaction.
func (s *CategoriesService) DeleteCategory(ctx context.Context, userID, id int64) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		cat, err := tx.Categories().GetCategoryByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
		if cat.UserID != userID {
			return ErrCategoryNotFound
		}

		n, err := tx.Expenses().CountExpensesByCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrCategoryInUse
		}

		return tx.Categories().DeleteCategory(ctx, id)
	})
}
