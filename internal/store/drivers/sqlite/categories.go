package sqlite

import (
	"context"
	"time"

	"github.com/spendlog/spendlog/internal/domain"
)

type categoriesRepo struct {
	db dbtx
}

const categoryColumns = `id, user_id, name, description, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *categoriesRepo) GetCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) GetCategoryByName(ctx context.Context, userID int64, name string) (domain.Category, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE user_id = ? AND name = ?`,
		userID, name,
	)
	c, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

var categorySortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"created_at": "created_at",
}

func (r *categoriesRepo) ListCategoriesByUser(ctx context.Context, userID int64, sortBy, order string) ([]domain.Category, error) {
	col := sortColumn(categorySortColumns, sortBy, "id")
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE user_id = ? ORDER BY `+col+` `+sortOrder(order),
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) (int64, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (user_id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.UserID, c.Name, c.Description, now, now,
	)
	if err != nil {
		return 0, mapUnique(err)
	}
	return res.LastInsertId()
}

func (r *categoriesRepo) UpdateCategory(ctx context.Context, id int64, name, description string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		name, description, time.Now().UTC(), id,
	)
	if err != nil {
		return mapUnique(err)
	}
	return requireAffected(res)
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *categoriesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
