package sqlite

import (
	"context"
	"time"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
)

type expensesRepo struct {
	db dbtx
}

const expenseColumns = `id, user_id, category_id, amount, description, spent_at, created_at, updated_at`

func scanExpense(row interface{ Scan(...any) error }) (domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.CategoryID,
		&e.Amount,
		&e.Description,
		&e.SpentAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *expensesRepo) GetExpenseByID(ctx context.Context, id int64) (domain.Expense, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)
	e, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, mapNotFound(err)
	}
	return e, nil
}

var expenseSortColumns = map[string]string{
	"id":         "id",
	"amount":     "amount",
	"spent_at":   "spent_at",
	"created_at": "created_at",
}

func (r *expensesRepo) ListExpensesByUser(ctx context.Context, userID int64, params store.ListParams) ([]domain.Expense, error) {
	col := sortColumn(expenseSortColumns, params.SortBy, "spent_at")
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = ? ORDER BY ` + col + ` ` + sortOrder(params.Order) + ` LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, userID, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *expensesRepo) CountExpensesByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

func (r *expensesRepo) CountExpensesByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses WHERE category_id = ?`, categoryID).Scan(&n)
	return n, err
}

func (r *expensesRepo) CreateExpense(ctx context.Context, e domain.Expense) (int64, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (user_id, category_id, amount, description, spent_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.CategoryID, e.Amount, e.Description, e.SpentAt.UTC(), now, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *expensesRepo) UpdateExpense(ctx context.Context, e domain.Expense) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE expenses SET category_id = ?, amount = ?, description = ?, spent_at = ?, updated_at = ?
		WHERE id = ?`,
		e.CategoryID, e.Amount, e.Description, e.SpentAt.UTC(), time.Now().UTC(), e.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *expensesRepo) DeleteExpense(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *expensesRepo) SpendByCategory(ctx context.Context, userID int64) ([]domain.CategorySpend, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, COALESCE(SUM(e.amount), 0)
		FROM categories c
		LEFT JOIN expenses e ON e.category_id = c.id
		WHERE c.user_id = ?
		GROUP BY c.id, c.name
		ORDER BY c.name`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CategorySpend
	for rows.Next() {
		var cs domain.CategorySpend
		if err := rows.Scan(&cs.CategoryID, &cs.CategoryName, &cs.Total); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

func (r *expensesRepo) SpendByMonth(ctx context.Context, userID int64) ([]domain.MonthSpend, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT CAST(strftime('%Y', spent_at) AS INTEGER),
		       CAST(strftime('%m', spent_at) AS INTEGER),
		       SUM(amount)
		FROM expenses
		WHERE user_id = ?
		GROUP BY 1, 2
		ORDER BY 1, 2`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MonthSpend
	for rows.Next() {
		var ms domain.MonthSpend
		if err := rows.Scan(&ms.Year, &ms.Month, &ms.Total); err != nil {
			return nil, err
		}
		out = append(out, ms)
	}
	return out, rows.Err()
}
