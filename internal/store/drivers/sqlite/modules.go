package sqlite

import (
	"context"
	"time"

	"github.com/spendlog/spendlog/internal/domain"
)

type modulesRepo struct {
	db dbtx
}

const moduleColumns = `id, name, link_name, description, created_at, updated_at`

func scanModule(row interface{ Scan(...any) error }) (domain.Module, error) {
	var m domain.Module
	err := row.Scan(&m.ID, &m.Name, &m.LinkName, &m.Description, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *modulesRepo) GetModuleByID(ctx context.Context, id int64) (domain.Module, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+moduleColumns+` FROM modules WHERE id = ?`, id)
	m, err := scanModule(row)
	if err != nil {
		return domain.Module{}, mapNotFound(err)
	}
	return m, nil
}

func (r *modulesRepo) GetModuleByName(ctx context.Context, name string) (domain.Module, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+moduleColumns+` FROM modules WHERE name = ?`, name)
	m, err := scanModule(row)
	if err != nil {
		return domain.Module{}, mapNotFound(err)
	}
	return m, nil
}

func (r *modulesRepo) GetModuleByLinkName(ctx context.Context, linkName string) (domain.Module, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+moduleColumns+` FROM modules WHERE link_name = ?`, linkName)
	m, err := scanModule(row)
	if err != nil {
		return domain.Module{}, mapNotFound(err)
	}
	return m, nil
}

var moduleSortColumns = map[string]string{
	"id":         "m.id",
	"name":       "m.name",
	"link_name":  "m.link_name",
	"created_at": "m.created_at",
}

func (r *modulesRepo) ListModulesForRole(ctx context.Context, roleID int64, sortBy, order string) ([]domain.ModuleAccess, error) {
	col := sortColumn(moduleSortColumns, sortBy, "m.id")
	query := `
		SELECT m.id, m.name, m.link_name, m.description, m.created_at, m.updated_at,
		       mp.id IS NOT NULL AS has_permission
		FROM modules m
		LEFT JOIN module_permissions mp ON mp.module_id = m.id AND mp.role_id = ?
		ORDER BY ` + col + ` ` + sortOrder(order)

	rows, err := r.db.QueryContext(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ModuleAccess
	for rows.Next() {
		var ma domain.ModuleAccess
		if err := rows.Scan(
			&ma.ID, &ma.Name, &ma.LinkName, &ma.Description,
			&ma.CreatedAt, &ma.UpdatedAt, &ma.HasPermission,
		); err != nil {
			return nil, err
		}
		out = append(out, ma)
	}
	return out, rows.Err()
}

func (r *modulesRepo) CreateModule(ctx context.Context, m domain.Module) (int64, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO modules (name, link_name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.Name, m.LinkName, m.Description, now, now,
	)
	if err != nil {
		return 0, mapUnique(err)
	}
	return res.LastInsertId()
}

func (r *modulesRepo) UpdateModule(ctx context.Context, id int64, name, linkName, description string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE modules SET name = ?, link_name = ?, description = ?, updated_at = ? WHERE id = ?`,
		name, linkName, description, time.Now().UTC(), id,
	)
	if err != nil {
		return mapUnique(err)
	}
	return requireAffected(res)
}

func (r *modulesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM modules`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
