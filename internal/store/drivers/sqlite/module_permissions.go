package sqlite

import (
	"context"
	"time"
)

type modulePermissionsRepo struct {
	db dbtx
}

func (r *modulePermissionsRepo) Find(ctx context.Context, roleID, moduleID int64) (bool, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM module_permissions WHERE role_id = ? AND module_id = ?`,
		roleID, moduleID,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *modulePermissionsRepo) Insert(ctx context.Context, roleID, moduleID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO module_permissions (role_id, module_id, created_at)
		VALUES (?, ?, ?)`,
		roleID, moduleID, time.Now().UTC(),
	)
	return mapUnique(err)
}

func (r *modulePermissionsRepo) Delete(ctx context.Context, roleID, moduleID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM module_permissions WHERE role_id = ? AND module_id = ?`,
		roleID, moduleID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
