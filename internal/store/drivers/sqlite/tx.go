package sqlite

import (
	"context"
	"database/sql"

	"github.com/spendlog/spendlog/internal/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits or rolls back

// Ping is a no-op for transactions; the connection is already established.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                         { return &usersRepo{db: t.tx} }
func (t *txStore) Roles() store.Roles                         { return &rolesRepo{db: t.tx} }
func (t *txStore) Modules() store.Modules                     { return &modulesRepo{db: t.tx} }
func (t *txStore) ModulePermissions() store.ModulePermissions { return &modulePermissionsRepo{db: t.tx} }
func (t *txStore) Categories() store.Categories               { return &categoriesRepo{db: t.tx} }
func (t *txStore) Expenses() store.Expenses                   { return &expensesRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts
