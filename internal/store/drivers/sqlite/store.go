package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/spendlog/spendlog/internal/store"
	_ "modernc.org/sqlite"
)

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// same repo implementations serve both transactional and plain access.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback is safe to call after commit; ensures cleanup on panic or
	// early error return.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users                         { return &usersRepo{db: s.db} }
func (s *Store) Roles() store.Roles                         { return &rolesRepo{db: s.db} }
func (s *Store) Modules() store.Modules                     { return &modulesRepo{db: s.db} }
func (s *Store) ModulePermissions() store.ModulePermissions { return &modulePermissionsRepo{db: s.db} }
func (s *Store) Categories() store.Categories               { return &categoriesRepo{db: s.db} }
func (s *Store) Expenses() store.Expenses                   { return &expensesRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapUnique translates sqlite unique violations into store.ErrAlreadyExists.
// modernc.org/sqlite does not export a typed constraint error, so the message
// text is the only reliable signal.
func mapUnique(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

// sortColumn whitelists sort fields against actual column names. Services
// validate user input before it gets here; the fallback keeps a stray value
// from ever reaching the SQL string.
func sortColumn(allowed map[string]string, sortBy, fallback string) string {
	if col, ok := allowed[sortBy]; ok {
		return col
	}
	return fallback
}

// requireAffected turns a zero-row write into store.ErrNotFound so callers
// get a consistent signal for updates and deletes against missing ids.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func sortOrder(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}
