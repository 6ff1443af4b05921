package store

import (
	"context"
	"errors"

	"github.com/spendlog/spendlog/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// ListParams carries pagination and sorting for list queries. SortBy and
// Order are validated by the service layer before they reach a driver.
type ListParams struct {
	Offset int
	Limit  int
	SortBy string
	Order  string // "asc" or "desc"
}

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Users() Users
	Roles() Roles
	Modules() Modules
	ModulePermissions() ModulePermissions
	Categories() Categories
	Expenses() Expenses

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. This is the recommended way to
	// handle multi-step atomic operations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during login and token resolution.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user and returns the assigned id.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// ListUsers returns a page of users; params are pre-validated.
	ListUsers(ctx context.Context, params ListParams) ([]domain.User, error)

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)

	// CountUsersWithRole counts users referencing a role. Used to block
	// role deletion while references exist.
	CountUsersWithRole(ctx context.Context, roleID int64) (int64, error)

	// UpdateUser mutates name fields and bumps updated_at.
	UpdateUser(ctx context.Context, id int64, firstName, lastName string) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id int64, newHash string) error

	// UpdateToken records the most recently issued access token. Advisory
	// only; never consulted during verification.
	UpdateToken(ctx context.Context, id int64, token string) error

	// DeleteUser removes a user; owned categories and expenses go with it.
	DeleteUser(ctx context.Context, id int64) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Roles interface {
	GetRoleByID(ctx context.Context, id int64) (domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)
	ListRoles(ctx context.Context, sortBy, order string) ([]domain.Role, error)
	CreateRole(ctx context.Context, r domain.Role) (int64, error)
	UpdateRole(ctx context.Context, id int64, name, description string) error

	// DeleteRole removes a role. The service layer checks for referencing
	// users first; the schema backs this with a RESTRICT foreign key.
	DeleteRole(ctx context.Context, id int64) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Modules interface {
	GetModuleByID(ctx context.Context, id int64) (domain.Module, error)
	GetModuleByName(ctx context.Context, name string) (domain.Module, error)
	GetModuleByLinkName(ctx context.Context, linkName string) (domain.Module, error)

	// ListModulesForRole returns every module, each flagged with whether
	// the role holds a permission row for it.
	ListModulesForRole(ctx context.Context, roleID int64, sortBy, order string) ([]domain.ModuleAccess, error)

	CreateModule(ctx context.Context, m domain.Module) (int64, error)
	UpdateModule(ctx context.Context, id int64, name, linkName, description string) error
	IsEmpty(ctx context.Context) (bool, error)
}

type ModulePermissions interface {
	// Find reports whether a permission row exists for the pair.
	Find(ctx context.Context, roleID, moduleID int64) (bool, error)

	// Insert grants; at most one row may exist per (role, module) pair.
	Insert(ctx context.Context, roleID, moduleID int64) error

	// Delete revokes.
	Delete(ctx context.Context, roleID, moduleID int64) error
}

type Categories interface {
	GetCategoryByID(ctx context.Context, id int64) (domain.Category, error)

	// GetCategoryByName scopes the lookup to one user; category names are
	// unique per user, not globally.
	GetCategoryByName(ctx context.Context, userID int64, name string) (domain.Category, error)

	ListCategoriesByUser(ctx context.Context, userID int64, sortBy, order string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (int64, error)
	UpdateCategory(ctx context.Context, id int64, name, description string) error
	DeleteCategory(ctx context.Context, id int64) error
	IsEmpty(ctx context.Context) (bool, error)
}

type Expenses interface {
	GetExpenseByID(ctx context.Context, id int64) (domain.Expense, error)
	ListExpensesByUser(ctx context.Context, userID int64, params ListParams) ([]domain.Expense, error)
	CountExpensesByUser(ctx context.Context, userID int64) (int64, error)

	// CountExpensesByCategory backs the application-level check that blocks
	// deleting a category still referenced by expenses.
	CountExpensesByCategory(ctx context.Context, categoryID int64) (int64, error)
	CreateExpense(ctx context.Context, e domain.Expense) (int64, error)
	UpdateExpense(ctx context.Context, e domain.Expense) error
	DeleteExpense(ctx context.Context, id int64) error

	// SpendByCategory aggregates a user's spend per category.
	SpendByCategory(ctx context.Context, userID int64) ([]domain.CategorySpend, error)

	// SpendByMonth aggregates a user's spend per calendar month.
	SpendByMonth(ctx context.Context, userID int64) ([]domain.MonthSpend, error)
}
