package sdk

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/spendlog/spendlog/pkg/httpx"
)

// Envelope is the uniform response shape for every endpoint, success or
// failure. Data is absent on failures and on successes with nothing to
// return.
type Envelope struct {
	StatusCode int             `json:"status_code"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// WriteSuccess writes a success envelope. A nil data leaves the field out.
func WriteSuccess(w http.ResponseWriter, status int, message string, data any) {
	env := Envelope{
		StatusCode: status,
		Success:    true,
		Message:    message,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			ErrServerError.WriteError(w)
			return
		}
		env.Data = raw
	}
	httpx.WriteJSON(w, status, env)
}

// HealthResponse is returned by the livez and readyz probes. It bypasses
// the envelope so load balancers get a flat shape.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Request payloads
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,alpha"`
	LastName  string `json:"last_name" validate:"omitempty,alpha"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	RoleID    int64  `json:"role_id" validate:"required,gt=0"`
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,alpha"`
	LastName  string `json:"last_name" validate:"omitempty,alpha"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type RoleRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=64"`
	Description string `json:"description" validate:"max=256"`
}

type ModuleRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=64"`
	LinkName    string `json:"link_name" validate:"required,min=2,max=64"`
	Description string `json:"description" validate:"max=256"`
}

type TogglePermissionRequest struct {
	RoleID   int64 `json:"role_id" validate:"required,gt=0"`
	ModuleID int64 `json:"module_id" validate:"required,gt=0"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=64"`
	Description string `json:"description" validate:"max=256"`
}

type ExpenseRequest struct {
	CategoryID  int64   `json:"category_id" validate:"required,gt=0"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=256"`
	SpentAt     string  `json:"spent_at" validate:"required,datetime=2006-01-02"`
}

// ============================================================================
// Response payloads
// ============================================================================

type LoginData struct {
	Token string   `json:"token"`
	User  UserData `json:"user"`
}

type UserData struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	RoleID    int64     `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserListData struct {
	Users []UserData `json:"users"`
	Total int64      `json:"total"`
}

type RoleData struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ModuleData struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	LinkName    string    `json:"link_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// HasPermission is populated on role-scoped module listings.
	HasPermission bool `json:"has_permission"`
}

type CategoryData struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ExpenseData struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	SpentAt     string    `json:"spent_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ExpenseListData struct {
	Expenses []ExpenseData `json:"expenses"`
	Total    int64         `json:"total"`
}

type CategorySpendData struct {
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
}

type MonthSpendData struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type SpendReportData struct {
	ByCategory []CategorySpendData `json:"by_category"`
	ByMonth    []MonthSpendData    `json:"by_month"`
}
