package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/internal/store/drivers/sqlite"
	"github.com/spendlog/spendlog/pkg/jwtx"
	"github.com/spendlog/spendlog/pkg/sdk"
)

// newTestRouter wires a full router over a migrated, seeded sqlite store.
func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	seeder := &service.SeedService{Store: st, Logger: logger}
	require.NoError(t, seeder.Run(context.Background()))

	tokens, err := jwtx.NewHMAC("HS256", "router-test-secret")
	require.NoError(t, err)

	r := NewRouter("test", st, logger)
	r.AuthService = &service.AuthService{Store: st, Signer: tokens, Verify: tokens, Issuer: "spendlog-test"}
	r.UsersService = &service.UsersService{Store: st}
	r.RolesService = &service.RolesService{Store: st}
	r.ModulesService = &service.ModulesService{Store: st}
	r.CategoriesService = &service.CategoriesService{Store: st}
	r.ExpensesService = &service.ExpensesService{Store: st}
	r.ApplyRoutes()
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, payload any) (*httptest.ResponseRecorder, sdk.Envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env sdk.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func loginAs(t *testing.T, r *Router, email string) string {
	t.Helper()

	rec, env := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", sdk.LoginRequest{
		Email:    email,
		Password: "Test@1234",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data sdk.LoginData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.Token
}

func TestRouter_Login(t *testing.T) {
	r := newTestRouter(t)

	t.Run("valid credentials return a token in the envelope", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", sdk.LoginRequest{
			Email:    "superadmin@yopmail.com",
			Password: "Test@1234",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, env.Success)
		require.Equal(t, sdk.MsgLoginSuccessful, env.Message)

		var data sdk.LoginData
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.NotEmpty(t, data.Token)
		require.Equal(t, "superadmin@yopmail.com", data.User.Email)
	})

	t.Run("bad password gets the fixed credentials message", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", sdk.LoginRequest{
			Email:    "superadmin@yopmail.com",
			Password: "Wrong@1234",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, env.Success)
		require.Equal(t, sdk.MsgInvalidCredentials, env.Message)
	})

	t.Run("malformed body is a validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestRouter_AuthnFailures(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing token", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodGet, "/v1/users", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, sdk.MsgMissingAuthorizationToken, env.Message)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodGet, "/v1/users", "garbage", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, sdk.MsgInvalidAuthorizationToken, env.Message)
	})

	t.Run("expired token", func(t *testing.T) {
		ctx := context.Background()
		user, err := r.store.Users().GetUserByEmail(ctx, "superadmin@yopmail.com")
		require.NoError(t, err)

		tokens, err := jwtx.NewHMAC("HS256", "router-test-secret")
		require.NoError(t, err)

		claims := jwtx.NewAccessClaims(jwtx.Subject{
			UserID: user.ID, Email: user.Email, RoleID: user.RoleID,
		}, jwtx.DefaultAccessTokenTTL, "spendlog-test", time.Now().Add(-2*time.Hour))

		expired, err := tokens.Sign(claims)
		require.NoError(t, err)

		rec, env := doJSON(t, r, http.MethodGet, "/v1/users", expired, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, sdk.MsgExpiredAuthorizationToken, env.Message)
	})
}

func TestRouter_Authorization(t *testing.T) {
	r := newTestRouter(t)

	t.Run("user role cannot delete users", func(t *testing.T) {
		token := loginAs(t, r, "testuser@yopmail.com")

		rec, env := doJSON(t, r, http.MethodDelete, "/v1/users/1", token, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, sdk.MsgAccessForbidden, env.Message)
	})

	t.Run("admin role can list users", func(t *testing.T) {
		token := loginAs(t, r, "admin@yopmail.com")

		rec, env := doJSON(t, r, http.MethodGet, "/v1/users", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, sdk.MsgUsersRetrieved, env.Message)
	})

	t.Run("only super admin may toggle permissions", func(t *testing.T) {
		token := loginAs(t, r, "admin@yopmail.com")

		rec, _ := doJSON(t, r, http.MethodPut, "/v1/modules/permission", token, sdk.TogglePermissionRequest{
			RoleID: 1, ModuleID: 1,
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRouter_ModuleGate(t *testing.T) {
	r := newTestRouter(t)
	ctx := context.Background()

	super := loginAs(t, r, "superadmin@yopmail.com")
	user := loginAs(t, r, "testuser@yopmail.com")

	role, err := r.store.Roles().GetRoleByName(ctx, domain.RoleUser)
	require.NoError(t, err)
	module, err := r.store.Modules().GetModuleByLinkName(ctx, "dashboard")
	require.NoError(t, err)

	t.Run("report works while the grant exists", func(t *testing.T) {
		rec, _ := doJSON(t, r, http.MethodGet, "/v1/reports/spend", user, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("revoking the module locks the report out", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPut, "/v1/modules/permission", super, sdk.TogglePermissionRequest{
			RoleID: role.ID, ModuleID: module.ID,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, sdk.MsgPermissionDeleted, env.Message)

		rec, env = doJSON(t, r, http.MethodGet, "/v1/reports/spend", user, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, sdk.MsgAccessForbidden, env.Message)
	})

	t.Run("toggling back restores access", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPut, "/v1/modules/permission", super, sdk.TogglePermissionRequest{
			RoleID: role.ID, ModuleID: module.ID,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, sdk.MsgPermissionCreated, env.Message)

		rec, _ = doJSON(t, r, http.MethodGet, "/v1/reports/spend", user, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_ExpenseFlow(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "testuser@yopmail.com")

	rec, env := doJSON(t, r, http.MethodPost, "/v1/categories", token, sdk.CategoryRequest{
		Name: "Groceries", Description: "weekly shop",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var cat sdk.CategoryData
	require.NoError(t, json.Unmarshal(env.Data, &cat))

	rec, env = doJSON(t, r, http.MethodPost, "/v1/expenses", token, sdk.ExpenseRequest{
		CategoryID: cat.ID, Amount: 42.50, Description: "food", SpentAt: "2026-08-30",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var expense sdk.ExpenseData
	require.NoError(t, json.Unmarshal(env.Data, &expense))
	require.Equal(t, "2026-08-30", expense.SpentAt)

	rec, env = doJSON(t, r, http.MethodGet, "/v1/reports/spend", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report sdk.SpendReportData
	require.NoError(t, json.Unmarshal(env.Data, &report))
	require.Len(t, report.ByCategory, 1)
	require.Equal(t, 42.50, report.ByCategory[0].Total)
	require.Len(t, report.ByMonth, 1)
	require.Equal(t, 2026, report.ByMonth[0].Year)
	require.Equal(t, 8, report.ByMonth[0].Month)

	t.Run("category with expenses cannot be deleted", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodDelete, "/v1/categories/"+strconv.FormatInt(cat.ID, 10), token, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, sdk.MsgCategoryInUse, env.Message)
	})
}

func TestRouter_UserValidationMessages(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "admin@yopmail.com")

	t.Run("digits in a name get the names message", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/v1/users", token, sdk.CreateUserRequest{
			FirstName: "Alice1",
			Email:     "alice@yopmail.com",
			Password:  "Alice@1234",
			RoleID:    1,
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, sdk.MsgNamesContainsOnlyLetters, env.Message)
	})

	t.Run("malformed email gets the generic validation message", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/v1/users", token, sdk.CreateUserRequest{
			FirstName: "Alice",
			Email:     "not-an-email",
			Password:  "Alice@1234",
			RoleID:    1,
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, sdk.MsgValidationError, env.Message)
	})

	t.Run("missing password gets the generic validation message", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/v1/users", token, sdk.CreateUserRequest{
			FirstName: "Alice",
			Email:     "alice@yopmail.com",
			RoleID:    1,
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, sdk.MsgValidationError, env.Message)
	})

	t.Run("update with digits in a name gets the names message", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPut, "/v1/users/1", token, sdk.UpdateUserRequest{
			FirstName: "Alice1",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, sdk.MsgNamesContainsOnlyLetters, env.Message)
	})
}
