package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/internal/store"
	"github.com/spendlog/spendlog/pkg/httpx"
	"github.com/spendlog/spendlog/pkg/slogx"

	_ "github.com/spendlog/spendlog/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// dashboardLinkName is the module gating the reporting routes.
const dashboardLinkName = "dashboard"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	UsersService      *service.UsersService
	RolesService      *service.RolesService
	ModulesService    *service.ModulesService
	CategoriesService *service.CategoriesService
	ExpensesService   *service.ExpensesService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerRoles()
	r.registerModules()
	r.registerCategories()
	r.registerExpenses()
	r.registerReports()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// secure builds the standard protected-route chain: authenticate, check the
// static permission table for this route, then rate limit per user.
func (r *Router) secure(route string, h http.Handler, extra ...httpx.Middleware) {
	mws := []httpx.Middleware{
		AuthnMiddleware(r.AuthService),
		RequirePermission(route),
	}
	mws = append(mws, extra...)
	mws = append(mws, httpx.RateLimitByUser(httpx.LenientLimit))

	r.Mux.Handle(route, httpx.Chain(h, mws...))
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Spendlog API
//	@version		0.1.0
//	@description	Multi-tenant expense tracking service with JWT access tokens and role-based permissions.
//	@description
//	@description	Tokens are HMAC-signed and expire after 30 minutes by default. Obtain one via /v1/auth/login.
//
//	@contact.name				Spendlog Maintainers
//	@contact.url				https://github.com/spendlog/spendlog
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential checks are the brute-force target; strict IP limit.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UsersService: r.UsersService}

	r.secure("POST /v1/users", http.HandlerFunc(h.HandleCreate))
	r.secure("GET /v1/users", http.HandlerFunc(h.HandleList))
	r.secure("GET /v1/users/{id}", http.HandlerFunc(h.HandleGet))
	r.secure("PUT /v1/users/{id}", http.HandlerFunc(h.HandleUpdate))
	r.secure("PUT /v1/users/{id}/password", http.HandlerFunc(h.HandleChangePassword))
	r.secure("DELETE /v1/users/{id}", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService}

	r.secure("POST /v1/roles", http.HandlerFunc(h.HandleCreate))
	r.secure("GET /v1/roles", http.HandlerFunc(h.HandleList))
	r.secure("GET /v1/roles/{id}", http.HandlerFunc(h.HandleGet))
	r.secure("PUT /v1/roles/{id}", http.HandlerFunc(h.HandleUpdate))
	r.secure("DELETE /v1/roles/{id}", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerModules() {
	h := &ModulesHandler{ModulesService: r.ModulesService}

	r.secure("POST /v1/modules", http.HandlerFunc(h.HandleCreate))
	r.secure("PUT /v1/modules/{id}", http.HandlerFunc(h.HandleUpdate))
	r.secure("GET /v1/modules/role/{role_id}", http.HandlerFunc(h.HandleListForRole))
	r.secure("PUT /v1/modules/permission", http.HandlerFunc(h.HandleTogglePermission))
}

func (r *Router) registerCategories() {
	h := &CategoriesHandler{CategoriesService: r.CategoriesService}

	r.secure("POST /v1/categories", http.HandlerFunc(h.HandleCreate))
	r.secure("GET /v1/categories", http.HandlerFunc(h.HandleList))
	r.secure("GET /v1/categories/{id}", http.HandlerFunc(h.HandleGet))
	r.secure("PUT /v1/categories/{id}", http.HandlerFunc(h.HandleUpdate))
	r.secure("DELETE /v1/categories/{id}", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerExpenses() {
	h := &ExpensesHandler{ExpensesService: r.ExpensesService}

	r.secure("POST /v1/expenses", http.HandlerFunc(h.HandleCreate))
	r.secure("GET /v1/expenses", http.HandlerFunc(h.HandleList))
	r.secure("GET /v1/expenses/{id}", http.HandlerFunc(h.HandleGet))
	r.secure("PUT /v1/expenses/{id}", http.HandlerFunc(h.HandleUpdate))
	r.secure("DELETE /v1/expenses/{id}", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ExpensesService: r.ExpensesService}

	// Reports carry the dynamic dashboard module gate on top of the static
	// table.
	r.secure("GET /v1/reports/spend", http.HandlerFunc(h.HandleSpendReport),
		RequireModule(r.ModulesService, dashboardLinkName),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
