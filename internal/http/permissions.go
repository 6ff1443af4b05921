package http

import "github.com/spendlog/spendlog/internal/domain"

// routePermissions is the static route permission table. Keys are the mux
// patterns routes are registered under; values are the role names allowed
// on them. Built once at init, read-only afterwards, so concurrent lookups
// need no locking. Routes absent from the table deny every role.
var routePermissions = map[string][]string{
	"POST /v1/users":              {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"GET /v1/users":               {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"GET /v1/users/{id}":          {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"PUT /v1/users/{id}":          {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"PUT /v1/users/{id}/password": {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"DELETE /v1/users/{id}":       {domain.RoleSuperAdmin, domain.RoleAdmin},

	"POST /v1/roles":        {domain.RoleSuperAdmin},
	"GET /v1/roles":         {domain.RoleSuperAdmin, domain.RoleAdmin},
	"GET /v1/roles/{id}":    {domain.RoleSuperAdmin, domain.RoleAdmin},
	"PUT /v1/roles/{id}":    {domain.RoleSuperAdmin},
	"DELETE /v1/roles/{id}": {domain.RoleSuperAdmin},

	"POST /v1/modules":               {domain.RoleSuperAdmin},
	"PUT /v1/modules/{id}":           {domain.RoleSuperAdmin},
	"GET /v1/modules/role/{role_id}": {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"PUT /v1/modules/permission":     {domain.RoleSuperAdmin},

	"POST /v1/categories":        {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"GET /v1/categories":         {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"GET /v1/categories/{id}":    {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"PUT /v1/categories/{id}":    {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"DELETE /v1/categories/{id}": {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},

	"POST /v1/expenses":        {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"GET /v1/expenses":         {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"GET /v1/expenses/{id}":    {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"PUT /v1/expenses/{id}":    {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
	"DELETE /v1/expenses/{id}": {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},

	"GET /v1/reports/spend": {domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser},
}

// routeAllowed is a pure set-membership check against the static table.
func routeAllowed(route, roleName string) bool {
	for _, allowed := range routePermissions[route] {
		if allowed == roleName {
			return true
		}
	}
	return false
}
