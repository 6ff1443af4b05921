package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/pkg/httpx"
	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/spendlog/spendlog/pkg/slogx"
)

// PrincipalFromContext returns the authenticated principal set by
// AuthnMiddleware. ok is false on unauthenticated requests.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(httpx.CtxKeyPrincipal).(domain.Principal)
	return p, ok
}

// bearerToken extracts the token from an Authorization header. Returns ""
// when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// AuthnMiddleware resolves the bearer token into a Principal and stores it
// on the request context. The three auth failure kinds each map to a fixed
// response; store failures surface as a generic internal error so nothing
// about the backend leaks.
func AuthnMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			principal, err := auth.Authenticate(ctx, bearerToken(r))
			if err != nil {
				switch {
				case errors.Is(err, service.ErrMissingToken):
					sdk.ErrMissingToken.WriteError(w)
				case errors.Is(err, service.ErrExpiredToken):
					sdk.ErrExpiredToken.WriteError(w)
				case errors.Is(err, service.ErrInvalidToken):
					sdk.ErrInvalidToken.WriteError(w)
				default:
					slogx.FromContext(ctx).Error("authentication failed", "error", err)
					sdk.ErrServerError.WriteError(w)
				}
				return
			}

			ctx = context.WithValue(ctx, httpx.CtxKeyPrincipal, principal)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, principal.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission gates a route on the static permission table. The route
// string must match the pattern the handler is registered under.
func RequirePermission(route string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok || !routeAllowed(route, principal.RoleName) {
				sdk.ErrForbidden.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireModule gates a route on the dynamic per-role module permission
// identified by link name. Runs after AuthnMiddleware.
func RequireModule(modules *service.ModulesService, linkName string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			principal, ok := PrincipalFromContext(ctx)
			if !ok {
				sdk.ErrForbidden.WriteError(w)
				return
			}

			has, err := modules.HasModuleAccess(ctx, principal.RoleID, linkName)
			if err != nil {
				slogx.FromContext(ctx).Error("module permission check failed", "error", err)
				sdk.ErrServerError.WriteError(w)
				return
			}
			if !has {
				sdk.ErrForbidden.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
