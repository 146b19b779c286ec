package middleware

import (
	"net/http"

	"health-monitor-api/internal/domain/entity"
	"health-monitor-api/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Roles are read from the claims set by AuthMiddleware
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaimsFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !claims.HasRole(allowedRoles...) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireStaff is a convenience middleware for nurse or admin endpoints
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleNurse, entity.RoleAdmin)(next)
}
