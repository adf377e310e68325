// Package middleware carries the gin middlewares shared by the API routes.
package middleware

import (
	"net/http"
	"strings"

	"servicevale/internal/auth"
	"servicevale/internal/domain/entities"
	"servicevale/pkg"

	"github.com/gin-gonic/gin"
)

// Context keys populated by RequireAuth.
const (
	ContextEmailKey = "authEmail"
	ContextRoleKey  = "authRole"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this action", http.StatusForbidden)
)

// RequireAuth verifies the Authorization bearer token and stores the caller's
// email and role in the request context.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		raw = strings.TrimSpace(raw)
		if !found || raw == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextRoleKey, entities.Role(claims.Role))
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated caller has the given
// role. Must run after RequireAuth.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFrom(c) != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// EmailFrom returns the authenticated caller's email, or "" outside an
// authenticated route.
func EmailFrom(c *gin.Context) string {
	v, ok := c.Get(ContextEmailKey)
	if !ok {
		return ""
	}
	email, _ := v.(string)
	return email
}

// RoleFrom returns the authenticated caller's role, or "" outside an
// authenticated route.
func RoleFrom(c *gin.Context) entities.Role {
	v, ok := c.Get(ContextRoleKey)
	if !ok {
		return ""
	}
	role, _ := v.(entities.Role)
	return role
}
