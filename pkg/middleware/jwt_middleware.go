package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cargocal/internal/policy"
	"cargocal/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", userID)
		c.Set("role", policy.ParseRole(claims.Role))
		c.Next()
	}
}

// CallerID reads the authenticated user id set by JWTAuthMiddleware.
func CallerID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// CallerRole reads the authenticated role set by JWTAuthMiddleware.
func CallerRole(c *gin.Context) policy.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(policy.Role); ok {
			return r
		}
	}
	return policy.RoleUser
}

// RequireRole gates a route group on a policy predicate.
func RequireRole(allowed func(policy.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(CallerRole(c)) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
