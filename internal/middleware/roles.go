package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-finder/internal/httperr"
)

// RequireRoles rejects authenticated callers whose role is not in the list.
// It must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
			c.Abort()
			return
		}

		if !allowed[user.Role] {
			httperr.Forbidden(c, "insufficient_role", "Forbidden. Insufficient role for this action.")
			c.Abort()
			return
		}

		c.Next()
	}
}
