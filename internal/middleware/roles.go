package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-beauty/booking-api/internal/models"
)

// RequireAdmin gates the management surface. Runs after AuthMiddleware, so
// the role claim is already in context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_only"})
			return
		}
		c.Next()
	}
}
