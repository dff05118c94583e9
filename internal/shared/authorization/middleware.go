package authorization

import (
	"github.com/gin-gonic/gin"

	"ddportal/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessClientResource reports whether the caller may act on a resource
// belonging to the given client. Admins may act on any tenant; client users
// only on their own.
func CanAccessClientResource(role UserRole, callerClientID, resourceClientID uint) bool {
	if role.IsAdmin() {
		return true
	}
	return callerClientID != 0 && callerClientID == resourceClientID
}
