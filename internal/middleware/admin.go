package middleware

import "github.com/gin-gonic/gin"

// RequireAdmin guards the admin routes with the static admin token.
// The site has no user accounts, so there are no roles to check.
func RequireAdmin(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" {
			c.AbortWithStatusJSON(403, gin.H{"error": "admin token missing"})
			return
		}

		if token != adminToken {
			c.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
