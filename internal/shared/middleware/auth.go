package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"nirvana-admin-backend/internal/upstream"
	"nirvana-admin-backend/pkg/jwt"
)

// AuthMiddleware validates the staff session token and stashes the caller's
// credentials on the request context so upstream calls carry them forward.
// The commerce API stays the authorization authority; this gate only keeps
// anonymous traffic out of the admin surface.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract token from "Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		// 2. Verify and parse JWT
		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		// 3. Forward the caller's credentials on the request context
		ctx := upstream.WithCredentials(c.Request.Context(), upstream.Credentials{
			Authorization: authHeader,
			Cookies:       c.Request.Cookies(),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
