package middleware

import (
	"net/http"
	"strings"

	"lipo/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextActorID   = "actorID"
	ContextActorRole = "actorRole"
)

// JWTAuthMiddleware validates the bearer token and stores the actor's id and
// role on the request context. requiredRole narrows access to one side of
// the marketplace; pass "" to accept both customers and providers.
func JWTAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		sub, role, err := utils.SubjectAndRole(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		if requiredRole != "" && role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}

		c.Set(ContextActorID, sub)
		c.Set(ContextActorRole, role)
		c.Next()
	}
}
