package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/auth-service/pkg/helpers"
	"github.com/danuartha/auth-service/pkg/response"
)

// CtxUserIDKey is the gin context key holding the authenticated user id.
const CtxUserIDKey = "userID"

// Auth extracts the bearer token from the Authorization header, verifies
// it, and injects the user id into the Gin context. A bare token without
// the "Bearer " prefix is accepted as well.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "authorization header missing", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

// UserID reads the authenticated user id injected by Auth.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
