package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/auth-service/pkg/response"
)

// InternalOnly gates service-to-service endpoints behind the shared
// X-Internal-Secret header. The comparison is constant time and runs
// before any token inspection.
func InternalOnly(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-Internal-Secret")
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			response.AbortError(c, http.StatusForbidden, "forbidden", nil)
			return
		}
		c.Next()
	}
}
