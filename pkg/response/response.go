package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error envelope. Success bodies are endpoint
// specific and written directly by the handlers.
type ErrorBody struct {
	Error     string      `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func Error(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorBody{
		Error:     message,
		RequestID: c.GetString("request_id"),
		Details:   details,
	})
}

// AbortError writes the error envelope and stops the handler chain.
// Middleware must use this variant so later handlers never run.
func AbortError(c *gin.Context, status int, message string, details interface{}) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Error:     message,
		RequestID: c.GetString("request_id"),
		Details:   details,
	})
}
