package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/danuartha/auth-service/internal/interface/http"
	"github.com/danuartha/auth-service/internal/interface/middleware"
)

// AuthModule wires the public credential endpoints and the internal token
// validation endpoint.
// Public: POST /register, POST /login
// Internal: GET /validate (X-Internal-Secret gated)
type AuthModule struct {
	Handler        *handlers.AuthHandler
	InternalSecret string
}

func NewAuthModule(h *handlers.AuthHandler, internalSecret string) *AuthModule {
	return &AuthModule{Handler: h, InternalSecret: internalSecret}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)

	// The secret gate runs first: a wrong secret is a 403 before the
	// token is ever looked at.
	rg.GET("/validate", middleware.InternalOnly(m.InternalSecret), m.Handler.Validate)
}
