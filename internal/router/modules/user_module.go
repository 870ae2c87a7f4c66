package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/danuartha/auth-service/internal/interface/http"
	"github.com/danuartha/auth-service/internal/interface/middleware"
	"github.com/danuartha/auth-service/pkg/helpers"
)

// UserModule wires the authenticated profile endpoint.
// Protected: GET /profile (bearer token)
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/profile", m.Handler.GetProfile)
	}
}
