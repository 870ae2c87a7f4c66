package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/danuartha/auth-service/internal/application"
	"github.com/danuartha/auth-service/internal/interface/middleware"
	"github.com/danuartha/auth-service/pkg/response"
)

type UserHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// GetProfile GET /profile (behind the Auth middleware). The store is
// re-checked here: a user deleted after token issuance is a 404.
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := middleware.UserID(c)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": u.Name, "email": u.Email})
}
