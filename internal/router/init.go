package router

import (
	"github.com/danuartha/auth-service/internal/application"
	"github.com/danuartha/auth-service/internal/container"
	pginfra "github.com/danuartha/auth-service/internal/infrastructure/postgres"
	handlers "github.com/danuartha/auth-service/internal/interface/http"
	"github.com/danuartha/auth-service/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container is
// populated.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewService(
		repo,
		container.GetJWT(),
		container.GetRedis(),
		container.GetLogger(),
	)

	authHandler := handlers.NewAuthHandler(svc, container.GetLogger())
	userHandler := handlers.NewUserHandler(svc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler, container.GetConfig().InternalSecret))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
}
