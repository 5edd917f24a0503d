package services

import (
	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	User *UserService

	// AppCode is echoed on every response via the X-Application-Code header.
	AppCode string
}

// New wires all user application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		User:    NewUserService(repo),
		AppCode: a.AppCode,
	}
}
