package services

import (
	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/services/document/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Document *DocumentService

	// AppCode is echoed on every response via the X-Application-Code header.
	AppCode string
}

// New wires all document application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewDocumentRepository(a.Db, a.EventBus)
	return &Services{
		Document: NewDocumentService(repo),
		AppCode:  a.AppCode,
	}
}
