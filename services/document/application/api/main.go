package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/services/document/application/handlers"
	appsvcs "github.com/ghuser/backoffice/services/document/application/services"
)

// DocumentRoutes registers document endpoints on the provided chi router.
func DocumentRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/docs", func(r chi.Router) {
			r.Get("/", handlers.NewListDocumentsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostDocumentHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetDocumentHandler(svcs).Execute)
		})
	})
}
