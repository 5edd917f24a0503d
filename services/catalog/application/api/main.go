package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/backoffice/services/catalog/application/services"
)

// CatalogRoutes registers catalog item endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
			r.Patch("/{id}/status", handlers.NewPatchItemStatusHandler(svcs).Execute)
		})
	})
}
