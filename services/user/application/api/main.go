package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/services/user/application/handlers"
	appsvcs "github.com/ghuser/backoffice/services/user/application/services"
)

// UserRoutes registers user endpoints on the provided chi router.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", handlers.NewGetUsersHandler(svcs).Execute)
			r.Post("/", handlers.NewPostUserHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutUserHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteUserHandler(svcs).Execute)
		})
	})
}
