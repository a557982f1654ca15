package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cartshop/services/customer/application/handlers"
	appsvcs "github.com/ghuser/cartshop/services/customer/application/services"
)

// CustomerRoutes registers customer endpoints on the provided chi router.
func CustomerRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", handlers.NewListCustomersHandler(svcs).Execute)
		r.Post("/", handlers.NewPostCustomerHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetCustomerHandler(svcs).Execute)
	})
}
