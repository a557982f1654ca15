package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cartshop/services/billing/application/handlers"
	appsvcs "github.com/ghuser/cartshop/services/billing/application/services"
)

// BillingRoutes registers the active-bill and ledger endpoints on the provided chi router.
func BillingRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/billing/session", func(r chi.Router) {
		r.Get("/", handlers.NewGetSessionHandler(svcs).Execute)
		r.Put("/customer", handlers.NewPutSessionCustomerHandler(svcs).Execute)
		r.Delete("/customer", handlers.NewDeleteSessionCustomerHandler(svcs).Execute)
		r.Post("/items", handlers.NewPostSessionItemHandler(svcs).Execute)
		r.Delete("/items", handlers.NewClearSessionItemsHandler(svcs).Execute)
		r.Delete("/items/{id}", handlers.NewDeleteSessionItemHandler(svcs).Execute)
		r.Post("/commit", handlers.NewPostCommitHandler(svcs).Execute)
	})

	r.Route("/bills", func(r chi.Router) {
		r.Get("/", handlers.NewListBillsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetBillHandler(svcs).Execute)
		r.Get("/{id}/summary", handlers.NewGetBillSummaryHandler(svcs).Execute)
		r.Put("/{id}/paid", handlers.NewPutBillPaidHandler(svcs).Execute)
	})
}
