package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cartshop/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/cartshop/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/", handlers.NewGetCatalogHandler(svcs).Execute)
		recordRoutes(r, "/jobs", svcs.Catalog.Jobs, handlers.JobCodec)
		recordRoutes(r, "/parts", svcs.Catalog.Parts, handlers.PartCodec)
		recordRoutes(r, "/inventory", svcs.Catalog.Inventory, handlers.InventoryCodec)
		recordRoutes(r, "/accessories", svcs.Catalog.Accessories, handlers.AccessoryCodec)
	})
}

func recordRoutes[T, Req, Resp any](r chi.Router, path string, svc *appsvcs.RecordService[T], codec handlers.Codec[T, Req, Resp]) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", handlers.NewListRecordsHandler(svc, codec).Execute)
		r.Post("/", handlers.NewPostRecordHandler(svc, codec).Execute)
		r.Get("/{id}", handlers.NewGetRecordHandler(svc, codec).Execute)
		r.Put("/{id}", handlers.NewPutRecordHandler(svc, codec).Execute)
		r.Delete("/{id}", handlers.NewDeleteRecordHandler(svc).Execute)
	})
}
