package services

import (
	"github.com/ghuser/cartshop/pkg/app"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Catalog: NewCatalogService(a.Stores.Jobs, a.Stores.Parts, a.Stores.Inventory, a.Stores.Accessories, a.Logger),
	}
}
