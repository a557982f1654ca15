package services

import (
	"github.com/ghuser/cartshop/pkg/app"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Customer *CustomerService
}

// New wires all customer application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Customer: NewCustomerService(a.Stores.Customers, a.Logger),
	}
}
