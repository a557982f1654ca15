package services

import (
	"github.com/ghuser/cartshop/pkg/app"
	"github.com/ghuser/cartshop/pkg/cache"
	"github.com/ghuser/cartshop/services/billing/domain/models"
	catalogsvcs "github.com/ghuser/cartshop/services/catalog/application/services"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
//
// Billing holds the process's single active session, so build Services once
// and share it between the router and the subscribers.
type Services struct {
	Billing *BillingService
	Ledger  *LedgerService
}

// New wires all billing application services with infrastructure from the Application container.
func New(a *app.Application) (*Services, error) {
	policy, err := models.ParseSwitchPolicy(a.Config.CustomerSwitchPolicy)
	if err != nil {
		return nil, err
	}

	catalog := catalogsvcs.NewCatalogService(a.Stores.Jobs, a.Stores.Parts, a.Stores.Inventory, a.Stores.Accessories, a.Logger)
	billing, err := NewBillingService(BillingDeps{
		Customers: a.Stores.Customers,
		Catalog:   catalog,
		Bills:     a.Stores.Bills,
		IDs:       a.IDs,
		Publisher: a.EventBus,
		Policy:    policy,
		Logger:    a.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Services{
		Billing: billing,
		Ledger:  NewLedgerService(a.Stores.Bills, cache.NewBillCache(a.Redis), a.Logger),
	}, nil
}
