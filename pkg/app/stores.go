package app

import (
	billingrepos "github.com/ghuser/cartshop/services/billing/domain/repositories"
	billingmemory "github.com/ghuser/cartshop/services/billing/infrastructure/persistence/memory"
	catalogrepos "github.com/ghuser/cartshop/services/catalog/domain/repositories"
	catalogmemory "github.com/ghuser/cartshop/services/catalog/infrastructure/persistence/memory"
	customerrepos "github.com/ghuser/cartshop/services/customer/domain/repositories"
	customermemory "github.com/ghuser/cartshop/services/customer/infrastructure/persistence/memory"
)

// Stores bundles every shop collection. All state lives in process memory.
type Stores struct {
	Customers   customerrepos.CustomerRepository
	Jobs        catalogrepos.JobRepository
	Parts       catalogrepos.PartRepository
	Inventory   catalogrepos.InventoryRepository
	Accessories catalogrepos.AccessoryRepository
	Bills       billingrepos.BillRepository
}

// NewStores returns empty in-memory stores.
func NewStores() *Stores {
	return &Stores{
		Customers:   customermemory.NewCustomerRepository(),
		Jobs:        catalogmemory.NewJobRepository(),
		Parts:       catalogmemory.NewPartRepository(),
		Inventory:   catalogmemory.NewInventoryRepository(),
		Accessories: catalogmemory.NewAccessoryRepository(),
		Bills:       billingmemory.NewBillRepository(),
	}
}
