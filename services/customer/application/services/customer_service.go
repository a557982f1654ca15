package services

import (
	"context"
	"fmt"

	"github.com/ghuser/cartshop/pkg/logger"
	"github.com/ghuser/cartshop/services/customer/domain/models"
	"github.com/ghuser/cartshop/services/customer/domain/repositories"
)

// CustomerService orchestrates creation and lookup of Customers.
type CustomerService struct {
	repo repositories.CustomerRepository
	log  logger.Logger
}

// NewCustomerService returns a CustomerService wired with the given repository.
func NewCustomerService(repo repositories.CustomerRepository, log logger.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

// Create validates and stores a new Customer.
func (s *CustomerService) Create(ctx context.Context, name, phone, email, address string) (*models.Customer, error) {
	customer, err := models.NewCustomer(name, phone, email, address)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	s.log.InfoContext(ctx, "customer created", "customer_id", customer.ID)
	return customer, nil
}

// GetByID returns ErrCustomerNotFound when id is unknown.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

// List returns every customer in insertion order.
func (s *CustomerService) List(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Search filters customers by name, email or phone. A blank term lists everyone.
func (s *CustomerService) Search(ctx context.Context, term string) ([]*models.Customer, error) {
	customers, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return customers, nil
}
