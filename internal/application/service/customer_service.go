package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/motorsync/garage-api/pkg/pagination"
)

// CustomerService handles the customer directory
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Email   *string
	Address *string
}

// CreateCustomer registers a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer with their vehicles
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// UpdateCustomer updates a customer's contact details. TotalSpent and
// loyalty points are ledger fields and cannot be edited here.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer from the directory
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers retrieves customers with search and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return s.customerRepo.List(ctx, params, search)
}
