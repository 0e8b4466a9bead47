package application

import (
	"context"

	"github.com/facturo/facturo/internal/domain"
)

// CustomerService coordinates customer reads and writes. Saving
// decides between create and update by whether the draft already has
// an identity.
type CustomerService struct {
	api domain.CustomerAPI
}

func NewCustomerService(api domain.CustomerAPI) *CustomerService {
	return &CustomerService{api: api}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.api.ListCustomers(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id string) (domain.Customer, error) {
	return s.api.GetCustomer(ctx, id)
}

// Save validates the draft, then creates or updates it. The returned
// customer carries the identity assigned by the API on create.
func (s *CustomerService) Save(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	if problems := customer.Validate(); len(problems) > 0 {
		return domain.Customer{}, &domain.ValidationError{Problems: problems}
	}
	if customer.IsNew() {
		id, err := s.api.CreateCustomer(ctx, customer)
		if err != nil {
			return domain.Customer{}, err
		}
		customer.ID = id
		return customer, nil
	}
	if err := s.api.UpdateCustomer(ctx, customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteCustomer(ctx, id)
}
