package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/facturo/facturo/internal/domain"
)

func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := c.do(ctx, "list customers", http.MethodGet, "/api/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	var customer domain.Customer
	err := c.do(ctx, "get customer", http.MethodGet, "/api/customers/"+url.PathEscape(id), nil, &customer)
	return customer, err
}

// CreateCustomer posts a new customer and returns the identifier the
// API assigned.
func (c *Client) CreateCustomer(ctx context.Context, customer domain.Customer) (string, error) {
	var res struct {
		CustomerID string `json:"customer_id"`
	}
	if err := c.do(ctx, "create customer", http.MethodPost, "/api/customers", customer, &res); err != nil {
		return "", err
	}
	return res.CustomerID, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	return c.do(ctx, "update customer", http.MethodPut, "/api/customers/"+url.PathEscape(customer.ID), customer, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, "delete customer", http.MethodDelete, "/api/customers/"+url.PathEscape(id), nil, nil)
}
