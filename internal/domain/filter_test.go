package domain_test

import (
	"testing"

	"github.com/facturo/facturo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilterCustomers(t *testing.T) {
	customers := []domain.Customer{
		{Name: "Alice Johnson", Email: "alice@example.com", Company: "ACME Ltd"},
		{Name: "Bob Stone", Email: "bob@acmecorp.io"},
		{Name: "Carla Diaz", Email: "carla@xyz.dev", Company: "XYZ Systems"},
	}

	// Case-insensitive substring across name, email and company.
	matched := domain.FilterCustomers(customers, "acme")
	assert.Len(t, matched, 2)
	assert.Equal(t, "Alice Johnson", matched[0].Name)
	assert.Equal(t, "Bob Stone", matched[1].Name)

	matched = domain.FilterCustomers(customers, "XYZ")
	assert.Len(t, matched, 1)
	assert.Equal(t, "Carla Diaz", matched[0].Name)

	matched = domain.FilterCustomers(customers, "nobody")
	assert.Empty(t, matched)
}

func TestFilterCustomers_EmptyQuery(t *testing.T) {
	customers := []domain.Customer{{Name: "Alice"}, {Name: "Bob"}}
	assert.Equal(t, customers, domain.FilterCustomers(customers, ""))
	assert.Equal(t, customers, domain.FilterCustomers(customers, "   "))
}

func TestFilterCustomers_MissingCompany(t *testing.T) {
	// Customers without a company must not panic or match spuriously.
	customers := []domain.Customer{{Name: "Dana", Email: "dana@mail.com"}}
	assert.Empty(t, domain.FilterCustomers(customers, "acme"))
	assert.Len(t, domain.FilterCustomers(customers, "dana"), 1)
}

func TestFilterInvoices(t *testing.T) {
	invoices := []domain.Invoice{
		{Number: "INV-20250101090000", CustomerName: "ACME Ltd", Status: domain.StatusSent},
		{Number: "INV-20250202100000", CustomerName: "XYZ Systems", Status: domain.StatusDraft},
		{Number: "INV-20250303110000", CustomerName: "ACME Ltd", Status: domain.StatusPaid},
	}

	byNumber := domain.FilterInvoices(invoices, "20250202")
	assert.Len(t, byNumber, 1)
	assert.Equal(t, "XYZ Systems", byNumber[0].CustomerName)

	byCustomer := domain.FilterInvoices(invoices, "acme")
	assert.Len(t, byCustomer, 2)

	byStatus := domain.FilterInvoices(invoices, "PAID")
	assert.Len(t, byStatus, 1)
	assert.Equal(t, "INV-20250303110000", byStatus[0].Number)

	all := domain.FilterInvoices(invoices, "")
	assert.Len(t, all, 3)
}

func TestFilterInvoices_PreservesOrder(t *testing.T) {
	invoices := []domain.Invoice{
		{Number: "INV-3", Status: domain.StatusSent},
		{Number: "INV-1", Status: domain.StatusSent},
		{Number: "INV-2", Status: domain.StatusSent},
	}
	matched := domain.FilterInvoices(invoices, "sent")
	assert.Equal(t, []string{"INV-3", "INV-1", "INV-2"},
		[]string{matched[0].Number, matched[1].Number, matched[2].Number})
}
