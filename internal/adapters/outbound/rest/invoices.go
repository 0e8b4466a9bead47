package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/facturo/facturo/internal/domain"
)

func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := c.do(ctx, "list invoices", http.MethodGet, "/api/invoices", nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) GetInvoice(ctx context.Context, id string) (domain.Invoice, error) {
	var invoice domain.Invoice
	err := c.do(ctx, "get invoice", http.MethodGet, "/api/invoices/"+url.PathEscape(id), nil, &invoice)
	return invoice, err
}

// CreateInvoice posts a new invoice and returns the identifier the
// API assigned. Totals and a blank invoice number are filled in
// server-side.
func (c *Client) CreateInvoice(ctx context.Context, invoice domain.Invoice) (string, error) {
	var res struct {
		InvoiceID string `json:"invoice_id"`
	}
	if err := c.do(ctx, "create invoice", http.MethodPost, "/api/invoices", invoice, &res); err != nil {
		return "", err
	}
	return res.InvoiceID, nil
}

func (c *Client) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	return c.do(ctx, "update invoice", http.MethodPut, "/api/invoices/"+url.PathEscape(invoice.ID), invoice, nil)
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.do(ctx, "delete invoice", http.MethodDelete, "/api/invoices/"+url.PathEscape(id), nil, nil)
}

// UpdateInvoiceStatus changes only the lifecycle status, leaving the
// rest of the invoice untouched.
func (c *Client) UpdateInvoiceStatus(ctx context.Context, id string, status domain.InvoiceStatus) error {
	body := struct {
		Status domain.InvoiceStatus `json:"status"`
	}{Status: status}
	return c.do(ctx, "update invoice status", http.MethodPut, "/api/invoices/"+url.PathEscape(id)+"/status", body, nil)
}

// FetchInvoicePDF downloads the rendered PDF for an invoice.
func (c *Client) FetchInvoicePDF(ctx context.Context, id string) ([]byte, error) {
	return c.fetch(ctx, "fetch invoice pdf", "/api/invoices/"+url.PathEscape(id)+"/pdf", "application/pdf")
}
