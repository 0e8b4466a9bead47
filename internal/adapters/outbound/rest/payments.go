package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/facturo/facturo/internal/domain"
)

// CreatePayment records a payment; the API adjusts the invoice's
// amount_paid and payment_status as a side effect.
func (c *Client) CreatePayment(ctx context.Context, payment domain.Payment) (string, error) {
	var res struct {
		PaymentID string `json:"payment_id"`
	}
	if err := c.do(ctx, "create payment", http.MethodPost, "/api/payments", payment, &res); err != nil {
		return "", err
	}
	return res.PaymentID, nil
}

func (c *Client) ListInvoicePayments(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := c.do(ctx, "list invoice payments", http.MethodGet, "/api/payments/invoice/"+url.PathEscape(invoiceID), nil, &payments)
	if err != nil {
		return nil, err
	}
	return payments, nil
}
