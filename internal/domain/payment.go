package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentMethods lists the accepted values in display order.
var PaymentMethods = []string{
	"bank_transfer",
	"credit_card",
	"cash",
	"check",
	"other",
}

// Payment records money received against an invoice. Posting a
// payment moves the invoice's amount_paid and payment_status on the
// API side.
type Payment struct {
	ID              string          `json:"payment_id,omitempty"`
	InvoiceID       string          `json:"invoice_id" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     Date            `json:"payment_date"`
	PaymentMethod   string          `json:"payment_method" validate:"required"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// NewPaymentDraft returns a payment against the given invoice, dated
// today and pre-filled with the outstanding balance.
func NewPaymentDraft(inv Invoice) Payment {
	amount := inv.Outstanding()
	if amount.Sign() < 0 {
		amount = decimal.Zero
	}
	return Payment{
		InvoiceID:     inv.ID,
		Amount:        amount,
		PaymentDate:   Today(),
		PaymentMethod: PaymentMethods[0],
	}
}

// Validate checks the draft and returns a field-keyed map of
// human-readable problems.
func (p Payment) Validate() map[string]string {
	problems := validateStruct(p)
	if p.Amount.Sign() <= 0 {
		problems["amount"] = "must be greater than zero"
	}
	if p.PaymentDate.IsZero() {
		problems["payment_date"] = "this field is required"
	}
	return problems
}
