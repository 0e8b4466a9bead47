package domain_test

import (
	"testing"

	"github.com/facturo/facturo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewPaymentDraft(t *testing.T) {
	inv := domain.Invoice{
		ID:          "inv-1",
		TotalAmount: decimal.NewFromInt(500),
		AmountPaid:  decimal.NewFromInt(200),
	}
	p := domain.NewPaymentDraft(inv)
	assert.Equal(t, "inv-1", p.InvoiceID)
	assert.Equal(t, "300.00", p.Amount.StringFixed(2))
	assert.Equal(t, domain.Today().String(), p.PaymentDate.String())
	assert.Equal(t, "bank_transfer", p.PaymentMethod)
}

func TestNewPaymentDraft_Overpaid(t *testing.T) {
	inv := domain.Invoice{
		ID:          "inv-1",
		TotalAmount: decimal.NewFromInt(100),
		AmountPaid:  decimal.NewFromInt(150),
	}
	p := domain.NewPaymentDraft(inv)
	assert.True(t, p.Amount.IsZero())
}

func TestPayment_Validate(t *testing.T) {
	problems := domain.Payment{}.Validate()
	assert.Contains(t, problems, "invoice_id")
	assert.Contains(t, problems, "payment_method")
	assert.Equal(t, "must be greater than zero", problems["amount"])
	assert.Contains(t, problems, "payment_date")

	p := domain.Payment{
		InvoiceID:     "inv-1",
		Amount:        decimal.NewFromInt(50),
		PaymentDate:   domain.Today(),
		PaymentMethod: "cash",
	}
	assert.Empty(t, p.Validate())
}
