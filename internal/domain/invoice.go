package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusSent      InvoiceStatus = "sent"
	StatusPaid      InvoiceStatus = "paid"
	StatusOverdue   InvoiceStatus = "overdue"
	StatusCancelled InvoiceStatus = "cancelled"
)

// AllInvoiceStatuses lists the selectable statuses in display order.
var AllInvoiceStatuses = []InvoiceStatus{
	StatusDraft,
	StatusSent,
	StatusPaid,
	StatusOverdue,
	StatusCancelled,
}

func (s InvoiceStatus) Valid() bool {
	for _, known := range AllInvoiceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s InvoiceStatus) String() string { return string(s) }

// PaymentStatus tracks how much of an invoice has been settled.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// LineItem is a single billable row on an invoice. Totals are
// recomputed by the API on every write; the client computes them too
// so drafts can show live figures before saving.
type LineItem struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Total       decimal.Decimal `json:"total"`
}

// Subtotal is quantity times unit price, before tax.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// Tax is the tax portion for this line.
func (li LineItem) Tax() decimal.Decimal {
	return li.Subtotal().Mul(li.TaxRate).Div(decimal.NewFromInt(100))
}

// Invoice represents an invoice as returned by the API. CustomerName
// is a read-side join the list and detail endpoints attach; it is
// ignored on writes.
type Invoice struct {
	ID            string          `json:"invoice_id,omitempty"`
	Number        string          `json:"invoice_number"`
	CustomerID    string          `json:"customer_id" validate:"required"`
	CustomerName  string          `json:"customer_name,omitempty"`
	IssueDate     Date            `json:"issue_date"`
	DueDate       Date            `json:"due_date"`
	Status        InvoiceStatus   `json:"status"`
	LineItems     []LineItem      `json:"line_items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Notes         string          `json:"notes,omitempty"`
	Terms         string          `json:"terms,omitempty"`
	PaymentStatus PaymentStatus   `json:"payment_status,omitempty"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
}

func (inv Invoice) IsNew() bool { return inv.ID == "" }

// Outstanding is the unpaid remainder of the invoice total.
func (inv Invoice) Outstanding() decimal.Decimal {
	return inv.TotalAmount.Sub(inv.AmountPaid)
}

// ComputeTotals recalculates the per-line and invoice totals from the
// line items, rounding to two decimal places the same way the API
// does. Draft editors call this after every keystroke so the footer
// always shows what the API will store.
func (inv *Invoice) ComputeTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for i := range inv.LineItems {
		li := &inv.LineItems[i]
		lineSub := li.Subtotal()
		lineTax := li.Tax()
		li.Total = Round2(lineSub.Add(lineTax))
		subtotal = subtotal.Add(lineSub)
		tax = tax.Add(lineTax)
	}
	inv.Subtotal = Round2(subtotal)
	inv.TaxAmount = Round2(tax)
	inv.TotalAmount = Round2(subtotal.Add(tax))
}

// NewInvoiceDraft returns an invoice pre-filled the way the editor
// opens it: draft status, issued today, due per the company's payment
// terms, and one empty line at the default tax rate. The invoice
// number is left blank so the API assigns one.
func NewInvoiceDraft(settings CompanySettings) Invoice {
	issue := Today()
	inv := Invoice{
		Status:    StatusDraft,
		IssueDate: issue,
		DueDate:   issue.AddDays(settings.PaymentTermDays()),
		LineItems: []LineItem{NewLineItemDraft(settings)},
		Terms:     settings.DefaultPaymentTerms,
	}
	inv.ComputeTotals()
	return inv
}

// NewLineItemDraft returns an empty line at the company default tax rate.
func NewLineItemDraft(settings CompanySettings) LineItem {
	return LineItem{
		Quantity: decimal.NewFromInt(1),
		TaxRate:  settings.DefaultTaxRate,
	}
}

// ExportFileName names an exported PDF after the invoice number,
// matching the attachment name the API suggests.
func (inv Invoice) ExportFileName() string {
	ref := inv.Number
	if ref == "" {
		ref = inv.ID
	}
	return "invoice_" + ref + ".pdf"
}

// Validate checks the draft and returns a field-keyed map of
// human-readable problems. Line item issues are keyed as
// "line_items[i].field".
func (inv Invoice) Validate() map[string]string {
	problems := validateStruct(inv)
	if !inv.Status.Valid() {
		problems["status"] = "must be one of draft, sent, paid, overdue, cancelled"
	}
	if inv.IssueDate.IsZero() {
		problems["issue_date"] = "this field is required"
	}
	if inv.DueDate.IsZero() {
		problems["due_date"] = "this field is required"
	}
	if !inv.IssueDate.IsZero() && !inv.DueDate.IsZero() && inv.DueDate.Before(inv.IssueDate) {
		problems["due_date"] = "must not be before the issue date"
	}
	if len(inv.LineItems) == 0 {
		problems["line_items"] = "at least one line item is required"
	}
	for i, li := range inv.LineItems {
		key := func(field string) string {
			return fmt.Sprintf("line_items[%d].%s", i, field)
		}
		if li.Description == "" {
			problems[key("description")] = "this field is required"
		}
		if li.Quantity.Sign() <= 0 {
			problems[key("quantity")] = "must be greater than zero"
		}
		if li.UnitPrice.Sign() < 0 {
			problems[key("unit_price")] = "must not be negative"
		}
		if li.TaxRate.Sign() < 0 {
			problems[key("tax_rate")] = "must not be negative"
		}
	}
	return problems
}
