package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/facturo/facturo/internal/domain"
)

// InvoiceService coordinates invoice reads, writes, payments and PDF
// exports.
type InvoiceService struct {
	api    domain.InvoiceAPI
	writer domain.ArtifactWriter
}

func NewInvoiceService(api domain.InvoiceAPI, writer domain.ArtifactWriter) *InvoiceService {
	return &InvoiceService{
		api:    api,
		writer: writer,
	}
}

func (s *InvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.api.ListInvoices(ctx)
}

func (s *InvoiceService) Get(ctx context.Context, id string) (domain.Invoice, error) {
	return s.api.GetInvoice(ctx, id)
}

// Resolve finds an invoice by id or, failing that, by its invoice
// number, so commands can take whichever the user has at hand.
func (s *InvoiceService) Resolve(ctx context.Context, ref string) (domain.Invoice, error) {
	invoice, err := s.api.GetInvoice(ctx, ref)
	if err == nil {
		return invoice, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Invoice{}, err
	}
	invoices, listErr := s.api.ListInvoices(ctx)
	if listErr != nil {
		return domain.Invoice{}, listErr
	}
	for _, inv := range invoices {
		if inv.Number == ref {
			return inv, nil
		}
	}
	return domain.Invoice{}, err
}

// Save validates the draft, recomputes its totals and creates or
// updates it. The returned invoice carries the identity assigned by
// the API on create; the API fills in the generated invoice number
// and authoritative totals on its side.
func (s *InvoiceService) Save(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	if problems := invoice.Validate(); len(problems) > 0 {
		return domain.Invoice{}, &domain.ValidationError{Problems: problems}
	}
	invoice.ComputeTotals()
	if invoice.IsNew() {
		id, err := s.api.CreateInvoice(ctx, invoice)
		if err != nil {
			return domain.Invoice{}, err
		}
		invoice.ID = id
		return invoice, nil
	}
	if err := s.api.UpdateInvoice(ctx, invoice); err != nil {
		return domain.Invoice{}, err
	}
	return invoice, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteInvoice(ctx, id)
}

// UpdateStatus changes only the lifecycle status of an invoice.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error {
	if !status.Valid() {
		return &domain.ValidationError{Problems: map[string]string{
			"status": "must be one of draft, sent, paid, overdue, cancelled",
		}}
	}
	return s.api.UpdateInvoiceStatus(ctx, id, status)
}

// ExportPDF downloads the rendered document and writes it next to the
// other exports, named after the invoice number. It returns the
// absolute path of the written file.
func (s *InvoiceService) ExportPDF(ctx context.Context, id string) (string, error) {
	invoice, err := s.api.GetInvoice(ctx, id)
	if err != nil {
		return "", err
	}
	data, err := s.api.FetchInvoicePDF(ctx, id)
	if err != nil {
		return "", err
	}
	path, err := s.writer.Save(invoice.ExportFileName(), data)
	if err != nil {
		return "", fmt.Errorf("save export: %w", err)
	}
	return path, nil
}

// RecordPayment validates and posts a payment; the API moves the
// invoice's paid amount and payment status as a side effect.
func (s *InvoiceService) RecordPayment(ctx context.Context, payment domain.Payment) (string, error) {
	if problems := payment.Validate(); len(problems) > 0 {
		return "", &domain.ValidationError{Problems: problems}
	}
	return s.api.CreatePayment(ctx, payment)
}

func (s *InvoiceService) ListPayments(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	return s.api.ListInvoicePayments(ctx, invoiceID)
}
