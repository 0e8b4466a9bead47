package shell

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/facturo/facturo/internal/domain"
)

// paymentForm records a payment against one invoice. The draft comes
// pre-filled with the outstanding balance and today's date.
type paymentForm struct {
	*form
	invoiceID string
}

func newPaymentForm(inv domain.Invoice) *paymentForm {
	draft := domain.NewPaymentDraft(inv)
	label := inv.Number
	if label == "" {
		label = inv.ID
	}
	return &paymentForm{
		invoiceID: draft.InvoiceID,
		form: newForm("Record Payment · "+label,
			newField("amount", "Amount", draft.Amount.String(), ""),
			newField("payment_date", "Date", draft.PaymentDate.String(), "YYYY-MM-DD"),
			newField("payment_method", "Method", draft.PaymentMethod, strings.Join(domain.PaymentMethods, " | ")),
			newField("reference_number", "Reference", "", ""),
			newField("notes", "Notes", "", ""),
		),
	}
}

func (f *paymentForm) draft() (domain.Payment, map[string]string) {
	problems := map[string]string{}

	p := domain.Payment{
		InvoiceID:       f.invoiceID,
		PaymentMethod:   f.value("payment_method"),
		ReferenceNumber: f.value("reference_number"),
		Notes:           f.value("notes"),
	}

	amount, err := decimal.NewFromString(f.value("amount"))
	if err != nil {
		problems["amount"] = "must be a number"
	} else {
		p.Amount = amount
	}

	when, err := domain.ParseDate(f.value("payment_date"))
	if err != nil {
		problems["payment_date"] = "must be YYYY-MM-DD"
	} else {
		p.PaymentDate = when
	}

	if method := p.PaymentMethod; method != "" && !validPaymentMethod(method) {
		problems["payment_method"] = fmt.Sprintf("must be one of %s", strings.Join(domain.PaymentMethods, ", "))
	}

	for field, problem := range p.Validate() {
		if _, taken := problems[field]; !taken {
			problems[field] = problem
		}
	}
	return p, problems
}

func validPaymentMethod(method string) bool {
	for _, m := range domain.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

func (m *Model) openPaymentDialog(inv domain.Invoice) tea.Cmd {
	m.paymentForm = newPaymentForm(inv)
	m.dialog = dialogPayment
	return nil
}

func (m *Model) updatePaymentDialog(msg tea.KeyMsg) tea.Cmd {
	f := m.paymentForm
	action, cmd := f.handleKey(msg)
	switch action {
	case formCancel:
		m.closeDialog()
		return nil
	case formSubmit:
		draft, problems := f.draft()
		if len(problems) > 0 {
			f.errors = problems
			return nil
		}
		f.errors = nil
		f.saving = true
		return m.recordPaymentCmd(draft)
	}
	return cmd
}

func (m *Model) viewPaymentDialog() string {
	return m.paymentForm.view()
}
