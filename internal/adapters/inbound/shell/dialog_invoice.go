package shell

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
	"github.com/facturo/facturo/internal/domain"
)

// invoiceForm edits an invoice draft: header fields plus an ordered,
// growable line-item section. Items append with ctrl+a and the item
// under the cursor is removed with ctrl+x. The totals line recomputes
// from the current field values on every render; the canonical totals
// still come from the server.
type invoiceForm struct {
	*form
	id            string
	customers     []domain.Customer
	defaultTax    decimal.Decimal
	currency      string
	items         int
	paymentStatus domain.PaymentStatus
	amountPaid    decimal.Decimal
}

const invoiceHeaderFields = 7

func itemKey(i int, field string) string {
	return fmt.Sprintf("line_items[%d].%s", i, field)
}

func newInvoiceForm(inv domain.Invoice, customers []domain.Customer, settings domain.CompanySettings) *invoiceForm {
	title := "New Invoice"
	if !inv.IsNew() {
		title = "Edit " + invoiceLabel(inv)
	}

	customerValue := ""
	for _, c := range customers {
		if c.ID == inv.CustomerID {
			customerValue = c.Name
			break
		}
	}

	fields := []formField{
		newField("customer_id", "Customer (number or name)", customerValue, "1"),
		newField("invoice_number", "Number (blank = assigned)", inv.Number, ""),
		newField("status", "Status", string(inv.Status), strings.Join(statusNames(), " | ")),
		newField("issue_date", "Issue date", inv.IssueDate.String(), "YYYY-MM-DD"),
		newField("due_date", "Due date", inv.DueDate.String(), "YYYY-MM-DD"),
		newField("notes", "Notes", inv.Notes, ""),
		newField("terms", "Terms", inv.Terms, ""),
	}
	for i, item := range inv.LineItems {
		fields = append(fields, itemFields(i, item)...)
	}

	return &invoiceForm{
		form:          newForm(title, fields...),
		id:            inv.ID,
		customers:     customers,
		defaultTax:    settings.DefaultTaxRate,
		currency:      settings.Currency,
		items:         len(inv.LineItems),
		paymentStatus: inv.PaymentStatus,
		amountPaid:    inv.AmountPaid,
	}
}

func statusNames() []string {
	names := make([]string, len(domain.AllInvoiceStatuses))
	for i, s := range domain.AllInvoiceStatuses {
		names[i] = string(s)
	}
	return names
}

func itemFields(i int, item domain.LineItem) []formField {
	return []formField{
		newField(itemKey(i, "description"), fmt.Sprintf("Item %d · Description", i+1), item.Description, "Consulting"),
		newField(itemKey(i, "quantity"), "Quantity", item.Quantity.String(), "1"),
		newField(itemKey(i, "unit_price"), "Unit price", item.UnitPrice.String(), "0.00"),
		newField(itemKey(i, "tax_rate"), "Tax rate %", item.TaxRate.String(), "0"),
	}
}

// addItem appends a blank line item seeded with the company default
// tax rate and moves focus to its description.
func (f *invoiceForm) addItem() tea.Cmd {
	item := domain.LineItem{Quantity: decimal.NewFromInt(1), TaxRate: f.defaultTax}
	f.fields = append(f.fields, itemFields(f.items, item)...)
	f.items++
	return f.focusField(invoiceHeaderFields + (f.items-1)*4)
}

// removeItem drops the line item the focus sits in. The last item
// stays; invoices need at least one.
func (f *invoiceForm) removeItem() tea.Cmd {
	if f.items <= 1 || f.focus < invoiceHeaderFields {
		return nil
	}
	idx := (f.focus - invoiceHeaderFields) / 4
	start := invoiceHeaderFields + idx*4
	f.fields = append(f.fields[:start], f.fields[start+4:]...)
	f.items--

	// re-key the items after the removed one
	for i := idx; i < f.items; i++ {
		base := invoiceHeaderFields + i*4
		f.fields[base].key = itemKey(i, "description")
		f.fields[base].label = fmt.Sprintf("Item %d · Description", i+1)
		f.fields[base+1].key = itemKey(i, "quantity")
		f.fields[base+2].key = itemKey(i, "unit_price")
		f.fields[base+3].key = itemKey(i, "tax_rate")
	}
	if start >= len(f.fields) {
		start = len(f.fields) - 1
	}
	f.focus = 0
	return f.focusField(start)
}

// resolveCustomer maps the customer field to a customer_id: a 1-based
// position in the loaded list, or a unique case-insensitive name or
// company match.
func (f *invoiceForm) resolveCustomer() (string, string) {
	raw := f.value("customer_id")
	if raw == "" {
		return "", "this field is required"
	}
	if idx, err := strconv.Atoi(raw); err == nil {
		if idx < 1 || idx > len(f.customers) {
			return "", fmt.Sprintf("no customer at position %d", idx)
		}
		return f.customers[idx-1].ID, ""
	}
	needle := strings.ToLower(raw)
	var matches []domain.Customer
	for _, c := range f.customers {
		if strings.EqualFold(c.Name, raw) {
			return c.ID, ""
		}
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(strings.ToLower(c.Company), needle) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0].ID, ""
	case 0:
		return "", "no customer matches"
	default:
		return "", "matches several customers, be more specific"
	}
}

// draft assembles the invoice from the current field values. Parse
// problems come back keyed by field.
func (f *invoiceForm) draft() (domain.Invoice, map[string]string) {
	problems := map[string]string{}

	inv := domain.Invoice{
		ID:            f.id,
		Number:        f.value("invoice_number"),
		Status:        domain.InvoiceStatus(f.value("status")),
		Notes:         f.value("notes"),
		Terms:         f.value("terms"),
		PaymentStatus: f.paymentStatus,
		AmountPaid:    f.amountPaid,
	}

	customerID, problem := f.resolveCustomer()
	if problem != "" {
		problems["customer_id"] = problem
	}
	inv.CustomerID = customerID

	inv.IssueDate = f.parseDate("issue_date", problems)
	inv.DueDate = f.parseDate("due_date", problems)

	for i := 0; i < f.items; i++ {
		item := domain.LineItem{Description: f.value(itemKey(i, "description"))}
		item.Quantity = f.parseDecimal(itemKey(i, "quantity"), problems)
		item.UnitPrice = f.parseDecimal(itemKey(i, "unit_price"), problems)
		item.TaxRate = f.parseDecimal(itemKey(i, "tax_rate"), problems)
		inv.LineItems = append(inv.LineItems, item)
	}

	for field, problem := range inv.Validate() {
		if _, taken := problems[field]; !taken {
			problems[field] = problem
		}
	}
	return inv, problems
}

func (f *invoiceForm) parseDate(key string, problems map[string]string) domain.Date {
	raw := f.value(key)
	d, err := domain.ParseDate(raw)
	if err != nil {
		problems[key] = "must be YYYY-MM-DD"
	}
	return d
}

func (f *invoiceForm) parseDecimal(key string, problems map[string]string) decimal.Decimal {
	raw := f.value(key)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		problems[key] = "must be a number"
		return decimal.Zero
	}
	return d
}

// runningTotals computes display totals from whatever parses right
// now; unparseable values count as zero.
func (f *invoiceForm) runningTotals() domain.Invoice {
	scratch, _ := f.draft()
	scratch.ComputeTotals()
	return scratch
}

func (m *Model) openInvoiceDialogNew() tea.Cmd {
	if len(m.customers) == 0 {
		m.fail("new invoice", errNoCustomers)
		return nil
	}
	m.invoiceForm = newInvoiceForm(domain.NewInvoiceDraft(m.settings), m.customers, m.settings)
	m.dialog = dialogInvoice
	return nil
}

func (m *Model) openInvoiceDialogEdit(inv domain.Invoice) tea.Cmd {
	m.invoiceForm = newInvoiceForm(inv, m.customers, m.settings)
	m.dialog = dialogInvoice
	return nil
}

func (m *Model) updateInvoiceDialog(msg tea.KeyMsg) tea.Cmd {
	f := m.invoiceForm

	switch msg.Type {
	case tea.KeyCtrlA:
		return f.addItem()
	case tea.KeyCtrlX:
		return f.removeItem()
	}

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
		return m.saveInvoiceCmd(draft)
	}
	return cmd
}

func (m *Model) viewInvoiceDialog() string {
	f := m.invoiceForm
	var b strings.Builder
	b.WriteString(f.view())

	b.WriteString("  " + tui.RenderKeyHelp("ctrl+a", "add item", "ctrl+x", "remove item") + "\n")

	totals := f.runningTotals()
	b.WriteString("  " + tui.RenderRunningTotals(totals.Subtotal, totals.TaxAmount, totals.TotalAmount, f.currency) + "\n")

	if len(f.customers) > 0 {
		b.WriteString("\n  " + tui.RenderCustomerOptions(f.customers, 6) + "\n")
	}
	return b.String()
}
