package shell

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/domain"
)

// customerForm edits a customer draft. The id is empty for a new
// customer; saving decides create-vs-update from it.
type customerForm struct {
	*form
	id string
}

func newCustomerForm(c domain.Customer) *customerForm {
	title := "New Customer"
	if !c.IsNew() {
		title = "Edit " + c.Name
	}
	return &customerForm{
		id: c.ID,
		form: newForm(title,
			newField("name", "Name", c.Name, "Acme Corp"),
			newField("email", "Email", c.Email, "billing@acme.com"),
			newField("phone", "Phone", c.Phone, ""),
			newField("company", "Company", c.Company, ""),
			newField("address", "Address", c.Address, ""),
			newField("city", "City", c.City, ""),
			newField("state", "State", c.State, ""),
			newField("zip_code", "Zip code", c.ZipCode, ""),
			newField("country", "Country", c.Country, ""),
			newField("tax_number", "Tax number", c.TaxNumber, ""),
		),
	}
}

// draft assembles the customer from the current field values.
func (f *customerForm) draft() domain.Customer {
	return domain.Customer{
		ID:        f.id,
		Name:      f.value("name"),
		Email:     f.value("email"),
		Phone:     f.value("phone"),
		Company:   f.value("company"),
		Address:   f.value("address"),
		City:      f.value("city"),
		State:     f.value("state"),
		ZipCode:   f.value("zip_code"),
		Country:   f.value("country"),
		TaxNumber: f.value("tax_number"),
	}
}

func (m *Model) openCustomerDialogNew() tea.Cmd {
	m.customerForm = newCustomerForm(domain.NewCustomerDraft())
	m.dialog = dialogCustomer
	return nil
}

func (m *Model) openCustomerDialogEdit(c domain.Customer) tea.Cmd {
	m.customerForm = newCustomerForm(c)
	m.dialog = dialogCustomer
	return nil
}

func (m *Model) updateCustomerDialog(msg tea.KeyMsg) tea.Cmd {
	f := m.customerForm
	action, cmd := f.handleKey(msg)
	switch action {
	case formCancel:
		m.closeDialog()
		return nil
	case formSubmit:
		draft := f.draft()
		if problems := draft.Validate(); len(problems) > 0 {
			f.errors = problems
			return nil
		}
		f.errors = nil
		f.saving = true
		return m.saveCustomerCmd(draft)
	}
	return cmd
}

func (m *Model) viewCustomerDialog() string {
	return m.customerForm.view()
}
