package shell

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/facturo/facturo/internal/application"
	"github.com/facturo/facturo/internal/domain"
)

// settingsForm edits the company profile. The logo field takes a file
// path; submission reads the file and embeds it as a data URI.
type settingsForm struct {
	*form
	logo string // current embedded logo, kept unless a new path is given
}

func newSettingsForm(s domain.CompanySettings) *settingsForm {
	logoPlaceholder := "path to image file"
	if s.Logo != "" {
		logoPlaceholder = "path to image file (keeps current logo when blank)"
	}
	return &settingsForm{
		logo: s.Logo,
		form: newForm("Company Settings",
			newField("company_name", "Company name", s.CompanyName, ""),
			newField("address", "Address", s.Address, ""),
			newField("city", "City", s.City, ""),
			newField("state", "State", s.State, ""),
			newField("zip_code", "Zip code", s.ZipCode, ""),
			newField("country", "Country", s.Country, ""),
			newField("phone", "Phone", s.Phone, ""),
			newField("email", "Email", s.Email, ""),
			newField("website", "Website", s.Website, ""),
			newField("tax_number", "Tax number", s.TaxNumber, ""),
			newField("logo", "Logo", "", logoPlaceholder),
			newField("default_tax_rate", "Default tax rate %", s.DefaultTaxRate.String(), "0"),
			newField("default_payment_terms", "Payment terms", s.DefaultPaymentTerms, "Net 30"),
			newField("currency", "Currency", s.Currency, "USD"),
		),
	}
}

// draft assembles the settings, reading the logo file when a path was
// entered. Field-level problems come back in the map.
func (f *settingsForm) draft() (domain.CompanySettings, map[string]string) {
	problems := map[string]string{}

	s := domain.CompanySettings{
		CompanyName:         f.value("company_name"),
		Address:             f.value("address"),
		City:                f.value("city"),
		State:               f.value("state"),
		ZipCode:             f.value("zip_code"),
		Country:             f.value("country"),
		Phone:               f.value("phone"),
		Email:               f.value("email"),
		Website:             f.value("website"),
		TaxNumber:           f.value("tax_number"),
		Logo:                f.logo,
		DefaultPaymentTerms: f.value("default_payment_terms"),
		Currency:            f.value("currency"),
	}

	if path := f.value("logo"); path != "" {
		logo, err := application.LoadLogo(path)
		if err != nil {
			problems["logo"] = err.Error()
		} else {
			s.Logo = logo
		}
	}

	if raw := f.value("default_tax_rate"); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			problems["default_tax_rate"] = "must be a number"
		} else {
			s.DefaultTaxRate = rate
		}
	}

	for field, problem := range s.Validate() {
		if _, taken := problems[field]; !taken {
			problems[field] = problem
		}
	}
	return s, problems
}

func (m *Model) openSettingsDialog() tea.Cmd {
	m.settingsForm = newSettingsForm(m.settings)
	m.dialog = dialogSettings
	return nil
}

func (m *Model) updateSettingsDialog(msg tea.KeyMsg) tea.Cmd {
	f := m.settingsForm
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
		return m.saveSettingsCmd(draft)
	}
	return cmd
}

func (m *Model) viewSettingsDialog() string {
	return m.settingsForm.view()
}
