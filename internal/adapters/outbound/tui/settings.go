package tui

import (
	"fmt"
	"strings"

	"github.com/facturo/facturo/internal/domain"
)

// RenderSettings shows the company profile and invoicing defaults.
func RenderSettings(s domain.CompanySettings) string {
	var b strings.Builder

	name := s.CompanyName
	if name == "" {
		name = "Company profile"
	}
	b.WriteString("  " + titleStyle.Render(name) + "\n")
	b.WriteString("  " + separatorLine + "\n")

	rows := []struct {
		label string
		value string
	}{
		{"Address", s.Address},
		{"City", joinNonEmpty(s.City, s.State, s.ZipCode)},
		{"Country", s.Country},
		{"Phone", s.Phone},
		{"Email", s.Email},
		{"Website", s.Website},
		{"Tax number", s.TaxNumber},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight(row.label, 14)), row.value)
	}

	b.WriteString("\n  " + titleStyle.Render("Invoice defaults") + "\n")
	fmt.Fprintf(&b, "  %s %s%%\n", dimStyle.Render(padRight("Tax rate", 14)), s.DefaultTaxRate.StringFixed(1))
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Terms", 14)), s.DefaultPaymentTerms)
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Currency", 14)), s.Currency)
	if s.Logo != "" {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Logo", 14)), dimStyle.Render(describeLogo(s.Logo)))
	}
	return b.String()
}

// describeLogo summarizes an embedded data-URI logo instead of dumping
// base64 into the view.
func describeLogo(logo string) string {
	if !strings.HasPrefix(logo, "data:") {
		return logo
	}
	meta, rest, ok := strings.Cut(strings.TrimPrefix(logo, "data:"), ",")
	if !ok {
		return "embedded image"
	}
	mime, _, _ := strings.Cut(meta, ";")
	return fmt.Sprintf("embedded %s (%d bytes encoded)", mime, len(rest))
}
