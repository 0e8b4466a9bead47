package tui

import (
	"fmt"
	"strings"

	"github.com/facturo/facturo/internal/domain"
)

// RenderCustomerTable lists customers with the row at selected marked.
// Pass selected = -1 when nothing is highlighted.
func RenderCustomerTable(customers []domain.Customer, selected int) string {
	var b strings.Builder

	b.WriteString("  " + faintStyle.Render(padRight("", 2)+padRight("Name", 24)+padRight("Email", 28)+padRight("Company", 20)+"Phone") + "\n")
	b.WriteString("  " + separatorLine + "\n")

	if len(customers) == 0 {
		b.WriteString("  " + dimStyle.Render("No customers match.") + "\n")
		return b.String()
	}

	for i, c := range customers {
		name := padRight(c.Name, 24)
		row := fmt.Sprintf("%s%s%s",
			padRight(c.Email, 28),
			padRight(c.Company, 20),
			padRight(c.Phone, 14),
		)
		if i == selected {
			b.WriteString("  " + selectedStyle.Render("▸ "+name) + row + "\n")
		} else {
			b.WriteString("    " + titleStyle.Render(name) + row + "\n")
		}
	}
	return b.String()
}

// RenderCustomerDetail shows one customer's full record.
func RenderCustomerDetail(c domain.Customer) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(c.Name) + "\n")
	b.WriteString("  " + separatorLine + "\n")

	rows := []struct {
		label string
		value string
	}{
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Company", c.Company},
		{"Address", c.Address},
		{"City", joinNonEmpty(c.City, c.State, c.ZipCode)},
		{"Country", c.Country},
		{"Tax number", c.TaxNumber},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight(row.label, 12)), row.value)
	}
	return b.String()
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
