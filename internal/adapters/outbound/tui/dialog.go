package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/facturo/facturo/internal/domain"
)

// RenderDialogTitle renders an editor dialog heading.
func RenderDialogTitle(title string) string {
	return headerStyle.Render(title)
}

// RenderFieldLabel renders a form field label, highlighted when the
// field has focus.
func RenderFieldLabel(label string, focused bool) string {
	if focused {
		return accentStyle.Render(label)
	}
	return dimStyle.Render(label)
}

// RenderFieldError renders an inline validation problem under a field.
func RenderFieldError(problem string) string {
	return errStyle.Render("↳ " + problem)
}

// RenderSaving renders the in-flight marker shown while a dialog's
// mutation is on the wire.
func RenderSaving() string {
	return dimStyle.Render("saving…")
}

// RenderConfirm renders a destructive-action prompt.
func RenderConfirm(question string) string {
	return warnStyle.Render(question) + dimStyle.Render("  y / n")
}

// RenderStatusOption renders one row of the status picker.
func RenderStatusOption(marker string, status domain.InvoiceStatus, focused, current bool) string {
	line := marker + string(status)
	if current {
		line += " (current)"
	}
	if focused {
		return selectedStyle.Render(line)
	}
	if current {
		return dimStyle.Render(line)
	}
	return line
}

// RenderRunningTotals renders the live subtotal/tax/total line shown
// under the invoice editor.
func RenderRunningTotals(subtotal, tax, total decimal.Decimal, currency string) string {
	return dimStyle.Render("Subtotal ") + domain.FormatAmount(subtotal, currency) +
		dimStyle.Render("   Tax ") + domain.FormatAmount(tax, currency) +
		dimStyle.Render("   Total ") + titleStyle.Render(domain.FormatAmount(total, currency))
}

// RenderCustomerOptions lists the first few customers with the
// positions the invoice editor accepts.
func RenderCustomerOptions(customers []domain.Customer, limit int) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("Customers: "))
	for i, c := range customers {
		if i == limit {
			b.WriteString(dimStyle.Render(fmt.Sprintf("… +%d more", len(customers)-limit)))
			break
		}
		if i > 0 {
			b.WriteString(dimStyle.Render("  "))
		}
		b.WriteString(accentStyle.Render(fmt.Sprintf("%d", i+1)) + " " + c.Name)
	}
	return b.String()
}
