package tui

import (
	"fmt"
	"strings"

	"github.com/facturo/facturo/internal/domain"
)

// RenderInvoiceTable lists invoices with the row at selected marked.
// Pass selected = -1 when nothing is highlighted.
func RenderInvoiceTable(invoices []domain.Invoice, currency string, selected int) string {
	var b strings.Builder

	b.WriteString("  " + faintStyle.Render(padRight("", 2)+padRight("Number", 22)+padRight("Customer", 22)+padRight("Issued", 12)+padRight("Due", 12)+padRight("Status", 10)+padLeft("Total", 12)) + "\n")
	b.WriteString("  " + separatorLine + "\n")

	if len(invoices) == 0 {
		b.WriteString("  " + dimStyle.Render("No invoices match.") + "\n")
		return b.String()
	}

	for i, inv := range invoices {
		row := fmt.Sprintf("%s%s%s%s%s",
			padRight(inv.CustomerName, 22),
			padRight(inv.IssueDate.String(), 12),
			padRight(inv.DueDate.String(), 12),
			padRight(StatusBadge(inv.Status), 10),
			padLeft(domain.FormatAmount(inv.TotalAmount, currency), 12),
		)
		number := padRight(inv.Number, 22)
		if i == selected {
			b.WriteString("  " + selectedStyle.Render("▸ "+number) + row + "\n")
		} else {
			b.WriteString("    " + accentStyle.Render(number) + row + "\n")
		}
	}
	return b.String()
}

// RenderInvoiceDetail shows one invoice with its line items and payment
// standing.
func RenderInvoiceDetail(inv domain.Invoice, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s %s %s\n",
		titleStyle.Render(inv.Number),
		StatusBadge(inv.Status),
		PaymentBadge(inv.PaymentStatus),
	)
	b.WriteString("  " + separatorLine + "\n")

	if inv.CustomerName != "" {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Customer", 10)), inv.CustomerName)
	}
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Issued", 10)), inv.IssueDate.String())
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Due", 10)), inv.DueDate.String())
	b.WriteString("\n")

	b.WriteString("  " + faintStyle.Render(padRight("Description", 34)+padLeft("Qty", 8)+padLeft("Price", 12)+padLeft("Tax %", 8)+padLeft("Total", 12)) + "\n")
	for _, item := range inv.LineItems {
		fmt.Fprintf(&b, "  %s%s%s%s%s\n",
			padRight(item.Description, 34),
			padLeft(item.Quantity.String(), 8),
			padLeft(domain.FormatAmount(item.UnitPrice, currency), 12),
			padLeft(item.TaxRate.StringFixed(1), 8),
			padLeft(domain.FormatAmount(item.Total, currency), 12),
		)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Subtotal", 10)), padLeft(domain.FormatAmount(inv.Subtotal, currency), 14))
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Tax", 10)), padLeft(domain.FormatAmount(inv.TaxAmount, currency), 14))
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Total", 10)), titleStyle.Render(padLeft(domain.FormatAmount(inv.TotalAmount, currency), 14)))
	if inv.AmountPaid.IsPositive() {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Paid", 10)), okStyle.Render(padLeft(domain.FormatAmount(inv.AmountPaid, currency), 14)))
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Due", 10)), warnStyle.Render(padLeft(domain.FormatAmount(inv.Outstanding(), currency), 14)))
	}

	if strings.TrimSpace(inv.Notes) != "" {
		b.WriteString("\n  " + dimStyle.Render("Notes") + "\n")
		b.WriteString("  " + inv.Notes + "\n")
	}
	return b.String()
}

// RenderPayments lists payments recorded against an invoice.
func RenderPayments(payments []domain.Payment, currency string) string {
	if len(payments) == 0 {
		return "  " + dimStyle.Render("No payments recorded.") + "\n"
	}
	var b strings.Builder
	b.WriteString("  " + faintStyle.Render(padRight("Date", 12)+padRight("Method", 16)+padRight("Reference", 20)+padLeft("Amount", 12)) + "\n")
	for _, p := range payments {
		fmt.Fprintf(&b, "  %s%s%s%s\n",
			padRight(p.PaymentDate.String(), 12),
			padRight(p.PaymentMethod, 16),
			padRight(p.ReferenceNumber, 20),
			padLeft(domain.FormatAmount(p.Amount, currency), 12),
		)
	}
	return b.String()
}
