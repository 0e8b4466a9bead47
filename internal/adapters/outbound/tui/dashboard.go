package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facturo/facturo/internal/domain"
)

// RenderStats lays out the dashboard tiles: headline amounts first,
// then the per-status invoice counts.
func RenderStats(stats domain.DashboardStats, currency string) string {
	var b strings.Builder

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Revenue", okStyle.Render(domain.FormatAmount(stats.TotalRevenue, currency))),
		statCard("Pending", warnStyle.Render(domain.FormatAmount(stats.PendingAmount, currency))),
		statCard("Overdue", errStyle.Render(domain.FormatAmount(stats.OverdueAmount, currency))),
		statCard("Paid", okStyle.Render(domain.FormatAmount(stats.PaidAmount, currency))),
	)
	b.WriteString(indent(cards))
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s %s   %s %s\n",
		titleStyle.Render(fmt.Sprintf("%d", stats.TotalCustomers)), dimStyle.Render("customers"),
		titleStyle.Render(fmt.Sprintf("%d", stats.TotalInvoices)), dimStyle.Render("invoices"),
	)

	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d draft", stats.DraftCount)))
	b.WriteString("  ")
	b.WriteString(infoStyle.Render(fmt.Sprintf("%d sent", stats.SentCount)))
	b.WriteString("  ")
	b.WriteString(okStyle.Render(fmt.Sprintf("%d paid", stats.PaidCount)))
	b.WriteString("  ")
	b.WriteString(errStyle.Render(fmt.Sprintf("%d overdue", stats.OverdueCount)))
	b.WriteString("\n")

	return b.String()
}

func statCard(label, value string) string {
	content := dimStyle.Render(label) + "\n" + value
	return cardStyle.Render(content)
}

func indent(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderRecentInvoices lists the latest invoices under the tiles.
func RenderRecentInvoices(invoices []domain.Invoice, currency string) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Recent Invoices") + "\n")
	b.WriteString("  " + separatorLine + "\n")

	if len(invoices) == 0 {
		b.WriteString("  " + dimStyle.Render("No invoices yet.") + "\n")
		return b.String()
	}

	for _, inv := range invoices {
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			accentStyle.Render(padRight(inv.Number, 22)),
			padRight(inv.CustomerName, 24),
			padLeft(domain.FormatAmount(inv.TotalAmount, currency), 14),
			StatusBadge(inv.Status),
		)
	}
	return b.String()
}
