// Package tui renders domain values for the terminal. Renderers are
// pure string functions so views and headless commands share them.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facturo/facturo/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	accentStyle   = lipgloss.NewStyle().Foreground(accent)
	okStyle       = lipgloss.NewStyle().Foreground(success)
	errStyle      = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Padding(0, 2)

	separatorLine = faintStyle.Render(strings.Repeat("─", 78))
)

var statusStyles = map[domain.InvoiceStatus]lipgloss.Style{
	domain.StatusDraft:     dimStyle,
	domain.StatusSent:      infoStyle,
	domain.StatusPaid:      okStyle,
	domain.StatusOverdue:   errStyle,
	domain.StatusCancelled: faintStyle,
}

var paymentStatusStyles = map[domain.PaymentStatus]lipgloss.Style{
	domain.PaymentPending: warnStyle,
	domain.PaymentPartial: infoStyle,
	domain.PaymentPaid:    okStyle,
	domain.PaymentFailed:  errStyle,
}

// StatusBadge renders an invoice status in its color.
func StatusBadge(status domain.InvoiceStatus) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(string(status))
	}
	return dimStyle.Render(string(status))
}

// PaymentBadge renders a payment status in its color.
func PaymentBadge(status domain.PaymentStatus) string {
	if style, ok := paymentStatusStyles[status]; ok {
		return style.Render(string(status))
	}
	return dimStyle.Render(string(status))
}

// padRight pads s with spaces to the given display width, truncating
// long values first. Widths are measured after styling-safe rules so
// wide runes line up.
func padRight(s string, width int) string {
	s = truncate(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// padLeft right-aligns s within width, truncating long values.
func padLeft(s string, width int) string {
	s = truncate(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// truncate cuts s to the given display width, marking the cut with an
// ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
