package shell

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
)

func (m *Model) updateCustomersView(msg tea.KeyMsg) tea.Cmd {
	if m.filterFocused {
		return m.updateCustomerFilter(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "/":
		m.filterFocused = true
		return m.customerFilter.Focus()
	case "r":
		return m.loadCustomersCmd()
	case "up", "k":
		if m.customerCursor > 0 {
			m.customerCursor--
		}
	case "down", "j":
		if m.customerCursor < len(m.visibleCustomers())-1 {
			m.customerCursor++
		}
	case "n":
		return m.openCustomerDialogNew()
	case "enter", "e":
		if c, ok := m.selectedCustomer(); ok {
			return m.openCustomerDialogEdit(c)
		}
	case "d":
		if c, ok := m.selectedCustomer(); ok {
			m.openConfirm(confirmPrompt{
				question: fmt.Sprintf("Delete customer %s?", c.Name),
				action:   m.deleteCustomerCmd(c.ID, c.Name),
			})
		}
	case "tab":
		m.view = viewInvoices
	case "1":
		m.view = viewDashboard
	case "2":
		m.view = viewCustomers
	case "3":
		m.view = viewInvoices
	}
	return nil
}

// updateCustomerFilter feeds keystrokes to the filter input; the list
// narrows on every change.
func (m *Model) updateCustomerFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		if msg.Type == tea.KeyEsc {
			m.customerFilter.SetValue("")
		}
		m.filterFocused = false
		m.customerFilter.Blur()
		m.clampCursors()
		return nil
	case tea.KeyUp, tea.KeyDown:
		// let the list keep its cursor keys while filtering
		m.filterFocused = false
		m.customerFilter.Blur()
		return m.updateCustomersView(msg)
	}
	var cmd tea.Cmd
	m.customerFilter, cmd = m.customerFilter.Update(msg)
	m.clampCursors()
	return cmd
}

func (m *Model) viewCustomers() string {
	var b strings.Builder
	visible := m.visibleCustomers()

	selected := m.customerCursor
	if !m.filterFocused && len(visible) == 0 {
		selected = -1
	}
	b.WriteString(tui.RenderCustomerTable(visible, selected))

	b.WriteString("\n  ")
	if m.filterFocused || m.customerFilter.Value() != "" {
		b.WriteString(m.customerFilter.View())
	}
	if m.loading.customers {
		b.WriteString("  refreshing…")
	}
	b.WriteString("\n")
	return b.String()
}
