// Package shell is the interactive terminal application: a Bubble Tea
// model holding the canonical collections, typed messages for every
// event, and per-view update and view functions. All state changes go
// through Update; network work runs as commands that report back with
// messages.
package shell

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/application"
	"github.com/facturo/facturo/internal/domain"
)

// errNoCustomers blocks the invoice editor until a customer exists to
// bill against.
var errNoCustomers = errors.New("create a customer first")

type view int

const (
	viewDashboard view = iota
	viewCustomers
	viewInvoices
)

func (v view) title() string {
	switch v {
	case viewCustomers:
		return "Customers"
	case viewInvoices:
		return "Invoices"
	default:
		return "Dashboard"
	}
}

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogCustomer
	dialogInvoice
	dialogSettings
	dialogPayment
	dialogConfirm
	dialogStatus
	dialogDetail
)

// generations tracks, per collection, which load request is current.
// A completion carrying an older generation is ignored.
type generations struct {
	customers int
	invoices  int
	stats     int
	settings  int
}

type loadingFlags struct {
	customers bool
	invoices  bool
	stats     bool
}

type banner struct {
	text  string
	isErr bool
}

// Model is the application state. Collections hold what the server
// last confirmed; dialogs edit drafts and never touch the collections
// directly.
type Model struct {
	services *application.Services
	log      *slog.Logger

	view   view
	dialog dialogKind

	customers []domain.Customer
	invoices  []domain.Invoice
	stats     domain.DashboardStats
	recent    []domain.Invoice
	settings  domain.CompanySettings

	gen     generations
	loading loadingFlags

	customerFilter textinput.Model
	invoiceFilter  textinput.Model
	filterFocused  bool
	customerCursor int
	invoiceCursor  int

	customerForm *customerForm
	invoiceForm  *invoiceForm
	settingsForm *settingsForm
	paymentForm  *paymentForm
	confirm      *confirmPrompt
	statusPicker *statusPicker
	detail       *invoiceDetail

	banner banner
	width  int
	height int
}

// New builds the shell around the application services. The logger
// must not write to stdout while the program runs.
func New(services *application.Services, log *slog.Logger) *Model {
	newFilter := func() textinput.Model {
		ti := textinput.New()
		ti.Placeholder = "type to filter"
		ti.Prompt = "/ "
		ti.CharLimit = 64
		return ti
	}
	return &Model{
		services:       services,
		log:            log,
		settings:       domain.DefaultCompanySettings(),
		customerFilter: newFilter(),
		invoiceFilter:  newFilter(),
	}
}

// Run drives the shell until the user quits.
func Run(services *application.Services, log *slog.Logger) error {
	_, err := tea.NewProgram(New(services, log), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadStatsCmd(),
		m.loadCustomersCmd(),
		m.loadInvoicesCmd(),
		m.loadSettingsCmd(),
		textinput.Blink,
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, m.updateKey(msg)
	default:
		return m, m.updateResult(msg)
	}
}

// updateKey routes a keystroke to the open dialog, or to the active
// view when no dialog is open.
func (m *Model) updateKey(msg tea.KeyMsg) tea.Cmd {
	switch m.dialog {
	case dialogCustomer:
		return m.updateCustomerDialog(msg)
	case dialogInvoice:
		return m.updateInvoiceDialog(msg)
	case dialogSettings:
		return m.updateSettingsDialog(msg)
	case dialogPayment:
		return m.updatePaymentDialog(msg)
	case dialogConfirm:
		return m.updateConfirm(msg)
	case dialogStatus:
		return m.updateStatusPicker(msg)
	case dialogDetail:
		return m.updateDetail(msg)
	}

	switch m.view {
	case viewCustomers:
		return m.updateCustomersView(msg)
	case viewInvoices:
		return m.updateInvoicesView(msg)
	default:
		return m.updateDashboardView(msg)
	}
}

// updateResult applies command completions to the model.
func (m *Model) updateResult(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		if msg.gen != m.gen.customers {
			return nil
		}
		m.loading.customers = false
		if msg.err != nil {
			m.fail("load customers", msg.err)
			return nil
		}
		m.customers = msg.customers
		m.clampCursors()
	case invoicesLoadedMsg:
		if msg.gen != m.gen.invoices {
			return nil
		}
		m.loading.invoices = false
		if msg.err != nil {
			m.fail("load invoices", msg.err)
			return nil
		}
		m.invoices = msg.invoices
		m.clampCursors()
	case statsLoadedMsg:
		if msg.gen != m.gen.stats {
			return nil
		}
		m.loading.stats = false
		if msg.err != nil {
			m.fail("load dashboard", msg.err)
			return nil
		}
		m.stats = msg.stats
		m.recent = msg.recent
	case settingsLoadedMsg:
		if msg.gen != m.gen.settings {
			return nil
		}
		if msg.err != nil {
			m.fail("load settings", msg.err)
			return nil
		}
		m.settings = msg.settings
	case paymentsLoadedMsg:
		if m.detail == nil || m.detail.invoice.ID != msg.invoiceID {
			return nil
		}
		m.detail.paymentsLoaded = true
		if msg.err != nil {
			m.fail("load payments", msg.err)
			return nil
		}
		m.detail.payments = msg.payments

	case customerSavedMsg:
		m.closeDialog()
		m.info(fmt.Sprintf("Saved customer %s", msg.customer.Name))
		return m.loadCustomersCmd()
	case invoiceSavedMsg:
		m.closeDialog()
		label := msg.invoice.Number
		if label == "" {
			label = "invoice"
		}
		m.info(fmt.Sprintf("Saved %s", label))
		return tea.Batch(m.loadInvoicesCmd(), m.loadStatsCmd())
	case settingsSavedMsg:
		m.closeDialog()
		m.settings = msg.settings
		m.info("Company settings saved")
		return m.loadSettingsCmd()
	case recordDeletedMsg:
		m.closeDialog()
		m.info(fmt.Sprintf("Deleted %s %s", msg.kind, msg.label))
		if msg.kind == "invoice" {
			return tea.Batch(m.loadInvoicesCmd(), m.loadStatsCmd())
		}
		return m.loadCustomersCmd()
	case statusUpdatedMsg:
		m.closeDialog()
		m.info(fmt.Sprintf("Status set to %s", msg.status))
		return tea.Batch(m.loadInvoicesCmd(), m.loadStatsCmd())
	case paymentRecordedMsg:
		m.closeDialog()
		m.info("Payment recorded")
		return tea.Batch(m.loadInvoicesCmd(), m.loadStatsCmd())
	case invoiceExportedMsg:
		m.info(fmt.Sprintf("Exported to %s", msg.path))
	case mutationFailedMsg:
		m.fail(msg.op, msg.err)
		if m.dialog == dialogCustomer && m.customerForm != nil {
			m.customerForm.saving = false
		}
		if m.dialog == dialogInvoice && m.invoiceForm != nil {
			m.invoiceForm.saving = false
		}
		if m.dialog == dialogSettings && m.settingsForm != nil {
			m.settingsForm.saving = false
		}
		if m.dialog == dialogPayment && m.paymentForm != nil {
			m.paymentForm.saving = false
		}
	}
	return nil
}

func (m *Model) closeDialog() {
	m.dialog = dialogNone
	m.customerForm = nil
	m.invoiceForm = nil
	m.settingsForm = nil
	m.paymentForm = nil
	m.confirm = nil
	m.statusPicker = nil
	m.detail = nil
}

func (m *Model) info(text string) {
	m.banner = banner{text: text}
}

func (m *Model) fail(op string, err error) {
	m.banner = banner{text: fmt.Sprintf("%s: %v", op, err), isErr: true}
	if m.log != nil {
		m.log.Error("operation failed", "op", op, "error", err)
	}
}

// visibleCustomers applies the live filter without mutating the
// canonical slice.
func (m *Model) visibleCustomers() []domain.Customer {
	return domain.FilterCustomers(m.customers, m.customerFilter.Value())
}

func (m *Model) visibleInvoices() []domain.Invoice {
	return domain.FilterInvoices(m.invoices, m.invoiceFilter.Value())
}

func (m *Model) clampCursors() {
	if n := len(m.visibleCustomers()); m.customerCursor >= n {
		m.customerCursor = n - 1
	}
	if m.customerCursor < 0 {
		m.customerCursor = 0
	}
	if n := len(m.visibleInvoices()); m.invoiceCursor >= n {
		m.invoiceCursor = n - 1
	}
	if m.invoiceCursor < 0 {
		m.invoiceCursor = 0
	}
}

func (m *Model) selectedCustomer() (domain.Customer, bool) {
	visible := m.visibleCustomers()
	if m.customerCursor < 0 || m.customerCursor >= len(visible) {
		return domain.Customer{}, false
	}
	return visible[m.customerCursor], true
}

func (m *Model) selectedInvoice() (domain.Invoice, bool) {
	visible := m.visibleInvoices()
	if m.invoiceCursor < 0 || m.invoiceCursor >= len(visible) {
		return domain.Invoice{}, false
	}
	return visible[m.invoiceCursor], true
}
