package shell

import (
	"encoding/json"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/facturo/facturo/internal/adapters/outbound/download"
	"github.com/facturo/facturo/internal/adapters/outbound/rest"
	"github.com/facturo/facturo/internal/apitest"
	"github.com/facturo/facturo/internal/application"
)

func newTestModel(t *testing.T) (*apitest.Server, *Model) {
	t.Helper()
	return newTestModelWithDir(t, t.TempDir())
}

func newTestModelWithDir(t *testing.T, dir string) (*apitest.Server, *Model) {
	t.Helper()
	srv := apitest.New()
	t.Cleanup(srv.Close)
	client := rest.NewClient(srv.URL(), 5*time.Second, nil)
	services := application.NewServices(client, download.NewWriter(dir))
	return srv, New(services, nil)
}

// drain runs a command tree synchronously, feeding every message back
// into the model the way the Bubble Tea runtime would.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(t, m, c)
		}
		return
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		return
	}
	_, next := m.Update(msg)
	drain(t, m, next)
}

func loadAll(t *testing.T, m *Model) {
	t.Helper()
	drain(t, m, m.Init())
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// press sends keystrokes and returns the last command they produced.
func press(m *Model, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, key := range keys {
		_, last = m.Update(keyMsg(key))
	}
	return last
}

func setField(t *testing.T, f *form, key, value string) {
	t.Helper()
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].input.SetValue(value)
			return
		}
	}
	t.Fatalf("form has no field %q", key)
}

func seedInvoiceFixture(t *testing.T, srv *apitest.Server) (customerID, invoiceID string) {
	t.Helper()
	customerID = srv.SeedCustomer(map[string]any{"name": "Acme Corp", "email": "billing@acme.test"})
	invoiceID = srv.SeedInvoice(map[string]any{
		"customer_id":    customerID,
		"invoice_number": "INV-20250601120000",
		"status":         "sent",
		"issue_date":     "2025-06-01",
		"due_date":       "2025-07-01",
		"line_items": []any{
			map[string]any{"description": "Consulting", "quantity": 10, "unit_price": 100, "tax_rate": 0},
		},
	})
	return customerID, invoiceID
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(body, &doc))
	return doc
}

// findRequest returns the first recorded request matching method+path.
func findRequest(t *testing.T, srv *apitest.Server, method, path string) apitest.Request {
	t.Helper()
	for _, req := range srv.Requests() {
		if req.Method == method && req.Path == path {
			return req
		}
	}
	t.Fatalf("no %s %s among %d recorded requests", method, path, len(srv.Requests()))
	return apitest.Request{}
}
