package cli_test

import (
	"bytes"
	"testing"

	"github.com/facturo/facturo/internal/adapters/inbound/cli"
	"github.com/facturo/facturo/internal/apitest"
)

// startAPI points the CLI at a fresh fake billing API for the duration
// of the test.
func startAPI(t *testing.T) *apitest.Server {
	t.Helper()
	srv := apitest.New()
	t.Cleanup(srv.Close)
	t.Setenv("FACTURO_API_URL", srv.URL())
	return srv
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedSentInvoice(t *testing.T, srv *apitest.Server) (customerID, invoiceID string) {
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
