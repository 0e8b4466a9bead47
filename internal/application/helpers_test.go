package application_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/facturo/facturo/internal/adapters/outbound/download"
	"github.com/facturo/facturo/internal/adapters/outbound/rest"
	"github.com/facturo/facturo/internal/apitest"
	"github.com/facturo/facturo/internal/application"
)

func startServer(t *testing.T) *apitest.Server {
	t.Helper()
	srv := apitest.New()
	t.Cleanup(srv.Close)
	return srv
}

func servicesWithDownloadDir(t *testing.T, srv *apitest.Server, dir string) *application.Services {
	t.Helper()
	client := rest.NewClient(srv.URL(), 5*time.Second, nil)
	return application.NewServices(client, download.NewWriter(dir))
}

func newServices(t *testing.T) (*apitest.Server, *application.Services) {
	t.Helper()
	srv := startServer(t)
	return srv, servicesWithDownloadDir(t, srv, t.TempDir())
}

func seedInvoiceFixture(t *testing.T, srv *apitest.Server) (customerID, invoiceID string) {
	t.Helper()
	customerID = srv.SeedCustomer(map[string]any{"name": "Acme", "email": "a@a.com"})
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
