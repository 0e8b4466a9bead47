package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturo/facturo/internal/domain"
)

func TestDashboardCommand_JSON(t *testing.T) {
	srv := startAPI(t)
	seedSentInvoice(t, srv)

	out, err := runCmd(t, "dashboard", "--json")
	require.NoError(t, err)

	var stats domain.DashboardStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalInvoices)
	assert.Equal(t, 1, stats.SentCount)
}

func TestDashboardCommand_Render(t *testing.T) {
	srv := startAPI(t)
	seedSentInvoice(t, srv)

	out, err := runCmd(t, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Revenue")
	assert.Contains(t, out, "Recent Invoices")
	assert.Contains(t, out, "INV-20250601120000")
}
