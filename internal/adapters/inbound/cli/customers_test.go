package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturo/facturo/internal/domain"
)

func TestCustomersCommand_JSON(t *testing.T) {
	srv := startAPI(t)
	srv.SeedCustomer(map[string]any{"name": "Acme Corp", "email": "billing@acme.test"})
	srv.SeedCustomer(map[string]any{"name": "Globex", "email": "ap@globex.test"})

	out, err := runCmd(t, "customers", "--json")
	require.NoError(t, err)

	var customers []domain.Customer
	require.NoError(t, json.Unmarshal([]byte(out), &customers))
	require.Len(t, customers, 2)
}

func TestCustomersCommand_FilterArg(t *testing.T) {
	srv := startAPI(t)
	srv.SeedCustomer(map[string]any{"name": "Acme Corp", "email": "billing@acme.test"})
	srv.SeedCustomer(map[string]any{"name": "Globex", "email": "ap@globex.test"})

	out, err := runCmd(t, "customers", "glob")
	require.NoError(t, err)
	assert.Contains(t, out, "Globex")
	assert.NotContains(t, out, "Acme Corp")
}

func TestCustomersCommand_Empty(t *testing.T) {
	startAPI(t)

	out, err := runCmd(t, "customers")
	require.NoError(t, err)
	assert.Contains(t, out, "No customers match.")
}

func TestCustomersCommand_APIDown(t *testing.T) {
	t.Setenv("FACTURO_API_URL", "http://127.0.0.1:1")

	_, err := runCmd(t, "customers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing customers")
}
