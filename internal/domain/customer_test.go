package domain_test

import (
	"testing"

	"github.com/facturo/facturo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCustomer_IsNew(t *testing.T) {
	assert.True(t, domain.NewCustomerDraft().IsNew())
	assert.False(t, domain.Customer{ID: "c-1"}.IsNew())
}

func TestCustomer_Validate(t *testing.T) {
	problems := domain.Customer{}.Validate()
	assert.Equal(t, "this field is required", problems["name"])
	assert.Equal(t, "this field is required", problems["email"])

	problems = domain.Customer{Name: "Acme Corp", Email: "not-an-email"}.Validate()
	assert.Equal(t, "must be a valid email address", problems["email"])
	assert.NotContains(t, problems, "name")

	problems = domain.Customer{Name: "Acme Corp", Email: "billing@acme.com"}.Validate()
	assert.Empty(t, problems)
}
