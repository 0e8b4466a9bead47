package domain

// Customer represents a billing customer as stored by the API.
// Server-managed timestamps are omitted; the client never displays
// them and the API regenerates them on write.
type Customer struct {
	ID        string `json:"customer_id,omitempty"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	Country   string `json:"country,omitempty"`
	TaxNumber string `json:"tax_number,omitempty"`
}

// IsNew reports whether the customer has not yet been persisted.
// Saving a new customer issues a create; saving an existing one
// issues an update against its identifier.
func (c Customer) IsNew() bool { return c.ID == "" }

// NewCustomerDraft returns an empty customer ready for the editor.
func NewCustomerDraft() Customer { return Customer{} }

// Validate checks the draft and returns a field-keyed map of
// human-readable problems. An empty map means the draft is saveable.
func (c Customer) Validate() map[string]string {
	return validateStruct(c)
}
