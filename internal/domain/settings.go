package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CompanySettings holds the issuing company's profile used on
// invoices, plus the defaults applied to new invoice drafts. The logo
// is carried as a data URI so it round-trips the API unchanged.
type CompanySettings struct {
	CompanyName         string          `json:"company_name" validate:"required"`
	Address             string          `json:"address" validate:"required"`
	City                string          `json:"city" validate:"required"`
	State               string          `json:"state" validate:"required"`
	ZipCode             string          `json:"zip_code" validate:"required"`
	Country             string          `json:"country" validate:"required"`
	Phone               string          `json:"phone,omitempty"`
	Email               string          `json:"email,omitempty" validate:"omitempty,email"`
	Website             string          `json:"website,omitempty"`
	TaxNumber           string          `json:"tax_number,omitempty"`
	Logo                string          `json:"logo,omitempty"`
	DefaultTaxRate      decimal.Decimal `json:"default_tax_rate"`
	DefaultPaymentTerms string          `json:"default_payment_terms"`
	Currency            string          `json:"currency"`
}

// DefaultCompanySettings mirrors what the API returns before any
// settings have been saved.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		DefaultPaymentTerms: "Net 30",
		Currency:            "USD",
	}
}

// PaymentTermDays extracts the day count from terms like "Net 30" or
// "Net 15". Terms without a number, such as "Due on receipt", mean
// payment is due immediately. Empty terms fall back to 30 days.
func (s CompanySettings) PaymentTermDays() int {
	terms := strings.TrimSpace(s.DefaultPaymentTerms)
	if terms == "" {
		return 30
	}
	for _, field := range strings.Fields(terms) {
		if days, err := strconv.Atoi(field); err == nil && days >= 0 {
			return days
		}
	}
	return 0
}

// Validate checks the draft and returns a field-keyed map of
// human-readable problems.
func (s CompanySettings) Validate() map[string]string {
	problems := validateStruct(s)
	if s.DefaultTaxRate.Sign() < 0 {
		problems["default_tax_rate"] = "must not be negative"
	}
	return problems
}
