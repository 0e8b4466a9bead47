package domain

import (
	"strings"
)

// MatchesQuery reports whether the customer matches a case-insensitive
// substring search across name, email and company. A blank query
// matches everything.
func (c Customer) MatchesQuery(query string) bool {
	q := normalizeQuery(query)
	if q == "" {
		return true
	}
	return containsFold(c.Name, q) ||
		containsFold(c.Email, q) ||
		containsFold(c.Company, q)
}

// MatchesQuery reports whether the invoice matches a case-insensitive
// substring search across invoice number, customer name and status.
func (inv Invoice) MatchesQuery(query string) bool {
	q := normalizeQuery(query)
	if q == "" {
		return true
	}
	return containsFold(inv.Number, q) ||
		containsFold(inv.CustomerName, q) ||
		containsFold(string(inv.Status), q)
}

// FilterCustomers returns the customers matching the query, keeping
// the original order. Filtering is a pure view concern; the full
// collection stays untouched so clearing the query restores it.
func FilterCustomers(customers []Customer, query string) []Customer {
	if normalizeQuery(query) == "" {
		return customers
	}
	matched := make([]Customer, 0, len(customers))
	for _, c := range customers {
		if c.MatchesQuery(query) {
			matched = append(matched, c)
		}
	}
	return matched
}

// FilterInvoices returns the invoices matching the query, keeping the
// original order.
func FilterInvoices(invoices []Invoice, query string) []Invoice {
	if normalizeQuery(query) == "" {
		return invoices
	}
	matched := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.MatchesQuery(query) {
			matched = append(matched, inv)
		}
	}
	return matched
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}
