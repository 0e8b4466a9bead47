package apitest

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.customers))
	for _, doc := range s.customers {
		out = append(out, cloneDoc(doc))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeDoc(w, r)
	if !ok {
		return
	}
	if id, _ := doc["customer_id"].(string); id == "" {
		doc["customer_id"] = uuid.NewString()
	}
	s.mu.Lock()
	s.customers = append(s.customers, doc)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Customer created successfully",
		"customer_id": doc["customer_id"],
	})
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.findCustomer(chi.URLParam(r, "id"))
	if doc == nil {
		notFound(w, "Customer not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) updateCustomer(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeDoc(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	doc["customer_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.customers {
		if existing["customer_id"] == id {
			s.customers[i] = doc
			writeJSON(w, http.StatusOK, map[string]any{"message": "Customer updated successfully"})
			return
		}
	}
	notFound(w, "Customer not found")
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.customers {
		if existing["customer_id"] == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{"message": "Customer deleted successfully"})
			return
		}
	}
	notFound(w, "Customer not found")
}

func (s *Server) listInvoices(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.invoices))
	for _, doc := range s.invoices {
		joined := cloneDoc(doc)
		joined["customer_name"] = s.customerName(doc)
		out = append(out, joined)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createInvoice(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeDoc(w, r)
	if !ok {
		return
	}
	if id, _ := doc["invoice_id"].(string); id == "" {
		doc["invoice_id"] = uuid.NewString()
	}

	s.mu.Lock()
	if num, _ := doc["invoice_number"].(string); num == "" {
		doc["invoice_number"] = "INV-" + s.now().Format("20060102150405")
	}
	if status, _ := doc["status"].(string); status == "" {
		doc["status"] = "draft"
	}
	if ps, _ := doc["payment_status"].(string); ps == "" {
		doc["payment_status"] = "pending"
	}
	if _, present := doc["amount_paid"]; !present {
		doc["amount_paid"] = 0.0
	}
	applyTotals(doc)
	s.invoices = append(s.invoices, doc)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Invoice created successfully",
		"invoice_id": doc["invoice_id"],
	})
}

func (s *Server) getInvoice(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.findInvoice(chi.URLParam(r, "id"))
	if doc == nil {
		notFound(w, "Invoice not found")
		return
	}
	joined := cloneDoc(doc)
	customerID, _ := doc["customer_id"].(string)
	if customer := s.findCustomer(customerID); customer != nil {
		joined["customer"] = customer
	} else {
		joined["customer"] = nil
	}
	writeJSON(w, http.StatusOK, joined)
}

func (s *Server) updateInvoice(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeDoc(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	doc["invoice_id"] = id
	applyTotals(doc)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.invoices {
		if existing["invoice_id"] == id {
			s.invoices[i] = doc
			writeJSON(w, http.StatusOK, map[string]any{"message": "Invoice updated successfully"})
			return
		}
	}
	notFound(w, "Invoice not found")
}

func (s *Server) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.invoices {
		if existing["invoice_id"] == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{"message": "Invoice deleted successfully"})
			return
		}
	}
	notFound(w, "Invoice not found")
}

func (s *Server) updateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeDoc(w, r)
	if !ok {
		return
	}
	status, _ := doc["status"].(string)
	if status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "status is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	invoice := s.findInvoice(chi.URLParam(r, "id"))
	if invoice == nil {
		notFound(w, "Invoice not found")
		return
	}
	invoice["status"] = status
	writeJSON(w, http.StatusOK, map[string]any{"message": "Invoice status updated successfully"})
}

func (s *Server) invoicePDF(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	invoice := s.findInvoice(chi.URLParam(r, "id"))
	if invoice == nil {
		s.mu.Unlock()
		notFound(w, "Invoice not found")
		return
	}
	customerID, _ := invoice["customer_id"].(string)
	customer := s.findCustomer(customerID)
	number, _ := invoice["invoice_number"].(string)
	s.mu.Unlock()

	if customer == nil {
		notFound(w, "Customer not found")
		return
	}

	pdf := []byte("%PDF-1.4\n% invoice " + number + "\n%%EOF\n")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=invoice_`+number+`.pdf`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"company_name": "", "address": "", "city": "", "state": "",
			"zip_code": "", "country": "", "phone": "", "email": "",
			"website": "", "tax_number": "", "logo": "",
			"default_tax_rate":      0.0,
			"default_payment_terms": "Net 30",
			"currency":              "USD",
		})
		return
	}
	writeJSON(w, http.StatusOK, s.settings)
}

func (s *Server) saveSettings(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeDoc(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	s.settings = doc
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"message": "Company settings updated successfully"})
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeDoc(w, r)
	if !ok {
		return
	}
	if id, _ := doc["payment_id"].(string); id == "" {
		doc["payment_id"] = uuid.NewString()
	}

	s.mu.Lock()
	s.payments = append(s.payments, doc)
	invoiceID, _ := doc["invoice_id"].(string)
	if invoice := s.findInvoice(invoiceID); invoice != nil {
		totalPaid := num(invoice["amount_paid"]) + num(doc["amount"])
		invoice["amount_paid"] = round2(totalPaid)
		if totalPaid >= num(invoice["total_amount"]) {
			invoice["payment_status"] = "paid"
		} else {
			invoice["payment_status"] = "partial"
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Payment recorded successfully",
		"payment_id": doc["payment_id"],
	})
}

func (s *Server) listInvoicePayments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0)
	for _, doc := range s.payments {
		if doc["invoice_id"] == id {
			out = append(out, cloneDoc(doc))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) dashboardStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int{}
	amounts := map[string]float64{}
	for _, doc := range s.invoices {
		status, _ := doc["status"].(string)
		counts[status]++
		amounts[status] += num(doc["total_amount"])
	}

	paid := round2(amounts["paid"])
	pending := round2(amounts["sent"])
	overdue := round2(amounts["overdue"])

	writeJSON(w, http.StatusOK, map[string]any{
		"total_customers": len(s.customers),
		"total_invoices":  len(s.invoices),
		"total_revenue":   round2(paid + pending + overdue),
		"pending_amount":  pending,
		"overdue_amount":  overdue,
		"paid_amount":     paid,
		"draft_count":     counts["draft"],
		"sent_count":      counts["sent"],
		"paid_count":      counts["paid"],
		"overdue_count":   counts["overdue"],
	})
}

func (s *Server) recentInvoices(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, 10)
	for i := len(s.invoices) - 1; i >= 0 && len(out) < 10; i-- {
		doc := s.invoices[i]
		joined := cloneDoc(doc)
		joined["customer_name"] = s.customerName(doc)
		out = append(out, joined)
	}
	writeJSON(w, http.StatusOK, out)
}

// findCustomer and findInvoice return the live document; callers hold
// the lock and clone before responding.
func (s *Server) findCustomer(id string) map[string]any {
	for _, doc := range s.customers {
		if doc["customer_id"] == id {
			return doc
		}
	}
	return nil
}

func (s *Server) findInvoice(id string) map[string]any {
	for _, doc := range s.invoices {
		if doc["invoice_id"] == id {
			return doc
		}
	}
	return nil
}

func (s *Server) customerName(invoice map[string]any) string {
	customerID, _ := invoice["customer_id"].(string)
	if customer := s.findCustomer(customerID); customer != nil {
		if name, _ := customer["name"].(string); name != "" {
			return name
		}
	}
	return "Unknown Customer"
}

func decodeDoc(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": "invalid request body"})
		return nil, false
	}
	return doc, true
}

func notFound(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusNotFound, map[string]any{"detail": detail})
}

// applyTotals recomputes line and invoice totals the way the API
// does: per-line subtotal plus tax, everything rounded to cents.
func applyTotals(doc map[string]any) {
	items, _ := doc["line_items"].([]any)
	var subtotal, tax float64
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		lineSub := num(item["quantity"]) * num(item["unit_price"])
		lineTax := lineSub * num(item["tax_rate"]) / 100
		item["total"] = round2(lineSub + lineTax)
		subtotal += lineSub
		tax += lineTax
	}
	doc["subtotal"] = round2(subtotal)
	doc["tax_amount"] = round2(tax)
	doc["total_amount"] = round2(subtotal + tax)
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
