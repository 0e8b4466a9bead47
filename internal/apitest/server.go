// Package apitest runs an in-memory billing API for tests. It mirrors
// the production API's routes, payloads and quirks: documents are
// schemaless maps, list endpoints join customer names, totals are
// recomputed on every invoice write, and errors carry {"detail": ...}.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Request is one recorded API call.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Server is the fake API plus its backing store. All methods are safe
// for concurrent use.
type Server struct {
	mu        sync.Mutex
	customers []map[string]any
	invoices  []map[string]any
	payments  []map[string]any
	settings  map[string]any
	requests  []Request

	failStatus int
	failDetail string

	now func() time.Time

	httpServer *httptest.Server
}

// New starts the fake API. Callers own the returned server and must
// Close it.
func New() *Server {
	s := &Server{
		now: time.Now,
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.injectFailure)

	r.Get("/api/health", s.health)

	r.Route("/api/customers", func(r chi.Router) {
		r.Get("/", s.listCustomers)
		r.Post("/", s.createCustomer)
		r.Get("/{id}", s.getCustomer)
		r.Put("/{id}", s.updateCustomer)
		r.Delete("/{id}", s.deleteCustomer)
	})

	r.Route("/api/invoices", func(r chi.Router) {
		r.Get("/", s.listInvoices)
		r.Post("/", s.createInvoice)
		r.Get("/{id}", s.getInvoice)
		r.Put("/{id}", s.updateInvoice)
		r.Delete("/{id}", s.deleteInvoice)
		r.Put("/{id}/status", s.updateInvoiceStatus)
		r.Get("/{id}/pdf", s.invoicePDF)
	})

	r.Get("/api/company-settings", s.getSettings)
	r.Post("/api/company-settings", s.saveSettings)

	r.Post("/api/payments", s.createPayment)
	r.Get("/api/payments/invoice/{id}", s.listInvoicePayments)

	r.Get("/api/dashboard/stats", s.dashboardStats)
	r.Get("/api/dashboard/recent-invoices", s.recentInvoices)

	s.httpServer = httptest.NewServer(r)
	return s
}

// URL returns the base URL clients should point at.
func (s *Server) URL() string { return s.httpServer.URL }

func (s *Server) Close() { s.httpServer.Close() }

// SetNow overrides the clock used for generated invoice numbers.
func (s *Server) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// FailNext makes the next API call fail with the given status and
// detail, then resumes normal behavior.
func (s *Server) FailNext(status int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
	s.failDetail = detail
}

// Requests returns every call recorded so far, oldest first.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent call, if any.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// ResetRequests clears the recorded call log, keeping the data.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// record captures method, path and body of every call.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// injectFailure serves the one-shot failure armed by FailNext.
func (s *Server) injectFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, detail := s.failStatus, s.failDetail
		s.failStatus, s.failDetail = 0, ""
		s.mu.Unlock()
		if status != 0 {
			writeJSON(w, status, map[string]any{"detail": detail})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SeedCustomer inserts a customer document directly, assigning an id
// when absent, and returns the id.
func (s *Server) SeedCustomer(doc map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc = cloneDoc(doc)
	id, _ := doc["customer_id"].(string)
	if id == "" {
		id = uuid.NewString()
		doc["customer_id"] = id
	}
	s.customers = append(s.customers, doc)
	return id
}

// SeedInvoice inserts an invoice document directly, assigning an id
// and number when absent and computing totals, and returns the id.
func (s *Server) SeedInvoice(doc map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc = cloneDoc(doc)
	id, _ := doc["invoice_id"].(string)
	if id == "" {
		id = uuid.NewString()
		doc["invoice_id"] = id
	}
	if num, _ := doc["invoice_number"].(string); num == "" {
		doc["invoice_number"] = "INV-" + s.now().Format("20060102150405")
	}
	applyTotals(doc)
	s.invoices = append(s.invoices, doc)
	return id
}

// SeedSettings replaces the stored company settings document.
func (s *Server) SeedSettings(doc map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = cloneDoc(doc)
}

// CustomerCount reports how many customers are stored.
func (s *Server) CustomerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers)
}

// InvoiceCount reports how many invoices are stored.
func (s *Server) InvoiceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.invoices)
}

// Invoice returns a copy of the stored invoice document, if present.
func (s *Server) Invoice(id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.invoices {
		if doc["invoice_id"] == id {
			return cloneDoc(doc), true
		}
	}
	return nil, false
}

// Customer returns a copy of the stored customer document, if present.
func (s *Server) Customer(id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.customers {
		if doc["customer_id"] == id {
			return cloneDoc(doc), true
		}
	}
	return nil, false
}

func cloneDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
