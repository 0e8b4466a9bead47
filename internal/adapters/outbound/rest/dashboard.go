package rest

import (
	"context"
	"net/http"

	"github.com/facturo/facturo/internal/domain"
)

func (c *Client) GetStats(ctx context.Context) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := c.do(ctx, "get dashboard stats", http.MethodGet, "/api/dashboard/stats", nil, &stats)
	return stats, err
}

func (c *Client) GetRecentInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := c.do(ctx, "get recent invoices", http.MethodGet, "/api/dashboard/recent-invoices", nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// Health pings the API, reporting reachability before the shell
// starts loading collections.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, "health check", http.MethodGet, "/api/health", nil, nil)
}
