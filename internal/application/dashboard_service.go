package application

import (
	"context"

	"github.com/facturo/facturo/internal/domain"
)

// DashboardService reads the aggregate views the API computes.
type DashboardService struct {
	api domain.DashboardAPI
}

func NewDashboardService(api domain.DashboardAPI) *DashboardService {
	return &DashboardService{api: api}
}

func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	return s.api.GetStats(ctx)
}

func (s *DashboardService) RecentInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.api.GetRecentInvoices(ctx)
}

// Ping reports whether the API is reachable.
func (s *DashboardService) Ping(ctx context.Context) error {
	return s.api.Health(ctx)
}
