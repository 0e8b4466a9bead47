package rest

import (
	"context"
	"net/http"

	"github.com/facturo/facturo/internal/domain"
)

// GetSettings returns the company profile. Before anything has been
// saved the API answers with its built-in defaults.
func (c *Client) GetSettings(ctx context.Context) (domain.CompanySettings, error) {
	var settings domain.CompanySettings
	err := c.do(ctx, "get settings", http.MethodGet, "/api/company-settings", nil, &settings)
	return settings, err
}

// SaveSettings upserts the company profile.
func (c *Client) SaveSettings(ctx context.Context, settings domain.CompanySettings) error {
	return c.do(ctx, "save settings", http.MethodPost, "/api/company-settings", settings, nil)
}
