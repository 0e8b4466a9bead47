package application

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/facturo/facturo/internal/domain"
)

// SettingsService coordinates the company profile and prepares logo
// files for upload.
type SettingsService struct {
	api domain.SettingsAPI
}

func NewSettingsService(api domain.SettingsAPI) *SettingsService {
	return &SettingsService{api: api}
}

func (s *SettingsService) Get(ctx context.Context) (domain.CompanySettings, error) {
	return s.api.GetSettings(ctx)
}

// Save validates and upserts the company profile.
func (s *SettingsService) Save(ctx context.Context, settings domain.CompanySettings) error {
	if problems := settings.Validate(); len(problems) > 0 {
		return &domain.ValidationError{Problems: problems}
	}
	return s.api.SaveSettings(ctx, settings)
}

var logoMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// LoadLogo reads an image file and encodes it as the data URI the API
// stores and later embeds into rendered invoices.
func LoadLogo(path string) (string, error) {
	mime, ok := logoMimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("unsupported logo format %q: use png, jpg or gif", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read logo: %w", err)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
