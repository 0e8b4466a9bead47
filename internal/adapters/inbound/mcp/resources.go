package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/facturo/facturo/internal/application"
)

// registerResources registers all Facturo MCP resources on the given server.
func registerResources(s *server.MCPServer, services *application.Services) {
	// 1. facturo://stats - dashboard statistics
	s.AddResource(
		mcplib.NewResource(
			"facturo://stats",
			"Dashboard Stats",
			mcplib.WithResourceDescription("Revenue, outstanding amounts, and per-status invoice counts"),
			mcplib.WithMIMEType("application/json"),
		),
		handleStatsResource(services),
	)

	// 2. facturo://settings - company settings
	s.AddResource(
		mcplib.NewResource(
			"facturo://settings",
			"Company Settings",
			mcplib.WithResourceDescription("The company profile and invoicing defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSettingsResource(services),
	)

	// 3. facturo://customers - customer list
	s.AddResource(
		mcplib.NewResource(
			"facturo://customers",
			"Customers",
			mcplib.WithResourceDescription("All customers"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCustomersResource(services),
	)

	// 4. facturo://invoices/{ref} - one invoice by id or number
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"facturo://invoices/{ref}",
			"Invoice",
			mcplib.WithTemplateDescription("One invoice, addressed by id or invoice number"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleInvoiceResource(services),
	)
}

func handleStatsResource(services *application.Services) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		stats, err := services.Dashboard.Stats(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading stats: %w", err)
		}
		return jsonResource("facturo://stats", stats)
	}
}

func handleSettingsResource(services *application.Services) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		settings, err := services.Settings.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		return jsonResource("facturo://settings", settings)
	}
}

func handleCustomersResource(services *application.Services) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		customers, err := services.Customers.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing customers: %w", err)
		}
		return jsonResource("facturo://customers", customers)
	}
}

func handleInvoiceResource(services *application.Services) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		ref, ok := request.Params.Arguments["ref"].(string)
		if !ok || ref == "" {
			return nil, fmt.Errorf("invoice reference is required")
		}
		invoice, err := services.Invoices.Resolve(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("resolving invoice %q: %w", ref, err)
		}
		return jsonResource(request.Params.URI, invoice)
	}
}

func jsonResource(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
