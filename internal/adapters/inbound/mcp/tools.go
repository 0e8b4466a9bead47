package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/facturo/facturo/internal/application"
	"github.com/facturo/facturo/internal/domain"
)

// registerTools registers all Facturo MCP tools on the given server.
func registerTools(s *server.MCPServer, services *application.Services) {
	// 1. facturo_list_customers
	s.AddTool(
		mcplib.NewTool("facturo_list_customers",
			mcplib.WithDescription("List customers as JSON, optionally narrowed by a case-insensitive name/email/company filter"),
			mcplib.WithString("query", mcplib.Description("Filter text (optional)")),
		),
		handleListCustomers(services),
	)

	// 2. facturo_create_customer
	s.AddTool(
		mcplib.NewTool("facturo_create_customer",
			mcplib.WithDescription("Create a customer. Returns the stored record with its assigned id."),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Customer name")),
			mcplib.WithString("email", mcplib.Required(), mcplib.Description("Billing email")),
			mcplib.WithString("phone", mcplib.Description("Phone number")),
			mcplib.WithString("company", mcplib.Description("Company name")),
			mcplib.WithString("address", mcplib.Description("Street address")),
			mcplib.WithString("city", mcplib.Description("City")),
			mcplib.WithString("state", mcplib.Description("State or region")),
			mcplib.WithString("zip_code", mcplib.Description("Postal code")),
			mcplib.WithString("country", mcplib.Description("Country")),
			mcplib.WithString("tax_number", mcplib.Description("Tax or VAT number")),
		),
		handleCreateCustomer(services),
	)

	// 3. facturo_list_invoices
	s.AddTool(
		mcplib.NewTool("facturo_list_invoices",
			mcplib.WithDescription("List invoices as JSON, optionally narrowed by a case-insensitive number/customer/status filter"),
			mcplib.WithString("query", mcplib.Description("Filter text (optional)")),
		),
		handleListInvoices(services),
	)

	// 4. facturo_update_invoice_status
	s.AddTool(
		mcplib.NewTool("facturo_update_invoice_status",
			mcplib.WithDescription("Set an invoice's status (draft, sent, paid, overdue, cancelled)"),
			mcplib.WithString("invoice", mcplib.Required(), mcplib.Description("Invoice id or invoice number")),
			mcplib.WithString("status", mcplib.Required(), mcplib.Description("New status")),
		),
		handleUpdateStatus(services),
	)

	// 5. facturo_dashboard_stats
	s.AddTool(
		mcplib.NewTool("facturo_dashboard_stats",
			mcplib.WithDescription("Returns the dashboard statistics (revenue, outstanding amounts, per-status counts) as JSON"),
		),
		handleStats(services),
	)

	// 6. facturo_export_invoice
	s.AddTool(
		mcplib.NewTool("facturo_export_invoice",
			mcplib.WithDescription("Download an invoice PDF to the configured download directory and return the file path"),
			mcplib.WithString("invoice", mcplib.Required(), mcplib.Description("Invoice id or invoice number")),
		),
		handleExportInvoice(services),
	)

	// 7. facturo_get_settings
	s.AddTool(
		mcplib.NewTool("facturo_get_settings",
			mcplib.WithDescription("Returns the company settings as JSON"),
		),
		handleGetSettings(services),
	)

	// 8. facturo_save_settings
	s.AddTool(
		mcplib.NewTool("facturo_save_settings",
			mcplib.WithDescription("Update the company settings. Unspecified fields keep their current values."),
			mcplib.WithString("company_name", mcplib.Description("Company name")),
			mcplib.WithString("address", mcplib.Description("Street address")),
			mcplib.WithString("city", mcplib.Description("City")),
			mcplib.WithString("state", mcplib.Description("State or region")),
			mcplib.WithString("zip_code", mcplib.Description("Postal code")),
			mcplib.WithString("country", mcplib.Description("Country")),
			mcplib.WithString("phone", mcplib.Description("Phone number")),
			mcplib.WithString("email", mcplib.Description("Contact email")),
			mcplib.WithString("website", mcplib.Description("Website URL")),
			mcplib.WithString("tax_number", mcplib.Description("Tax or VAT number")),
			mcplib.WithString("default_tax_rate", mcplib.Description("Default tax rate percent, e.g. \"19\"")),
			mcplib.WithString("default_payment_terms", mcplib.Description("Default payment terms, e.g. \"Net 30\"")),
			mcplib.WithString("currency", mcplib.Description("ISO currency code, e.g. \"USD\"")),
		),
		handleSaveSettings(services),
	)
}

func handleListCustomers(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		customers, err := services.Customers.List(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("listing customers failed: %v", err)), nil
		}
		query, _ := request.GetArguments()["query"].(string)
		return jsonResult(domain.FilterCustomers(customers, query))
	}
}

func handleCreateCustomer(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		email, err := request.RequireString("email")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		str := func(key string) string {
			v, _ := args[key].(string)
			return v
		}
		draft := domain.Customer{
			Name:      name,
			Email:     email,
			Phone:     str("phone"),
			Company:   str("company"),
			Address:   str("address"),
			City:      str("city"),
			State:     str("state"),
			ZipCode:   str("zip_code"),
			Country:   str("country"),
			TaxNumber: str("tax_number"),
		}

		saved, err := services.Customers.Save(ctx, draft)
		if err != nil {
			return errorResult(fmt.Sprintf("creating customer failed: %v", err)), nil
		}
		return jsonResult(saved)
	}
}

func handleListInvoices(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		invoices, err := services.Invoices.List(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("listing invoices failed: %v", err)), nil
		}
		query, _ := request.GetArguments()["query"].(string)
		return jsonResult(domain.FilterInvoices(invoices, query))
	}
}

func handleUpdateStatus(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		ref, err := request.RequireString("invoice")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rawStatus, err := request.RequireString("status")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		status := domain.InvoiceStatus(rawStatus)
		if !status.Valid() {
			return errorResult(fmt.Sprintf("invalid status %q", rawStatus)), nil
		}

		invoice, err := services.Invoices.Resolve(ctx, ref)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving invoice failed: %v", err)), nil
		}
		if err := services.Invoices.UpdateStatus(ctx, invoice.ID, status); err != nil {
			return errorResult(fmt.Sprintf("updating status failed: %v", err)), nil
		}
		return textResult(fmt.Sprintf("invoice %s status set to %s", ref, status)), nil
	}
}

func handleStats(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		stats, err := services.Dashboard.Stats(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("loading stats failed: %v", err)), nil
		}
		return jsonResult(stats)
	}
}

func handleExportInvoice(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		ref, err := request.RequireString("invoice")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		invoice, err := services.Invoices.Resolve(ctx, ref)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving invoice failed: %v", err)), nil
		}
		path, err := services.Invoices.ExportPDF(ctx, invoice.ID)
		if err != nil {
			return errorResult(fmt.Sprintf("export failed: %v", err)), nil
		}
		return textResult(path), nil
	}
}

func handleGetSettings(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		settings, err := services.Settings.Get(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("loading settings failed: %v", err)), nil
		}
		return jsonResult(settings)
	}
}

func handleSaveSettings(services *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		settings, err := services.Settings.Get(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("loading settings failed: %v", err)), nil
		}

		args := request.GetArguments()
		overlay := func(key string, dst *string) {
			if v, ok := args[key].(string); ok && v != "" {
				*dst = v
			}
		}
		overlay("company_name", &settings.CompanyName)
		overlay("address", &settings.Address)
		overlay("city", &settings.City)
		overlay("state", &settings.State)
		overlay("zip_code", &settings.ZipCode)
		overlay("country", &settings.Country)
		overlay("phone", &settings.Phone)
		overlay("email", &settings.Email)
		overlay("website", &settings.Website)
		overlay("tax_number", &settings.TaxNumber)
		overlay("default_payment_terms", &settings.DefaultPaymentTerms)
		overlay("currency", &settings.Currency)

		if raw, ok := args["default_tax_rate"].(string); ok && raw != "" {
			rate, err := decimal.NewFromString(raw)
			if err != nil {
				return errorResult(fmt.Sprintf("invalid default_tax_rate %q", raw)), nil
			}
			settings.DefaultTaxRate = rate
		}

		if problems := settings.Validate(); len(problems) > 0 {
			data, _ := json.Marshal(problems)
			return errorResult(fmt.Sprintf("settings are incomplete: %s", data)), nil
		}
		if err := services.Settings.Save(ctx, settings); err != nil {
			return errorResult(fmt.Sprintf("saving settings failed: %v", err)), nil
		}
		return jsonResult(settings)
	}
}

// jsonResult marshals v as indented JSON tool output.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
