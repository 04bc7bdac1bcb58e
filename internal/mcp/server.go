package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"fredhub",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"get_series": mcp.NewTool("get_series",
			mcp.WithDescription("Retrieve observations from a FRED series. Returns time series data as (date, value) pairs in ascending date order. Common series IDs: FEDFUNDS (Fed Funds Rate), GDP (Gross Domestic Product), CPIAUCSL (CPI Inflation), UNRATE (Unemployment Rate), WALCL (Fed Balance Sheet)."),
			mcp.WithString("series_id",
				mcp.Required(),
				mcp.Description("FRED series identifier (e.g., FEDFUNDS, GDP, CPIAUCSL)"),
			),
			mcp.WithString("start_date",
				mcp.Description("Start date in YYYY-MM-DD format"),
			),
			mcp.WithString("end_date",
				mcp.Description("End date in YYYY-MM-DD format"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of observations to return (default: 100)"),
			),
		),
		"get_series_info": mcp.NewTool("get_series_info",
			mcp.WithDescription("Get information about a FRED series including title, frequency, units, seasonal adjustment, and notes."),
			mcp.WithString("series_id",
				mcp.Required(),
				mcp.Description("FRED series identifier"),
			),
		),
	}

	for name, adapter := range cfg.Router.Handlers() {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio serves the MCP protocol over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
