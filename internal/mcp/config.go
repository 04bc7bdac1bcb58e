package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/macrodata/fredhub/internal/config"
	"github.com/macrodata/fredhub/internal/fred"
	"github.com/macrodata/fredhub/internal/logging"
	"github.com/macrodata/fredhub/internal/mcp/tools"
)

type Config struct {
	Router  *tools.Router
	Options []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.ForLevel(config.LogLevel())

	client, err := fred.NewClient(fred.Config{
		APIKey:  config.FredAPIKey(),
		BaseURL: config.FredBaseURL(),
		Timeout: config.FredHTTPTimeout(),
	}, logging.New(baseLogger.WithName("fred")))
	if err != nil {
		log.Fatalf("failed to init FRED client: %v", err)
	}

	router := tools.NewRouter(map[string]tools.ToolAdapter{
		"get_series":      &tools.GetSeriesHandler{Service: client, DefaultLimit: config.DefaultLimit()},
		"get_series_info": &tools.GetSeriesInfoHandler{Service: client},
	})

	return Config{
		Router: router,
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
