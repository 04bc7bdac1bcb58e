package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/macrodata/fredhub/internal/fred"
)

type MetadataService interface {
	FetchMetadata(ctx context.Context, req fred.SeriesInfoRequest) (fred.SeriesMetadata, error)
}

type GetSeriesInfoHandler struct {
	Service MetadataService
}

func (h *GetSeriesInfoHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seriesID, verr := seriesIDArgument(req.GetArguments())
	if verr != nil {
		return classifiedError(verr), nil
	}

	metadata, err := h.Service.FetchMetadata(ctx, fred.SeriesInfoRequest{SeriesID: seriesID})
	if err != nil {
		return classifiedError(err), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(metadata))), nil
}
