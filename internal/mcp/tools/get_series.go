package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/macrodata/fredhub/internal/fred"
)

type ObservationsService interface {
	FetchObservations(ctx context.Context, req fred.SeriesRequest) (fred.SeriesObservationsResult, error)
}

type GetSeriesHandler struct {
	Service      ObservationsService
	DefaultLimit int
}

func (h *GetSeriesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	seriesID, verr := seriesIDArgument(args)
	if verr != nil {
		return classifiedError(verr), nil
	}
	startDate, verr := dateArgument(args, "start_date")
	if verr != nil {
		return classifiedError(verr), nil
	}
	endDate, verr := dateArgument(args, "end_date")
	if verr != nil {
		return classifiedError(verr), nil
	}
	if startDate != "" && endDate != "" && startDate > endDate {
		return toolError(fred.KindInvalidDateRange,
			"start_date %s is after end_date %s", startDate, endDate), nil
	}
	limit, verr := limitArgument(args, h.DefaultLimit)
	if verr != nil {
		return classifiedError(verr), nil
	}

	result, err := h.Service.FetchObservations(ctx, fred.SeriesRequest{
		SeriesID:  seriesID,
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     limit,
	})
	if err != nil {
		return classifiedError(err), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
