package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/macrodata/fredhub/internal/fred"
)

// ToolAdapter is implemented by every tool handler.
type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Router dispatches a named operation to its handler. Operation names
// outside the registered set fail with UnknownOperation rather than
// escaping unclassified.
type Router struct {
	handlers map[string]ToolAdapter
}

func NewRouter(handlers map[string]ToolAdapter) *Router {
	return &Router{handlers: handlers}
}

// Handlers returns the registered name-to-handler mapping.
func (r *Router) Handlers() map[string]ToolAdapter {
	return r.handlers
}

// Dispatch validates the operation name and forwards the call.
func (r *Router) Dispatch(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return toolError(fred.KindUnknownOperation, "unknown operation %q", name), nil
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return handler.ToolAdapter(ctx, req)
}
