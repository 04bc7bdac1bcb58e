package tools

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/macrodata/fredhub/internal/fred"
)

const dateLayout = "2006-01-02"

type errorPayload struct {
	Error   fred.Kind `json:"error"`
	Message string    `json:"message"`
}

// toolError shapes a classified failure into the structured error payload
// returned to the calling channel.
func toolError(kind fred.Kind, format string, args ...any) *mcp.CallToolResult {
	err := fred.NewError(kind, format, args...)
	return mcp.NewToolResultError(string(mustMarshal(errorPayload{
		Error:   err.Kind,
		Message: err.Message,
	})))
}

// classifiedError shapes an adapter failure, preserving its kind.
func classifiedError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(string(mustMarshal(errorPayload{
		Error:   fred.KindOf(err),
		Message: fred.MessageOf(err),
	})))
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// seriesIDArgument extracts and trims the required series_id argument.
func seriesIDArgument(args map[string]any) (string, *fred.Error) {
	raw, _ := args["series_id"].(string)
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", fred.NewError(fred.KindMissingParameter, "series_id is required")
	}
	return id, nil
}

// dateArgument validates an optional ISO 8601 date argument.
func dateArgument(args map[string]any, name string) (string, *fred.Error) {
	raw, present := args[name]
	if !present || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fred.NewError(fred.KindInvalidDateFormat,
			"%s must be a YYYY-MM-DD date string", name)
	}
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fred.NewError(fred.KindInvalidDateFormat,
			"%s must be a YYYY-MM-DD date, got %q", name, s)
	}
	return s, nil
}

// limitArgument parses the optional limit argument. Transport-level numbers
// arrive as float64; numeric strings are tolerated. Zero, negative, and
// non-numeric values are rejected.
func limitArgument(args map[string]any, fallback int) (int, *fred.Error) {
	raw, present := args["limit"]
	if !present || raw == nil {
		return fallback, nil
	}
	switch v := raw.(type) {
	case float64:
		if v <= 0 || v != float64(int(v)) {
			return 0, fred.NewError(fred.KindInvalidLimit, "limit must be a positive integer, got %v", v)
		}
		return int(v), nil
	case int:
		if v <= 0 {
			return 0, fred.NewError(fred.KindInvalidLimit, "limit must be a positive integer, got %d", v)
		}
		return v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return 0, fred.NewError(fred.KindInvalidLimit, "limit must be a positive integer, got %q", v)
		}
		return n, nil
	default:
		return 0, fred.NewError(fred.KindInvalidLimit, "limit must be a positive integer")
	}
}
