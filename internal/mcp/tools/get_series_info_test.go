package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrodata/fredhub/internal/fred"
)

type fakeMetadataService struct {
	calls    int
	lastReq  fred.SeriesInfoRequest
	metadata fred.SeriesMetadata
	err      error
}

func (f *fakeMetadataService) FetchMetadata(ctx context.Context, req fred.SeriesInfoRequest) (fred.SeriesMetadata, error) {
	f.calls++
	f.lastReq = req
	return f.metadata, f.err
}

func TestGetSeriesInfoMissingSeriesID(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "absent", args: map[string]any{}},
		{name: "empty", args: map[string]any{"series_id": ""}},
		{name: "whitespace", args: map[string]any{"series_id": "\t  "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := &fakeMetadataService{}
			handler := &GetSeriesInfoHandler{Service: service}

			res, err := handler.ToolAdapter(context.Background(), callRequest("get_series_info", tc.args))
			require.NoError(t, err)

			payload := decodeErrorPayload(t, res)
			assert.Equal(t, fred.KindMissingParameter, payload.Error)
			assert.Zero(t, service.calls)
		})
	}
}

func TestGetSeriesInfoRoundTrip(t *testing.T) {
	service := &fakeMetadataService{
		metadata: fred.SeriesMetadata{
			SeriesID:           "FEDFUNDS",
			Title:              "Federal Funds Effective Rate",
			Units:              "Percent",
			Frequency:          "Monthly",
			SeasonalAdjustment: "Not Seasonally Adjusted",
			LastUpdated:        "2024-06-03 15:16:07-05",
			Notes:              "Averages of daily figures.",
		},
	}
	handler := &GetSeriesInfoHandler{Service: service}

	res, err := handler.ToolAdapter(context.Background(), callRequest("get_series_info", map[string]any{
		"series_id": " FEDFUNDS ",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	assert.Equal(t, 1, service.calls)
	assert.Equal(t, "FEDFUNDS", service.lastReq.SeriesID, "series_id is trimmed before dispatch")

	var decoded fred.SeriesMetadata
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
	assert.Equal(t, "FEDFUNDS", decoded.SeriesID)
	assert.Equal(t, "Federal Funds Effective Rate", decoded.Title)
}

func TestGetSeriesInfoPropagatesAdapterClassification(t *testing.T) {
	service := &fakeMetadataService{
		err: fred.NewError(fred.KindInvalidSeriesID, "series %q not found", "NOTAREALSERIES"),
	}
	handler := &GetSeriesInfoHandler{Service: service}

	res, err := handler.ToolAdapter(context.Background(), callRequest("get_series_info", map[string]any{
		"series_id": "NOTAREALSERIES",
	}))
	require.NoError(t, err)

	payload := decodeErrorPayload(t, res)
	assert.Equal(t, fred.KindInvalidSeriesID, payload.Error)
}

func TestRouterUnknownOperation(t *testing.T) {
	router := NewRouter(map[string]ToolAdapter{
		"get_series_info": &GetSeriesInfoHandler{Service: &fakeMetadataService{}},
	})

	res, err := router.Dispatch(context.Background(), "get_weather", map[string]any{})
	require.NoError(t, err)

	payload := decodeErrorPayload(t, res)
	assert.Equal(t, fred.KindUnknownOperation, payload.Error)
}

func TestRouterDispatchesKnownOperation(t *testing.T) {
	service := &fakeMetadataService{metadata: fred.SeriesMetadata{SeriesID: "UNRATE"}}
	router := NewRouter(map[string]ToolAdapter{
		"get_series_info": &GetSeriesInfoHandler{Service: service},
	})

	res, err := router.Dispatch(context.Background(), "get_series_info", map[string]any{
		"series_id": "UNRATE",
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, 1, service.calls)
}
