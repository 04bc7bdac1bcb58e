package fred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v6"
	"github.com/tidwall/gjson"

	"github.com/macrodata/fredhub/internal/logging"
)

const (
	defaultBaseURL = "https://api.stlouisfed.org/fred"
	defaultTimeout = 30 * time.Second

	observationsPath = "/series/observations"
	seriesPath       = "/series"

	// missingValue is FRED's literal marker for a not-reported observation.
	missingValue = "."
)

// Config holds the immutable client settings, constructed once at startup.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client issues single-hop calls against the FRED API. It performs no
// retries and holds no mutable state across requests.
type Client struct {
	cfg  Config
	http *http.Client
	log  logging.Logger
}

// NewClient validates the configuration and returns a ready client. A
// missing API key is a startup error, never a per-request one.
func NewClient(cfg Config, log logging.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("fred: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}, nil
}

type observationRow struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type observationsPayload struct {
	Observations *[]observationRow `json:"observations"`
}

type seriesPayload struct {
	Seriess *[]struct {
		ID                 string `json:"id"`
		Title              string `json:"title"`
		Units              string `json:"units"`
		Frequency          string `json:"frequency"`
		SeasonalAdjustment string `json:"seasonal_adjustment"`
		LastUpdated        string `json:"last_updated"`
		Notes              string `json:"notes"`
	} `json:"seriess"`
}

// FetchObservations retrieves the observations for req, bounded by
// req.Limit, in ascending date order.
func (c *Client) FetchObservations(ctx context.Context, req SeriesRequest) (SeriesObservationsResult, error) {
	q := c.baseQuery(req.SeriesID)
	q.Set("sort_order", "asc")
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.StartDate != "" {
		q.Set("observation_start", req.StartDate)
	}
	if req.EndDate != "" {
		q.Set("observation_end", req.EndDate)
	}

	start := time.Now()
	body, err := c.get(ctx, observationsPath, q)
	if err != nil {
		return SeriesObservationsResult{}, err
	}

	var payload observationsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return SeriesObservationsResult{}, WrapError(KindMalformedUpstreamResponse, err,
			"decoding observations for series %q", req.SeriesID)
	}
	if payload.Observations == nil {
		return SeriesObservationsResult{}, NewError(KindMalformedUpstreamResponse,
			"upstream response for series %q has no observations field", req.SeriesID)
	}

	rows := *payload.Observations
	observations := make([]Observation, 0, len(rows))
	for _, row := range rows {
		value, err := parseValue(row.Value)
		if err != nil {
			return SeriesObservationsResult{}, WrapError(KindMalformedUpstreamResponse, err,
				"observation %s of series %q", row.Date, req.SeriesID)
		}
		observations = append(observations, Observation{Date: row.Date, Value: value})
	}

	result := SeriesObservationsResult{
		SeriesID:     req.SeriesID,
		Observations: observations,
		Count:        len(observations),
		Limit:        req.Limit,
	}
	if len(observations) > 0 {
		result.PeriodStart = observations[0].Date
		result.PeriodEnd = observations[len(observations)-1].Date
	}

	c.log.Debug("fetched observations",
		"series_id", req.SeriesID, "count", result.Count, "elapsed", time.Since(start).String())
	return result, nil
}

// FetchMetadata retrieves the descriptive record for one series.
func (c *Client) FetchMetadata(ctx context.Context, req SeriesInfoRequest) (SeriesMetadata, error) {
	body, err := c.get(ctx, seriesPath, c.baseQuery(req.SeriesID))
	if err != nil {
		return SeriesMetadata{}, err
	}

	var payload seriesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return SeriesMetadata{}, WrapError(KindMalformedUpstreamResponse, err,
			"decoding metadata for series %q", req.SeriesID)
	}
	if payload.Seriess == nil {
		return SeriesMetadata{}, NewError(KindMalformedUpstreamResponse,
			"upstream response for series %q has no seriess field", req.SeriesID)
	}
	records := *payload.Seriess
	if len(records) == 0 {
		return SeriesMetadata{}, NewError(KindInvalidSeriesID, "series %q not found", req.SeriesID)
	}

	record := records[0]
	return SeriesMetadata{
		SeriesID:           record.ID,
		Title:              record.Title,
		Units:              record.Units,
		Frequency:          record.Frequency,
		SeasonalAdjustment: record.SeasonalAdjustment,
		LastUpdated:        record.LastUpdated,
		Notes:              record.Notes,
	}, nil
}

func (c *Client) baseQuery(seriesID string) url.Values {
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", c.cfg.APIKey)
	q.Set("file_type", "json")
	return q
}

// get performs one upstream round-trip and classifies every failure mode.
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := c.cfg.BaseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, WrapError(KindUpstreamUnavailable, err, "building request for %s", path)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, WrapError(KindUpstreamUnavailable, c.annotateError(err), "calling FRED %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, WrapError(KindUpstreamUnavailable, err, "reading FRED %s response", path)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, classifyClientError(resp.StatusCode, body)
	default:
		return nil, NewError(KindUpstreamUnavailable, "FRED returned status %d", resp.StatusCode)
	}
}

// classifyClientError distinguishes an unknown series from a malformed
// parameter using the upstream error_message when present.
func classifyClientError(status int, body []byte) error {
	message := gjson.GetBytes(body, "error_message").Str
	if message == "" {
		message = fmt.Sprintf("FRED rejected the request with status %d", status)
	}
	lowered := strings.ToLower(message)
	if status == http.StatusNotFound ||
		strings.Contains(lowered, "does not exist") ||
		strings.Contains(lowered, "not found") {
		return NewError(KindInvalidSeriesID, "%s", message)
	}
	return NewError(KindInvalidParameter, "%s", message)
}

func (c *Client) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("upstream call timed out after %s: %w", c.cfg.Timeout, err)
	}
	return err
}

// parseValue maps FRED's literal value column to the present/missing
// variant. The missing sentinel is preserved, never coerced to zero.
func parseValue(raw string) (null.Float, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == missingValue {
		return null.Float{}, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return null.Float{}, fmt.Errorf("unparseable observation value %q", raw)
	}
	return null.FloatFrom(v), nil
}
