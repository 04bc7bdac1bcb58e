package fred

import "github.com/guregu/null/v6"

// SeriesRequest is the validated input for an observations fetch. Dates are
// ISO 8601 (YYYY-MM-DD) and already checked by the caller; Limit is always a
// positive bound so unbounded upstream requests never occur.
type SeriesRequest struct {
	SeriesID  string
	StartDate string
	EndDate   string
	Limit     int
}

// SeriesInfoRequest is the validated input for a metadata fetch.
type SeriesInfoRequest struct {
	SeriesID string
}

// Observation is one dated data point. Value is invalid when upstream reports
// the observation as missing (FRED uses "." for not-reported values); it
// marshals to JSON null in that case, never to zero.
type Observation struct {
	Date  string     `json:"date"`
	Value null.Float `json:"value"`
}

// SeriesObservationsResult is an immutable snapshot of one observations
// fetch. Observations are chronological, ascending by date, and Count never
// exceeds Limit.
type SeriesObservationsResult struct {
	SeriesID     string        `json:"series_id"`
	Observations []Observation `json:"observations"`
	Count        int           `json:"count"`
	Limit        int           `json:"limit"`
	PeriodStart  string        `json:"period_start,omitempty"`
	PeriodEnd    string        `json:"period_end,omitempty"`
}

// SeriesMetadata describes a series as reported by upstream.
type SeriesMetadata struct {
	SeriesID           string `json:"series_id"`
	Title              string `json:"title"`
	Units              string `json:"units"`
	Frequency          string `json:"frequency"`
	SeasonalAdjustment string `json:"seasonal_adjustment"`
	LastUpdated        string `json:"last_updated"`
	Notes              string `json:"notes"`
}
