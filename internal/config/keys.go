package config

const (
	KeyFredAPIKey      = "fred_api_key"
	KeyFredBaseURL     = "fred_base_url"
	KeyFredHTTPTimeout = "fred_http_timeout"
	KeyDefaultLimit    = "series_default_limit"
	KeyLogLevel        = "log_level"
)
