package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	Init(nil)

	assert.Equal(t, "https://api.stlouisfed.org/fred", FredBaseURL())
	assert.Equal(t, 30*time.Second, FredHTTPTimeout())
	assert.Equal(t, 100, DefaultLimit())
	assert.Equal(t, "info", LogLevel())
}

func TestAPIKeyHasNoDefault(t *testing.T) {
	viper.Reset()
	Init(nil)

	assert.Empty(t, FredAPIKey(), "the API key must come from the environment")
}

func TestEnvironmentOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("FRED_API_KEY", "abc123")
	t.Setenv("SERIES_DEFAULT_LIMIT", "50")
	Init(nil)

	assert.Equal(t, "abc123", FredAPIKey())
	assert.Equal(t, 50, DefaultLimit())
}
