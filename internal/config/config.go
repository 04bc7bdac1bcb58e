package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyFredBaseURL, "https://api.stlouisfed.org/fred")
	viper.SetDefault(KeyFredHTTPTimeout, 30*time.Second)
	viper.SetDefault(KeyDefaultLimit, 100)
	viper.SetDefault(KeyLogLevel, "info")
}

func FredAPIKey() string             { return viper.GetString(KeyFredAPIKey) }
func FredBaseURL() string            { return viper.GetString(KeyFredBaseURL) }
func FredHTTPTimeout() time.Duration { return viper.GetDuration(KeyFredHTTPTimeout) }
func DefaultLimit() int              { return viper.GetInt(KeyDefaultLimit) }
func LogLevel() string               { return viper.GetString(KeyLogLevel) }
