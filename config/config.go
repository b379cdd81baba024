package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Dify completion provider.
	DifyAPIURL         string `mapstructure:"DIFY_API_URL"`
	DifyAPIKey         string `mapstructure:"DIFY_API_KEY"`
	DifyTimeoutSeconds int    `mapstructure:"DIFY_TIMEOUT_SECONDS"`
	UserIdentifier     string `mapstructure:"USER_IDENTIFIER"`

	// Clerk identity provider.
	ClerkAPIURL    string `mapstructure:"CLERK_API_URL"`
	ClerkSecretKey string `mapstructure:"CLERK_SECRET_KEY"`

	// Stripe payment provider.
	StripeSecretKey      string `mapstructure:"STRIPE_SECRET_KEY"`
	StripePublishableKey string `mapstructure:"STRIPE_PUBLISHABLE_KEY"`

	// Daily quota.
	DailyCheckLimit int    `mapstructure:"DAILY_CHECK_LIMIT"`
	QuotaBackend    string `mapstructure:"QUOTA_BACKEND"`

	// Redis configuration (quota backend "redis").
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisQuotaDB  int    `mapstructure:"REDIS_QUOTA_DB"`

	// Directory holding the built frontend assets.
	StaticDir string `mapstructure:"STATIC_DIR"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "3001")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DIFY_API_URL", "https://api.dify.ai/v1")
	viper.SetDefault("DIFY_API_KEY", "")
	viper.SetDefault("DIFY_TIMEOUT_SECONDS", 55)
	viper.SetDefault("USER_IDENTIFIER", "")
	viper.SetDefault("CLERK_API_URL", "https://api.clerk.com")
	viper.SetDefault("CLERK_SECRET_KEY", "")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_PUBLISHABLE_KEY", "")
	viper.SetDefault("DAILY_CHECK_LIMIT", 3)
	viper.SetDefault("QUOTA_BACKEND", "clerk")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_QUOTA_DB", 0)
	viper.SetDefault("STATIC_DIR", "dist")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
