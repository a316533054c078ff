package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	ListingBaseURL     string        `mapstructure:"listing_base_url"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	StorageType     string `mapstructure:"storage_type"`
	MongoURI        string `mapstructure:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"`
	MongoCollection string `mapstructure:"mongo_collection"`
	BBoltPath       string `mapstructure:"bbolt_path"`

	BrowserHeadless          bool          `mapstructure:"browser_headless"`
	BrowserSettleMs          int64         `mapstructure:"browser_settle_ms"`
	BrowserNavTimeoutSeconds int64         `mapstructure:"browser_nav_timeout_seconds"`
	BrowserSettle            time.Duration `mapstructure:"-"`
	BrowserNavTimeout        time.Duration `mapstructure:"-"`

	// PublishersFile is optional; empty disables event publishing.
	PublishersFile string `mapstructure:"publishers_file"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "webtoon-crawler")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("listing_base_url", "https://korea-webtoon-api.herokuapp.com")
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("storage_type", "mongo")
	v.SetDefault("mongo_uri", "")
	v.SetDefault("mongo_database", "LikeOTT")
	v.SetDefault("mongo_collection", "media")
	v.SetDefault("bbolt_path", "./data/media.db")
	v.SetDefault("browser_headless", true)
	v.SetDefault("browser_settle_ms", 1500)
	v.SetDefault("browser_nav_timeout_seconds", 45)
	v.SetDefault("publishers_file", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ListingBaseURL == "" {
		return nil, fmt.Errorf("listing_base_url must not be empty")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.BrowserSettleMs <= 0 {
		return nil, fmt.Errorf("invalid browser_settle_ms (must be positive)")
	}
	if cfg.BrowserNavTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid browser_nav_timeout_seconds (must be positive)")
	}
	cfg.BrowserSettle = time.Duration(cfg.BrowserSettleMs) * time.Millisecond
	cfg.BrowserNavTimeout = time.Duration(cfg.BrowserNavTimeoutSeconds) * time.Second

	if cfg.StorageType == "mongo" && cfg.MongoURI == "" {
		return nil, fmt.Errorf("mongo_uri is required when storage_type is mongo")
	}

	return &cfg, nil
}
