package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/zonelens/backend/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Shopify    ShopifyConfig
	Storefront StorefrontConfig
	RateLimit  RateLimitConfig
	Report     ReportConfig
	Cache      CacheConfig
}

// ServerConfig holds the widget API server configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ShopifyConfig holds admin API credentials and metafield addressing
type ShopifyConfig struct {
	StoreDomain string `mapstructure:"store_domain"`
	AdminToken  string `mapstructure:"admin_token"`
	APIVersion  string `mapstructure:"api_version"`
	Namespace   string `mapstructure:"namespace"`
	Key         string `mapstructure:"key"`
}

// StorefrontConfig holds the public storefront settings
type StorefrontConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// RateLimitConfig holds the admin API mutation pacing policy
type RateLimitConfig struct {
	MutationsPerSec float64 `mapstructure:"mutations_per_sec"`
	Burst           int     `mapstructure:"burst"`
}

// ReportConfig holds run report output settings
type ReportConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig holds suggestion cache settings
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/zonelens/")

	v.SetEnvPrefix("ZONELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so keys
	// without a default must be bound explicitly for Unmarshal to see them.
	for _, key := range []string{"shopify.store_domain", "shopify.admin_token", "storefront.base_url"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.Storefront.BaseURL == "" && config.Shopify.StoreDomain != "" {
		config.Storefront.BaseURL = "https://" + config.Shopify.StoreDomain
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:9292"})

	v.SetDefault("shopify.api_version", "2024-07")
	v.SetDefault("shopify.namespace", "custom")
	v.SetDefault("shopify.key", "hardiness_zones")

	// Keep comfortably under the platform's per-second mutation ceiling
	v.SetDefault("ratelimit.mutations_per_sec", 2.0)
	v.SetDefault("ratelimit.burst", 1)

	v.SetDefault("report.path", "zone-metafield-report.json")
	v.SetDefault("cache.ttl", "5m")
}

// validate checks required settings. Every missing credential is collected
// so the fatal error names all of them at once, not just the first.
func validate(config *Config) error {
	var missing []string
	if config.Shopify.StoreDomain == "" {
		missing = append(missing, "ZONELENS_SHOPIFY_STORE_DOMAIN")
	}
	if config.Shopify.AdminToken == "" {
		missing = append(missing, "ZONELENS_SHOPIFY_ADMIN_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required environment variables: %s",
			domain.ErrConfig, strings.Join(missing, ", "))
	}

	if config.RateLimit.MutationsPerSec <= 0 {
		return fmt.Errorf("%w: ratelimit.mutations_per_sec must be positive", domain.ErrConfig)
	}

	return nil
}
