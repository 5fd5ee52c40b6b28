package config

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/zonelens/backend/internal/domain"
)

func cleanupEnv() {
	os.Unsetenv("ZONELENS_SERVER_PORT")
	os.Unsetenv("ZONELENS_SERVER_ENVIRONMENT")
	os.Unsetenv("ZONELENS_SHOPIFY_STORE_DOMAIN")
	os.Unsetenv("ZONELENS_SHOPIFY_ADMIN_TOKEN")
	os.Unsetenv("ZONELENS_SHOPIFY_API_VERSION")
	os.Unsetenv("ZONELENS_SHOPIFY_NAMESPACE")
	os.Unsetenv("ZONELENS_SHOPIFY_KEY")
	os.Unsetenv("ZONELENS_STOREFRONT_BASE_URL")
	os.Unsetenv("ZONELENS_RATELIMIT_MUTATIONS_PER_SEC")
	os.Unsetenv("ZONELENS_RATELIMIT_BURST")
	os.Unsetenv("ZONELENS_REPORT_PATH")
	os.Unsetenv("ZONELENS_CACHE_TTL")
}

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when credentials are set", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("ZONELENS_SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
		os.Setenv("ZONELENS_SHOPIFY_ADMIN_TOKEN", "test-token")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Shopify.APIVersion != "2024-07" {
			t.Errorf("Shopify.APIVersion = %s, want 2024-07", cfg.Shopify.APIVersion)
		}
		if cfg.Shopify.Namespace != "custom" || cfg.Shopify.Key != "hardiness_zones" {
			t.Errorf("metafield target = %s/%s, want custom/hardiness_zones", cfg.Shopify.Namespace, cfg.Shopify.Key)
		}
		if cfg.RateLimit.MutationsPerSec != 2.0 {
			t.Errorf("RateLimit.MutationsPerSec = %v, want 2.0", cfg.RateLimit.MutationsPerSec)
		}
		if cfg.Report.Path != "zone-metafield-report.json" {
			t.Errorf("Report.Path = %s, want zone-metafield-report.json", cfg.Report.Path)
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
	})

	t.Run("credentials set only in the environment reach the config", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("ZONELENS_SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
		os.Setenv("ZONELENS_SHOPIFY_ADMIN_TOKEN", "test-token")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if cfg.Shopify.StoreDomain != "example.myshopify.com" {
			t.Errorf("Shopify.StoreDomain = %q, want example.myshopify.com", cfg.Shopify.StoreDomain)
		}
		if cfg.Shopify.AdminToken != "test-token" {
			t.Errorf("Shopify.AdminToken = %q, want test-token", cfg.Shopify.AdminToken)
		}
	})

	t.Run("explicit storefront base URL wins over the derived one", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("ZONELENS_SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
		os.Setenv("ZONELENS_SHOPIFY_ADMIN_TOKEN", "test-token")
		os.Setenv("ZONELENS_STOREFRONT_BASE_URL", "https://shop.example.com")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Storefront.BaseURL != "https://shop.example.com" {
			t.Errorf("Storefront.BaseURL = %s, want the explicit value", cfg.Storefront.BaseURL)
		}
	})

	t.Run("derives storefront base URL from the store domain", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("ZONELENS_SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
		os.Setenv("ZONELENS_SHOPIFY_ADMIN_TOKEN", "test-token")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Storefront.BaseURL != "https://example.myshopify.com" {
			t.Errorf("Storefront.BaseURL = %s, want derived URL", cfg.Storefront.BaseURL)
		}
	})

	t.Run("missing credentials are all listed", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want missing-credential failure")
		}
		if !errors.Is(err, domain.ErrConfig) {
			t.Errorf("error = %v, want ErrConfig", err)
		}
		for _, name := range []string{"ZONELENS_SHOPIFY_STORE_DOMAIN", "ZONELENS_SHOPIFY_ADMIN_TOKEN"} {
			if !strings.Contains(err.Error(), name) {
				t.Errorf("error %q does not name %s", err, name)
			}
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("ZONELENS_SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
		os.Setenv("ZONELENS_SHOPIFY_ADMIN_TOKEN", "test-token")
		os.Setenv("ZONELENS_SERVER_PORT", "9090")
		os.Setenv("ZONELENS_RATELIMIT_MUTATIONS_PER_SEC", "1")
		os.Setenv("ZONELENS_REPORT_PATH", "/tmp/report.json")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.RateLimit.MutationsPerSec != 1 {
			t.Errorf("RateLimit.MutationsPerSec = %v, want 1", cfg.RateLimit.MutationsPerSec)
		}
		if cfg.Report.Path != "/tmp/report.json" {
			t.Errorf("Report.Path = %s, want /tmp/report.json", cfg.Report.Path)
		}
	})

	t.Run("rejects a non-positive mutation rate", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("ZONELENS_SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
		os.Setenv("ZONELENS_SHOPIFY_ADMIN_TOKEN", "test-token")
		os.Setenv("ZONELENS_RATELIMIT_MUTATIONS_PER_SEC", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want rate validation failure")
		}
	})
}
