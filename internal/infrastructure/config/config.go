package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/senaitabera/wellspring/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL       string
	OfficeEmail      string
	BlogCacheTTL     time.Duration
	BlogCacheMaxKeys int
	ResourceCacheTTL time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:       getEnv("APP_BASE_URL", "http://localhost:8080"),
		OfficeEmail:      getEnv("OFFICE_EMAIL", ""),
		BlogCacheTTL:     time.Minute * time.Duration(getEnvAsInt("BLOG_CACHE_TTL_MINUTES", 5)),
		BlogCacheMaxKeys: getEnvAsInt("BLOG_CACHE_MAX_KEYS", 1000),
		ResourceCacheTTL: time.Minute * time.Duration(getEnvAsInt("RESOURCE_CACHE_TTL_MINUTES", 10)),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetOfficeEmail returns the inbox notified about new consultation requests.
func (c *Config) GetOfficeEmail() string {
	return c.OfficeEmail
}

// GetBlogCacheTTL returns the freshness window for single-post lookups.
func (c *Config) GetBlogCacheTTL() time.Duration {
	return c.BlogCacheTTL
}

// GetBlogCacheMaxKeys returns the capacity bound of the in-memory blog cache.
func (c *Config) GetBlogCacheMaxKeys() int {
	return c.BlogCacheMaxKeys
}

// GetResourceCacheTTL returns the freshness window for the resource listing.
func (c *Config) GetResourceCacheTTL() time.Duration {
	return c.ResourceCacheTTL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
