package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	PDF      PDFConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port          string
	GinMode       string
	LogFormat     string
	APIURL        string
	EnablePprof   bool
	EnableMetrics bool
}

// DatabaseConfig holds the sqlite database location.
type DatabaseConfig struct {
	Path string
}

// PDFConfig holds the form template location.
type PDFConfig struct {
	TemplatePath string
}

// CORSConfig holds CORS configuration. Origins may contain glob
// patterns, e.g. "https://*.example.com".
type CORSConfig struct {
	Origins []string
}

// Load reads configuration from environment variables with defaults
// suitable for local development.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("DB_PATH", "data/form3115.db")
	v.SetDefault("PDF_TEMPLATE", "templates/f3115.pdf")
	v.SetDefault("CORS_ALLOW_ORIGINS", "")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("ENABLE_METRICS", true)

	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:          v.GetString("PORT"),
			GinMode:       v.GetString("GIN_MODE"),
			LogFormat:     v.GetString("LOG_FORMAT"),
			APIURL:        v.GetString("API_URL"),
			EnablePprof:   v.GetBool("ENABLE_PPROF"),
			EnableMetrics: v.GetBool("ENABLE_METRICS"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("DB_PATH"),
		},
		PDF: PDFConfig{
			TemplatePath: v.GetString("PDF_TEMPLATE"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ALLOW_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Server.APIURL == "" {
		return fmt.Errorf("API_URL is required")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}

	if c.PDF.TemplatePath == "" {
		return fmt.Errorf("PDF_TEMPLATE is required")
	}

	return nil
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return nil
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
