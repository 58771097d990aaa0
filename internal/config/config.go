// Package config holds the service configuration: the HTTP server settings,
// the catalog listing tunables, and the backing source selection.
package config

import (
	"fmt"
)

// Source kinds accepted by Validate.
const (
	SourceFile     = "file"
	SourceSpanner  = "spanner"
	SourcePostgres = "postgres"
)

// Config is the complete configuration for the catalog service.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Source  SourceConfig  `mapstructure:"source" yaml:"source"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port int `mapstructure:"port" yaml:"port"`
}

// CatalogConfig controls listing defaults. These are hot-reloadable.
type CatalogConfig struct {
	// DefaultPageSize is used when the request carries no pageSize.
	DefaultPageSize int `mapstructure:"default_page_size" yaml:"default_page_size"`

	// MaxPageSize caps caller-supplied page sizes.
	MaxPageSize int `mapstructure:"max_page_size" yaml:"max_page_size"`

	// RelatedLimit is the default number of related products returned.
	RelatedLimit int `mapstructure:"related_limit" yaml:"related_limit"`
}

// SourceConfig selects and configures the backing catalog source.
type SourceConfig struct {
	// Kind is one of "file", "spanner", or "postgres".
	Kind string `mapstructure:"kind" yaml:"kind"`

	// File is the path of the JSON dataset (kind "file").
	File string `mapstructure:"file" yaml:"file"`

	// SpannerDatabase is the full database path (kind "spanner").
	SpannerDatabase string `mapstructure:"spanner_database" yaml:"spanner_database"`

	// PostgresDSN is the connection string (kind "postgres").
	PostgresDSN string `mapstructure:"postgres_dsn" yaml:"postgres_dsn"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Catalog: CatalogConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			RelatedLimit:    4,
		},
		Source: SourceConfig{
			Kind: SourceFile,
			File: "data/products.json",
		},
	}
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Catalog.DefaultPageSize <= 0 {
		return fmt.Errorf("default page size must be positive, got %d", c.Catalog.DefaultPageSize)
	}
	if c.Catalog.MaxPageSize < c.Catalog.DefaultPageSize {
		return fmt.Errorf("max page size %d is below default page size %d",
			c.Catalog.MaxPageSize, c.Catalog.DefaultPageSize)
	}
	if c.Catalog.RelatedLimit < 0 {
		return fmt.Errorf("related limit must not be negative, got %d", c.Catalog.RelatedLimit)
	}

	switch c.Source.Kind {
	case SourceFile:
		if c.Source.File == "" {
			return fmt.Errorf("file source requires a dataset path")
		}
	case SourceSpanner:
		if c.Source.SpannerDatabase == "" {
			return fmt.Errorf("spanner source requires a database path")
		}
	case SourcePostgres:
		if c.Source.PostgresDSN == "" {
			return fmt.Errorf("postgres source requires a DSN")
		}
	default:
		return fmt.Errorf("unknown source kind %q", c.Source.Kind)
	}

	return nil
}
