package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, 100, cfg.Catalog.MaxPageSize)
	assert.Equal(t, 4, cfg.Catalog.RelatedLimit)
	assert.Equal(t, SourceFile, cfg.Source.Kind)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"zero page size", func(c *Config) { c.Catalog.DefaultPageSize = 0 }},
		{"max below default", func(c *Config) { c.Catalog.MaxPageSize = 5 }},
		{"negative related limit", func(c *Config) { c.Catalog.RelatedLimit = -1 }},
		{"unknown source kind", func(c *Config) { c.Source.Kind = "redis" }},
		{"file source without path", func(c *Config) { c.Source.File = "" }},
		{"spanner source without database", func(c *Config) { c.Source.Kind = SourceSpanner }},
		{"postgres source without dsn", func(c *Config) { c.Source.Kind = SourcePostgres }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
