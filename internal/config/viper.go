package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Manager wraps a Config with Viper for environment overrides and hot
// reloading of the configuration file. Access through Get is thread-safe.
type Manager struct {
	mu          sync.RWMutex
	config      *Config
	viper       *viper.Viper
	subscribers []func(*Config)
}

// Load reads configuration from the given file, applying CATALOG_* env
// overrides on top of the defaults. A missing file is not an error; the
// defaults apply.
func Load(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register defaults so env-only keys survive Unmarshal.
	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	config := Default()
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Manager{
		config:      config,
		viper:       v,
		subscribers: make([]func(*Config), 0),
	}, nil
}

// NewStatic wraps an in-memory Config without file or env backing. Intended
// for tests and tooling.
func NewStatic(config *Config) *Manager {
	return &Manager{
		config:      config,
		subscribers: make([]func(*Config), 0),
	}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Subscribe registers a callback invoked with each successfully reloaded
// configuration.
func (m *Manager) Subscribe(subscriber func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, subscriber)
}

// EnableHotReload watches the configuration file and swaps in valid updates.
// Invalid updates are logged and discarded; the previous configuration stays
// active.
func (m *Manager) EnableHotReload() {
	if m.viper == nil {
		return
	}
	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)

		newConfig := Default()
		if err := m.viper.Unmarshal(newConfig); err != nil {
			log.Printf("Failed to unmarshal config: %v", err)
			return
		}
		if err := newConfig.Validate(); err != nil {
			log.Printf("Invalid configuration: %v", err)
			return
		}

		m.mu.Lock()
		m.config = newConfig
		subscribers := make([]func(*Config), len(m.subscribers))
		copy(subscribers, m.subscribers)
		m.mu.Unlock()

		for _, subscriber := range subscribers {
			subscriber(newConfig)
		}
	})
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("catalog.default_page_size", d.Catalog.DefaultPageSize)
	v.SetDefault("catalog.max_page_size", d.Catalog.MaxPageSize)
	v.SetDefault("catalog.related_limit", d.Catalog.RelatedLimit)
	v.SetDefault("source.kind", d.Source.Kind)
	v.SetDefault("source.file", d.Source.File)
	v.SetDefault("source.spanner_database", d.Source.SpannerDatabase)
	v.SetDefault("source.postgres_dsn", d.Source.PostgresDSN)
}
