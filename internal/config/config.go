// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jdfalk/folio/internal/locale"
)

// EnvPrefix namespaces environment overrides, e.g. FOLIO_CONTENT_DIR.
const EnvPrefix = "FOLIO"

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// SearchConfig holds search endpoint settings.
type SearchConfig struct {
	CacheTTL           time.Duration `yaml:"cache_ttl"`
	CacheSize          int           `yaml:"cache_size"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute"`
	RateLimitBurst     int           `yaml:"rate_limit_burst"`
	DefaultLimit       int           `yaml:"default_limit"`
}

// Config holds application configuration
type Config struct {
	ContentDir      string          `yaml:"content_dir"`
	DefaultLanguage locale.Language `yaml:"default_language"`
	WatchContent    bool            `yaml:"watch_content"`
	Server          ServerConfig    `yaml:"server"`
	Search          SearchConfig    `yaml:"search"`
}

var AppConfig Config

// SetDefaults registers every default with viper.
func SetDefaults() {
	viper.SetDefault("content_dir", "content")
	viper.SetDefault("default_language", string(locale.Canonical))
	viper.SetDefault("watch_content", false)

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 15*time.Second)
	viper.SetDefault("server.idle_timeout", 60*time.Second)

	viper.SetDefault("search.cache_ttl", 5*time.Minute)
	viper.SetDefault("search.cache_size", 512)
	viper.SetDefault("search.rate_limit_per_minute", 120)
	viper.SetDefault("search.rate_limit_burst", 20)
	viper.SetDefault("search.default_limit", 20)
}

// InitConfig initializes the application configuration
func InitConfig() error {
	SetDefaults()

	lang, err := locale.Parse(viper.GetString("default_language"))
	if err != nil {
		return fmt.Errorf("default_language: %w", err)
	}

	AppConfig = Config{
		ContentDir:      viper.GetString("content_dir"),
		DefaultLanguage: lang,
		WatchContent:    viper.GetBool("watch_content"),
		Server: ServerConfig{
			Host:         viper.GetString("server.host"),
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
			IdleTimeout:  viper.GetDuration("server.idle_timeout"),
		},
		Search: SearchConfig{
			CacheTTL:           viper.GetDuration("search.cache_ttl"),
			CacheSize:          viper.GetInt("search.cache_size"),
			RateLimitPerMinute: viper.GetInt("search.rate_limit_per_minute"),
			RateLimitBurst:     viper.GetInt("search.rate_limit_burst"),
			DefaultLimit:       viper.GetInt("search.default_limit"),
		},
	}
	return AppConfig.Validate()
}

// Validate reports every out-of-range setting together.
func (c Config) Validate() error {
	var errs []error
	if c.ContentDir == "" {
		errs = append(errs, errors.New("content_dir must not be empty"))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Search.CacheTTL < 0 {
		errs = append(errs, errors.New("search.cache_ttl must not be negative"))
	}
	if c.Search.RateLimitPerMinute < 0 || c.Search.RateLimitBurst < 0 {
		errs = append(errs, errors.New("search rate limits must not be negative"))
	}
	if c.Search.DefaultLimit < 0 {
		errs = append(errs, errors.New("search.default_limit must not be negative"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
