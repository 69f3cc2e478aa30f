// Package config loads the command line configuration from flags, the
// environment (S2PAGER_ prefix) and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Alp4ka/s2pager"
	"github.com/Alp4ka/s2pager/archive"
	"github.com/Alp4ka/s2pager/client"
)

const EnvPrefix = "S2PAGER"

// Config is the complete configuration.
type Config struct {
	API     *API
	Log     *Log
	Archive *Archive
}

// API configures the remote API client.
type API struct {
	BaseURL   string
	PageLimit int
	Timeout   time.Duration
	UserAgent string
}

// Log configures the global logger.
type Log struct {
	Level  string
	Format string
}

// Archive configures the listing archive.
type Archive struct {
	Driver string
	DSN    string
	Debug  bool
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers the default of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", client.DefaultBaseURL)
	v.SetDefault("api.page_limit", s2pager.DefaultPageLimit)
	v.SetDefault("api.timeout", client.DefaultTimeout)
	v.SetDefault("api.user_agent", client.DefaultUserAgent)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("archive.driver", archive.DriverSQLite)
	v.SetDefault("archive.dsn", "s2pager.db")
	v.SetDefault("archive.debug", false)
}

// Load reads configFile, when given, and builds the Config.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		API:     getAPIConfig(v),
		Log:     getLogConfig(v),
		Archive: getArchiveConfig(v),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getAPIConfig(v *viper.Viper) *API {
	return &API{
		BaseURL:   v.GetString("api.base_url"),
		PageLimit: v.GetInt("api.page_limit"),
		Timeout:   v.GetDuration("api.timeout"),
		UserAgent: v.GetString("api.user_agent"),
	}
}

func getLogConfig(v *viper.Viper) *Log {
	return &Log{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
}

func getArchiveConfig(v *viper.Viper) *Archive {
	return &Archive{
		Driver: v.GetString("archive.driver"),
		DSN:    v.GetString("archive.dsn"),
		Debug:  v.GetBool("archive.debug"),
	}
}

func (c *Config) validate() error {
	var errs []error
	if c.API.PageLimit == 0 || c.API.PageLimit < s2pager.NoPageLimit {
		errs = append(errs, fmt.Errorf("api.page_limit must be positive or %d, got %d", s2pager.NoPageLimit, c.API.PageLimit))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout))
	}

	return errors.Join(errs...)
}

// ClientOptions translates the API section into client options.
func (a *API) ClientOptions() []client.Option {
	return []client.Option{
		client.WithBaseURL(a.BaseURL),
		client.WithPageLimit(a.PageLimit),
		client.WithTimeout(a.Timeout),
		client.WithUserAgent(a.UserAgent),
	}
}

// StoreConfig translates the archive section into an archive.Config.
func (a *Archive) StoreConfig() archive.Config {
	return archive.Config{Driver: a.Driver, DSN: a.DSN, Debug: a.Debug}
}
