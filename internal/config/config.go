// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/resellops/resell-sync/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Store         StoreConfig         `yaml:"store"`
	Database      DatabaseConfig      `yaml:"database"`
	Ebay          EbayConfig          `yaml:"ebay"`
	Queue         QueueConfig         `yaml:"queue"`
	Dispatch      DispatchConfig      `yaml:"dispatch"`
	Drafts        DraftsConfig        `yaml:"drafts"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	APIKey       string        `yaml:"api_key"` // empty disables webhook auth
}

// StoreConfig selects and configures the inventory state backend.
type StoreConfig struct {
	Backend   string `yaml:"backend"` // file, postgres
	StatePath string `yaml:"state_path"`
	AuditPath string `yaml:"audit_path"`
}

// DatabaseConfig defines PostgreSQL connection settings. Only used when
// store.backend is postgres.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines eBay Trading API settings.
type EbayConfig struct {
	AuthToken  string          `yaml:"auth_token"`
	TradingURL string          `yaml:"trading_url"`
	SiteID     int             `yaml:"site_id"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// QueueConfig defines the CSV sale queue settings.
type QueueConfig struct {
	Path          string        `yaml:"path"`
	ProcessedPath string        `yaml:"processed_path"`
	Interval      time.Duration `yaml:"interval"`
}

// DispatchConfig defines cleanup dispatch behavior.
type DispatchConfig struct {
	Simulate       bool                    `yaml:"simulate"`
	AutoConfirm    bool                    `yaml:"auto_confirm"`
	AdapterTimeout time.Duration           `yaml:"adapter_timeout"`
	Runners        map[string]RunnerConfig `yaml:"runners"` // keyed by platform
}

// RunnerConfig defines an external delist runner for a platform that
// has no API. When no runner is configured for a platform its cleanup
// is reported as manual work.
type RunnerConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// DraftsConfig defines where crosslist draft files are written.
type DraftsConfig struct {
	Dir string `yaml:"dir"`
}

// NotificationsConfig defines operator alert delivery settings.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook notification settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	File   string `yaml:"file"`   // optional, log to file as well as stderr
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyStoreDefaults(&cfg.Store)
	applyDatabaseDefaults(&cfg.Database)
	applyEbayDefaults(&cfg.Ebay)
	applyQueueDefaults(&cfg.Queue)
	applyDispatchDefaults(&cfg.Dispatch)
	applyDraftsDefaults(&cfg.Drafts)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyStoreDefaults(s *StoreConfig) {
	if s.Backend == "" {
		s.Backend = "file"
	}
	if s.StatePath == "" {
		s.StatePath = "data/state.json"
	}
	if s.AuditPath == "" {
		s.AuditPath = "data/audit.log"
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.TradingURL == "" {
		e.TradingURL = "https://api.ebay.com/ws/api.dll"
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 2.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyQueueDefaults(q *QueueConfig) {
	if q.Path == "" {
		q.Path = "data/queue.csv"
	}
	if q.ProcessedPath == "" {
		q.ProcessedPath = "data/processed.csv"
	}
	if q.Interval == 0 {
		q.Interval = 5 * time.Minute
	}
}

func applyDispatchDefaults(d *DispatchConfig) {
	if d.AdapterTimeout == 0 {
		d.AdapterTimeout = 2 * time.Minute
	}
}

func applyDraftsDefaults(d *DraftsConfig) {
	if d.Dir == "" {
		d.Dir = "drafts"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Store.Backend {
	case "file":
		// Paths have defaults, nothing else to check.
	case "postgres":
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required when store.backend is postgres"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when store.backend is postgres"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when store.backend is postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.backend must be one of: file, postgres (got %q)", cfg.Store.Backend))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}

	for name, runner := range cfg.Dispatch.Runners {
		platform, err := domain.ParsePlatform(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("dispatch.runners: %w", err))
			continue
		}
		if platform == domain.PlatformEbay {
			errs = append(errs, fmt.Errorf("dispatch.runners: ebay is delisted via its API, not a runner"))
		}
		if runner.Command == "" {
			errs = append(errs, fmt.Errorf("dispatch.runners.%s.command is required", name))
		}
	}

	return errors.Join(errs...)
}
