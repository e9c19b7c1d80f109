package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source modes.
const (
	ModeDemo    = "demo"
	ModeCatalog = "catalog"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

// Config holds all application configuration.
type Config struct {
	Source struct {
		Mode        string `yaml:"mode"`
		CatalogPath string `yaml:"catalog_path"`
	} `yaml:"source"`
	Synthesis struct {
		Months        int  `yaml:"months"`
		Deterministic bool `yaml:"deterministic"`
	} `yaml:"synthesis"`
	Watch struct {
		ASINs       []string `yaml:"asins"`
		StateFile   string   `yaml:"state_file"`
		Concurrency int      `yaml:"concurrency"`
	} `yaml:"watch"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
		DigestCron  string `yaml:"digest_cron"`
	} `yaml:"schedule"`
	Database struct {
		Driver      string `yaml:"driver"`
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"database"`
}

// Load reads an optional .env file, then config from a YAML file, then applies
// environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SOURCE_MODE"); v != "" {
		cfg.Source.Mode = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Source.CatalogPath = v
	}
	if v := os.Getenv("WATCH_ASINS"); v != "" {
		cfg.Watch.ASINs = splitList(v)
	}
	if v := os.Getenv("WATCH_STATE_FILE"); v != "" {
		cfg.Watch.StateFile = v
	}
	if v := os.Getenv("SYNTHESIS_MONTHS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SYNTHESIS_MONTHS: %w", err)
		}
		cfg.Synthesis.Months = n
	}
	if v := os.Getenv("DETERMINISTIC"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("DETERMINISTIC: %w", err)
		}
		cfg.Synthesis.Deterministic = b
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("CRON_DIGEST"); v != "" {
		cfg.Schedule.DigestCron = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.PostgresDSN = v
	}

	// Defaults
	if cfg.Source.Mode == "" {
		cfg.Source.Mode = ModeDemo
	}
	if cfg.Synthesis.Months == 0 {
		cfg.Synthesis.Months = 12
	}
	if cfg.Watch.StateFile == "" {
		cfg.Watch.StateFile = "data/watch_state.json"
	}
	if cfg.Watch.Concurrency == 0 {
		cfg.Watch.Concurrency = 4
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 6 * * *"
	}
	if cfg.Schedule.DigestCron == "" {
		cfg.Schedule.DigestCron = "0 0 9 * * 1"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverSQLite
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/listing_sentinel.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.Source.Mode {
	case ModeDemo:
	case ModeCatalog:
		if c.Source.CatalogPath == "" {
			return fmt.Errorf("source.catalog_path is required in catalog mode")
		}
	default:
		return fmt.Errorf("source.mode must be %q or %q, got %q", ModeDemo, ModeCatalog, c.Source.Mode)
	}
	if c.Synthesis.Months < 1 {
		return fmt.Errorf("synthesis.months must be positive")
	}
	if c.Watch.Concurrency < 1 {
		return fmt.Errorf("watch.concurrency must be positive")
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverNone:
	case DriverPostgres:
		if c.Database.PostgresDSN == "" {
			return fmt.Errorf("database.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("database.driver %q is not supported", c.Database.Driver)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
