package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	GitHub   GitHubConfig   `yaml:"github"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Sync     SyncConfig     `yaml:"sync"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	// URL overrides the individual fields when set.
	URL string `yaml:"url"`
}

func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// GitHubConfig holds either app credentials (preferred) or a personal token.
type GitHubConfig struct {
	Org            string `yaml:"org"`
	AppID          int64  `yaml:"app_id"`
	InstallationID int64  `yaml:"installation_id"`
	PrivateKeyPath string `yaml:"private_key_path"`
	Token          string `yaml:"token"`
}

// HasAppCredentials reports whether the full app-credential trio is present.
func (g GitHubConfig) HasAppCredentials() bool {
	return g.AppID != 0 && g.InstallationID != 0 && g.PrivateKeyPath != ""
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
	Enabled    bool   `yaml:"enabled"`
}

type SyncConfig struct {
	PageSize       int           `yaml:"page_size"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Retry          RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv lets bare environment variables stand in for a config file, so a
// run can be configured entirely from the environment.
func (c *Config) applyEnv() error {
	if v := os.Getenv("ORGSYNC_DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("ORGSYNC_ORG"); v != "" {
		c.GitHub.Org = v
	}
	if v := os.Getenv("ORGSYNC_GITHUB_APP_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse ORGSYNC_GITHUB_APP_ID %q: %w", v, err)
		}
		c.GitHub.AppID = id
	}
	if v := os.Getenv("ORGSYNC_GITHUB_INSTALLATION_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse ORGSYNC_GITHUB_INSTALLATION_ID %q: %w", v, err)
		}
		c.GitHub.InstallationID = id
	}
	if v := os.Getenv("ORGSYNC_GITHUB_PRIVATE_KEY_PATH"); v != "" {
		c.GitHub.PrivateKeyPath = v
	}
	if v := os.Getenv("ORGSYNC_GITHUB_TOKEN"); v != "" {
		c.GitHub.Token = v
	}
	if v := os.Getenv("ORGSYNC_RABBITMQ_URL"); v != "" {
		c.RabbitMQ.URL = v
		c.RabbitMQ.Enabled = true
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "orgsync"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "sync_events"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "dashboard_sync_events"
	}
	if c.Sync.PageSize == 0 {
		c.Sync.PageSize = 100
	}
	if c.Sync.RequestTimeout == 0 {
		c.Sync.RequestTimeout = 30 * time.Second
	}
	if c.Sync.Retry.MaxAttempts == 0 {
		c.Sync.Retry.MaxAttempts = 3
	}
	if c.Sync.Retry.InitialBackoff == 0 {
		c.Sync.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Sync.Retry.MaxBackoff == 0 {
		c.Sync.Retry.MaxBackoff = 30 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate runs before any network or database call; a failure here aborts
// the whole run.
func (c *Config) Validate() error {
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.DBName == "") {
		return errors.New("database connection not configured (set ORGSYNC_DATABASE_URL)")
	}
	if c.GitHub.Org == "" {
		return errors.New("github organization not configured (set ORGSYNC_ORG or pass it as an argument)")
	}
	if !c.GitHub.HasAppCredentials() && c.GitHub.Token == "" {
		return errors.New("github credentials not configured: need app id, installation id and private key path, or a token")
	}
	if c.GitHub.HasAppCredentials() {
		if _, err := os.Stat(c.GitHub.PrivateKeyPath); err != nil {
			return fmt.Errorf("github private key: %w", err)
		}
	}
	return nil
}
