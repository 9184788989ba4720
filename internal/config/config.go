package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileEnv names the environment variable pointing at an optional YAML file.
const ConfigFileEnv = "LEDGER_CONFIG"

type Config struct {
	Postgres PostgresConfig `koanf:"postgres"`
	Server   ServerConfig   `koanf:"server"`
	Store    StoreConfig    `koanf:"store"`
	Operator OperatorConfig `koanf:"operator"`
	Log      LogConfig      `koanf:"log"`
}

type PostgresConfig struct {
	Address  string `koanf:"address"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"sslmode"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type StoreConfig struct {
	// Timeout bounds every ledger operation.
	Timeout      time.Duration `koanf:"timeout"`
	MaxOpenConns int           `koanf:"maxopenconns"`
	// ConnectWait caps how long start-up keeps pinging an unreachable database.
	ConnectWait time.Duration `koanf:"connectwait"`
}

type OperatorConfig struct {
	Workers   int `koanf:"workers"`
	QueueSize int `koanf:"queuesize"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"postgres.address":   "localhost",
	"postgres.port":      "5433",
	"postgres.db":        "postgres",
	"postgres.username":  "postgres",
	"postgres.password":  "testpassword",
	"postgres.sslmode":   "disable",
	"server.port":        "9446",
	"store.timeout":      "5s",
	"store.maxopenconns": 10,
	"store.connectwait":  "30s",
	"operator.workers":   4,
	"operator.queuesize": 1000,
	"log.level":          "info",
}

// ProcessEnvironmentVariables loads the configuration from defaults, an
// optional .env file, the file named by LEDGER_CONFIG and the environment.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load(os.Getenv(ConfigFileEnv))
}

// Load is ProcessEnvironmentVariables with an explicit YAML file path. An
// empty path skips the file layer.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// POSTGRES_ADDRESS -> postgres.address
	err := k.Load(env.Provider("POSTGRES_", ".", func(s string) string {
		return "postgres." + strings.ToLower(strings.TrimPrefix(s, "POSTGRES_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load postgres environment: %w", err)
	}

	// LEDGER_STORE_TIMEOUT -> store.timeout
	err = k.Load(env.Provider("LEDGER_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "LEDGER_")), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load ledger environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("store.timeout must be positive, got %s", c.Store.Timeout)
	}
	if c.Operator.Workers < 1 {
		return fmt.Errorf("operator.workers must be at least 1, got %d", c.Operator.Workers)
	}
	return nil
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Postgres.Username, c.Postgres.Password),
		Host:     c.Postgres.Address + ":" + c.Postgres.Port,
		Path:     "/" + c.Postgres.DB,
		RawQuery: "sslmode=" + url.QueryEscape(c.Postgres.SSLMode),
	}
	return u.String()
}
