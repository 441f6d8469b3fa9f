package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DBDriverSQLite   = "sqlite3"
	DBDriverPostgres = "postgres"
	DBDriverMemory   = "memory"

	HistoryDriverFile   = "file"
	HistoryDriverSQLite = "sqlite"
	HistoryDriverMemory = "memory"
)

// Config is shared by the quiz service and the terminal client. Each binary
// reads the fields it needs.
type Config struct {
	HTTPAddr       string        `yaml:"http_addr"`
	DBDriver       string        `yaml:"db_driver"`
	DBDSN          string        `yaml:"db_dsn"`
	CORSOrigins    []string      `yaml:"cors_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	APIBaseURL    string `yaml:"api_base_url"`
	HistoryDriver string `yaml:"history_driver"`
	HistoryPath   string `yaml:"history_path"`
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":5000"
		}
	}
	return Config{
		HTTPAddr:       addr,
		DBDriver:       envOr("DB_DRIVER", DBDriverSQLite),
		DBDSN:          envOr("DB_DSN", ""),
		CORSOrigins:    csvOr("CORS_ORIGINS", "*"),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 15*time.Second),
		APIBaseURL:     envOr("API_BASE_URL", "http://localhost:5000/api"),
		HistoryDriver:  envOr("HISTORY_DRIVER", HistoryDriverFile),
		HistoryPath:    envOr("HISTORY_PATH", defaultHistoryPath()),
	}
}

// Load reads the environment and then overlays the YAML file at path, if any.
// Keys present in the file win over the environment.
func Load(path string) (Config, error) {
	cfg := FromEnv()
	if strings.TrimSpace(path) == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := overlay(&cfg, data); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func overlay(cfg *Config, data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case DBDriverSQLite, DBDriverPostgres, DBDriverMemory:
	default:
		return fmt.Errorf("unsupported db_driver %q", c.DBDriver)
	}
	switch c.HistoryDriver {
	case HistoryDriverFile, HistoryDriverSQLite, HistoryDriverMemory:
	default:
		return fmt.Errorf("unsupported history_driver %q", c.HistoryDriver)
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("http_addr must not be empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	return nil
}

func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".quizdoc"
	}
	return filepath.Join(dir, "quizdoc")
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
