package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all server configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	JWT         JWTConfig         `yaml:"jwt"`
	Logging     LoggingConfig     `yaml:"logging"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	GoogleBooks GoogleBooksConfig `yaml:"google_books"`
}

// ServerConfig contains HTTP listener settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Database        string        `yaml:"database"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	Timeout         time.Duration `yaml:"timeout"`
}

// RedisConfig contains cache settings; empty URL disables caching
type RedisConfig struct {
	URL      string        `yaml:"url"`
	Prefix   string        `yaml:"prefix"`
	StatsTTL time.Duration `yaml:"stats_ttl"`
}

// JWTConfig contains token signing settings
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	Issuer     string        `yaml:"issuer"`
	Expiration time.Duration `yaml:"expiration"`
}

// LoggingConfig controls the logger package
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// OpenAIConfig configures the hosted completion collaborator
type OpenAIConfig struct {
	APIKey    string  `yaml:"api_key"`
	Model     string  `yaml:"model"`
	MaxTokens int64   `yaml:"max_tokens"`
	Enabled   bool    `yaml:"enabled"`
	Temp      float64 `yaml:"temperature"`
}

// GoogleBooksConfig configures the public book metadata collaborator
type GoogleBooksConfig struct {
	BaseURL    string  `yaml:"base_url"`
	MaxResults int     `yaml:"max_results"`
	RatePerSec float64 `yaml:"rate_per_sec"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "bookify",
			Database:        "bookify_dev",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 5 * time.Minute,
			ConnMaxIdleTime: 2 * time.Minute,
			Timeout:         5 * time.Second,
		},
		Redis: RedisConfig{
			Prefix:   "bookify",
			StatsTTL: 5 * time.Minute,
		},
		JWT: JWTConfig{
			Issuer:     "bookify",
			Expiration: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
		OpenAI: OpenAIConfig{
			Model:     "gpt-4o-mini",
			MaxTokens: 1000,
			Temp:      0.7,
		},
		GoogleBooks: GoogleBooksConfig{
			BaseURL:    "https://www.googleapis.com/books/v1",
			MaxResults: 40,
			RatePerSec: 2,
		},
	}
}

// Load loads configuration from file, falling back to defaults.
// Environment variables override secrets so they stay out of YAML.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required (set jwt.secret or BOOKIFY_JWT_SECRET)")
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BOOKIFY_JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
		cfg.OpenAI.Enabled = true
	}
	if v := os.Getenv("GOOGLE_BOOKS_BASE_URL"); v != "" {
		cfg.GoogleBooks.BaseURL = v
	}
}

// findConfigFile searches for config in standard locations
func findConfigFile() string {
	locations := []string{
		"./bookify.yaml",
		"./configs/development.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "bookify", "server.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}
