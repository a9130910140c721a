package server

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rigsync/rigsync/internal/session"
)

// Config holds bridge server configuration.
type Config struct {
	// Network settings
	ListenAddr  string `yaml:"listen_addr"`
	MaxSessions int    `yaml:"max_sessions"`

	// Message settings
	ReadLimit    int64         `yaml:"read_limit"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Per-session component settings
	Session session.Config `yaml:"session"`
}

// DefaultConfig returns the stock bridge configuration.
func DefaultConfig() Config {
	return Config{
		ListenAddr:   "127.0.0.1:8080",
		MaxSessions:  64,
		ReadLimit:    64 * 1024,
		WriteTimeout: 10 * time.Second,
		LogLevel:     "info",
		Session:      session.DefaultConfig(),
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}
