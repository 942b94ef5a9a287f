package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are mapped
// onto config keys. A double underscore separates nested keys, so
// RECEIPTME_SANDBOX__ADDR sets sandbox.addr.
const EnvPrefix = "RECEIPTME_"

const DefaultBaseURL = "https://cse437.graysonmartin.net"

type Config struct {
	BaseURL        string        `koanf:"base_url"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	DevicePath     string        `koanf:"device_path"`
	LogLevel       string        `koanf:"log_level"`
	QueueSize      int           `koanf:"queue_size"`
	Sandbox        SandboxConfig `koanf:"sandbox"`
}

type SandboxConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

func defaults() map[string]interface{} {
	devicePath := "receiptme.db"
	if dir, err := os.UserConfigDir(); err == nil {
		devicePath = filepath.Join(dir, "receiptme", "device.db")
	}

	return map[string]interface{}{
		"base_url":              DefaultBaseURL,
		"request_timeout":       "60s",
		"device_path":           devicePath,
		"log_level":             "info",
		"queue_size":            16,
		"sandbox.addr":          ":9446",
		"sandbox.read_timeout":  "30s",
		"sandbox.write_timeout": "30s",
	}
}

// Load layers defaults, the optional YAML file at path and the environment,
// in that order. A .env file in the working directory is read first when
// present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("config: base_url is required")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: request_timeout must be positive")
	}
	if c.DevicePath == "" {
		return errors.New("config: device_path is required")
	}
	if c.QueueSize < 1 {
		c.QueueSize = 1
	}
	return nil
}
