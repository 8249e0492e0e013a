// Package config loads the menu app configuration.
//
// Values come from, in increasing precedence: built-in defaults, an
// optional YAML file, the process environment (after a .env file in the
// working directory is loaded, if present), and finally command-line
// flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/littlelemon/internal/source"
	"github.com/idilsaglam/littlelemon/internal/status"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverJSON   = "json"
	DriverCBOR   = "cbor"
	DriverMemory = "memory"
	DriverNone   = "none"
)

type Config struct {
	Remote RemoteConfig `yaml:"remote"`
	Store  StoreConfig  `yaml:"store"`
	Status StatusConfig `yaml:"status"`
	Log    LogConfig    `yaml:"log"`
	UI     UIConfig     `yaml:"ui"`
	Serve  ServeConfig  `yaml:"serve"`
}

type RemoteConfig struct {
	URL string `yaml:"url"`

	// Timeout bounds the single GET. Zero waits indefinitely.
	Timeout time.Duration `yaml:"timeout"`

	// Disabled skips the remote tier entirely.
	Disabled bool `yaml:"disabled"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`

	// Path defaults per driver; see StorePath.
	Path string `yaml:"path"`
}

type StatusConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type LogConfig struct {
	Level string `yaml:"level"`

	// File receives logs. Empty means stderr for plain commands and
	// nowhere while the interactive screen owns the terminal.
	File string `yaml:"file"`
}

type UIConfig struct {
	Theme string `yaml:"theme"`
}

type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Remote: RemoteConfig{URL: source.DefaultURL},
		Store:  StoreConfig{Driver: DriverSQLite},
		Status: StatusConfig{TTL: status.DefaultTTL},
		Log:    LogConfig{Level: "info"},
		UI:     UIConfig{Theme: "classic"},
		Serve:  ServeConfig{Addr: ":8081"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is fine.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from MENU_* variables looked up via getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	set := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set("MENU_URL", &c.Remote.URL)
	set("MENU_STORE", &c.Store.Driver)
	set("MENU_STORE_PATH", &c.Store.Path)
	set("MENU_LOG_LEVEL", &c.Log.Level)
	set("MENU_LOG_FILE", &c.Log.File)
	set("MENU_THEME", &c.UI.Theme)
	set("MENU_ADDR", &c.Serve.Addr)

	if v := strings.TrimSpace(getenv("MENU_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: MENU_TIMEOUT: %w", err)
		}
		c.Remote.Timeout = d
	}
	if v := strings.TrimSpace(getenv("MENU_OFFLINE")); v != "" {
		off, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: MENU_OFFLINE: %w", err)
		}
		c.Remote.Disabled = off
	}
	return nil
}

// StorePath returns the configured path or the driver's default.
func (c Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	switch c.Store.Driver {
	case DriverJSON:
		return "menu.json"
	case DriverCBOR:
		return "menu.cbor"
	default:
		return "littlelemon.db"
	}
}

// Validate rejects values the rest of the program cannot act on.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverJSON, DriverCBOR, DriverMemory, DriverNone:
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.UI.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("config: unknown theme %q", c.UI.Theme)
	}
	if !c.Remote.Disabled && c.Remote.URL == "" {
		return errors.New("config: remote.url is empty (set remote.disabled to run offline)")
	}
	if c.Remote.Timeout < 0 {
		return errors.New("config: remote.timeout is negative")
	}
	return nil
}
