package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idilsaglam/littlelemon/internal/source"
)

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
	if cfg.Remote.URL != source.DefaultURL {
		t.Errorf("default URL = %q", cfg.Remote.URL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	doc := `
remote:
  url: http://localhost:8081/menu
  timeout: 2s
store:
  driver: cbor
status:
  ttl: 5s
ui:
  theme: neon
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote.URL != "http://localhost:8081/menu" || cfg.Remote.Timeout != 2*time.Second {
		t.Errorf("remote = %+v", cfg.Remote)
	}
	if cfg.Store.Driver != DriverCBOR || cfg.StorePath() != "menu.cbor" {
		t.Errorf("store = %+v path %s", cfg.Store, cfg.StorePath())
	}
	if cfg.Status.TTL != 5*time.Second {
		t.Errorf("ttl = %v", cfg.Status.TTL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unset keys should keep defaults, log level = %q", cfg.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("want error for missing explicit config file")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MENU_URL":     "http://example.test/menu",
		"MENU_STORE":   "json",
		"MENU_TIMEOUT": "1500ms",
		"MENU_OFFLINE": "true",
	}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatal(err)
	}
	if cfg.Remote.URL != env["MENU_URL"] || cfg.Store.Driver != DriverJSON {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Remote.Timeout != 1500*time.Millisecond || !cfg.Remote.Disabled {
		t.Errorf("remote = %+v", cfg.Remote)
	}

	bad := Default()
	if err := bad.ApplyEnv(func(k string) string {
		if k == "MENU_TIMEOUT" {
			return "soon"
		}
		return ""
	}); err == nil {
		t.Error("want error for unparsable MENU_TIMEOUT")
	}
}

func TestApplyEnvOffline(t *testing.T) {
	tests := []struct {
		value    string
		yaml     bool
		want     bool
		wantsErr bool
	}{
		{"", true, true, false},
		{"1", false, true, false},
		{"TRUE", false, true, false},
		{"0", true, false, false},
		{"false", true, false, false},
		{"maybe", false, false, true},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Remote.Disabled = tt.yaml
		err := cfg.ApplyEnv(func(k string) string {
			if k == "MENU_OFFLINE" {
				return tt.value
			}
			return ""
		})
		if (err != nil) != tt.wantsErr {
			t.Errorf("MENU_OFFLINE=%q: err = %v", tt.value, err)
			continue
		}
		if !tt.wantsErr && cfg.Remote.Disabled != tt.want {
			t.Errorf("MENU_OFFLINE=%q over %v: disabled = %v, want %v", tt.value, tt.yaml, cfg.Remote.Disabled, tt.want)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("MENU_TEST_DOTENV=sqlite\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MENU_TEST_DOTENV", "")
	os.Unsetenv("MENU_TEST_DOTENV")
	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("MENU_TEST_DOTENV"); got != "sqlite" {
		t.Errorf("MENU_TEST_DOTENV = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"driver":  func(c *Config) { c.Store.Driver = "postgres" },
		"level":   func(c *Config) { c.Log.Level = "loud" },
		"theme":   func(c *Config) { c.UI.Theme = "pink" },
		"url":     func(c *Config) { c.Remote.URL = "" },
		"timeout": func(c *Config) { c.Remote.Timeout = -time.Second },
	}
	for name, mutate := range tests {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: want validation error", name)
		}
	}

	offline := Default()
	offline.Remote.URL = ""
	offline.Remote.Disabled = true
	if err := offline.Validate(); err != nil {
		t.Errorf("offline without URL should validate: %v", err)
	}
}
