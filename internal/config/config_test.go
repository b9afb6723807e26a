package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Path != "tasks.json" {
		t.Errorf("Storage.Path = %q, want tasks.json", cfg.Storage.Path)
	}
	if cfg.Logging.Enabled {
		t.Error("logging should be disabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.File != "" {
		t.Errorf("Logging.File = %q, want empty", cfg.Logging.File)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if errs := Default().Validate(); len(errs) > 0 {
		t.Errorf("default config should validate, got %v", errs)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Path != "tasks.json" {
		t.Errorf("Storage.Path = %q, want tasks.json", cfg.Storage.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("storage.path", "/tmp/custom.json")
	viper.Set("logging.enabled", true)
	viper.Set("logging.level", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Path != "/tmp/custom.json" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("logging.level", "verbose")

	_, err := Load()
	if err == nil {
		t.Fatal("Load with invalid level should fail")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("error should name the field, got %q", err.Error())
	}
}

func TestValidate_EmptyStoragePath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = "   "

	errs := cfg.Validate()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Field != "storage.path" {
		t.Errorf("Field = %q, want storage.path", errs[0].Field)
	}
}

func TestValidate_NullByteInPath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = "tasks\x00.json"

	if errs := cfg.Validate(); len(errs) == 0 {
		t.Error("path with null byte should fail validation")
	}
}

func TestValidate_LogLevelCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "DEBUG"

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("upper-case level should validate, got %v", errs)
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "storage.path", Value: "", Message: "cannot be empty"},
		{Field: "logging.level", Value: "verbose", Message: "must be one of: debug, info, warn, error"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("multi-error message should carry a count, got %q", msg)
	}
	if !strings.Contains(msg, "storage.path") || !strings.Contains(msg, "logging.level") {
		t.Errorf("message should list each field, got %q", msg)
	}

	single := ValidationErrors{errs[0]}
	if strings.Contains(single.Error(), "validation errors") {
		t.Errorf("single error should not use the list form, got %q", single.Error())
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "tasktracker")
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir = %q, want %q", got, want)
	}
}

func TestConfigDir_HomeFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}
	want := filepath.Join(home, ".config", "tasktracker")
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir = %q, want %q", got, want)
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "tasktracker", "config.yaml")
	if got := ConfigFile(); got != want {
		t.Errorf("ConfigFile = %q, want %q", got, want)
	}
}
