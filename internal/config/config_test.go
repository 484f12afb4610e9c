package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{Env: "production", LogLevel: "info", StrictReferences: true, FHIRVersion: "R4"}
	if *cfg != want {
		t.Errorf("expected defaults %+v, got %+v", want, *cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("FHIRCODEC_WORKERS", "4")
	t.Setenv("FHIRCODEC_ENV", "Development")
	t.Setenv("FHIRCODEC_STRICT_REFERENCES", "false")
	t.Setenv("FHIRCODEC_FHIR_VERSION", "stu3")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Workers)
	}
	if !cfg.IsDev() {
		t.Errorf("expected development, got %s", cfg.Env)
	}
	if cfg.StrictReferences {
		t.Error("expected lenient references")
	}
	if cfg.FHIRVersion != "STU3" {
		t.Errorf("expected STU3, got %s", cfg.FHIRVersion)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("FHIRCODEC_WORKERS", "4")
	t.Setenv("FHIRCODEC_INDENT", "2")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--workers=2", "--log-level=debug"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("expected flag to win, got %d workers", cfg.Workers)
	}
	if cfg.Indent != 2 {
		t.Errorf("expected indent 2 from env, got %d", cfg.Indent)
	}
	if cfg.IndentString() != "  " {
		t.Errorf("expected two spaces, got %q", cfg.IndentString())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %s", cfg.LogLevel)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fhircodec.env")
	if err := os.WriteFile(path, []byte("DISALLOW_UNKNOWN_FIELDS=true\nLOG_LEVEL=warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.DisallowUnknownFields {
		t.Error("expected unknown fields to be disallowed")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected warn, got %s", cfg.LogLevel)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.env")}); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fs); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Env: "test", LogLevel: "info", FHIRVersion: "R4"}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"env", func(c *Config) { c.Env = "staging" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"workers", func(c *Config) { c.Workers = -1 }},
		{"indent", func(c *Config) { c.Indent = 9 }},
		{"fhir version", func(c *Config) { c.FHIRVersion = "R5" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			if err := c.Validate(); err == nil {
				t.Errorf("expected error for %+v", c)
			}
		})
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
