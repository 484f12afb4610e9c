package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by Load, e.g.
// FHIRCODEC_LOG_LEVEL.
const EnvPrefix = "FHIRCODEC"

type Config struct {
	Env                   string `mapstructure:"ENV"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	Workers               int    `mapstructure:"WORKERS"`
	StrictReferences      bool   `mapstructure:"STRICT_REFERENCES"`
	DisallowUnknownFields bool   `mapstructure:"DISALLOW_UNKNOWN_FIELDS"`
	Indent                int    `mapstructure:"INDENT"`
	FHIRVersion           string `mapstructure:"FHIR_VERSION"`
}

// flag names by config key
var flagNames = map[string]string{
	"ENV":                     "env",
	"LOG_LEVEL":               "log-level",
	"WORKERS":                 "workers",
	"STRICT_REFERENCES":       "strict-references",
	"DISALLOW_UNKNOWN_FIELDS": "disallow-unknown-fields",
	"INDENT":                  "indent",
	"FHIR_VERSION":            "fhir-version",
}

// RegisterFlags defines the command line flags Load reads.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default .env if present)")
	fs.String(flagNames["ENV"], "production", "environment: development, production or test")
	fs.String(flagNames["LOG_LEVEL"], "info", "log level")
	fs.Int(flagNames["WORKERS"], 0, "parallel NDJSON decoders (0 uses all CPUs)")
	fs.Bool(flagNames["STRICT_REFERENCES"], true, "fail on references that do not resolve")
	fs.Bool(flagNames["DISALLOW_UNKNOWN_FIELDS"], false, "reject fields the shape does not declare")
	fs.Int(flagNames["INDENT"], 0, "indent JSON output by this many spaces")
	fs.String(flagNames["FHIR_VERSION"], "R4", "FHIR release of the documents: R4 or STU3")
}

// Load reads the configuration from, in order of precedence, flags set on
// fs, FHIRCODEC_* environment variables, the config file and defaults.
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("WORKERS", 0)
	v.SetDefault("STRICT_REFERENCES", true)
	v.SetDefault("DISALLOW_UNKNOWN_FIELDS", false)
	v.SetDefault("INDENT", 0)
	v.SetDefault("FHIR_VERSION", "R4")

	for key := range flagNames {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	configFile := ""
	if fs != nil {
		for key, name := range flagNames {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
		if f := fs.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		// .env is optional
		v.SetConfigFile(".env")
		_ = v.ReadInConfig()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Env = strings.ToLower(cfg.Env)
	cfg.FHIRVersion = strings.ToUpper(cfg.FHIRVersion)
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

// IndentString returns the indentation unit for JSON output, "" for compact
// output.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}

// Validate checks that the configuration values are in range.
func (c *Config) Validate() error {
	switch c.Env {
	case "development", "production", "test":
	default:
		return fmt.Errorf("ENV must be \"development\", \"production\" or \"test\", got %q", c.Env)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("WORKERS must not be negative, got %d", c.Workers)
	}
	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("INDENT must be between 0 and 8, got %d", c.Indent)
	}
	switch c.FHIRVersion {
	case "R4", "STU3":
	default:
		return fmt.Errorf("FHIR_VERSION must be \"R4\" or \"STU3\", got %q", c.FHIRVersion)
	}
	return nil
}
