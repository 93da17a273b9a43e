// Package config loads uiforge settings from defaults, an optional TOML file
// and UIFORGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"uiforge/internal/datatable"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes every environment override, e.g. UIFORGE_TABLE_LOCALE.
const EnvPrefix = "UIFORGE"

// Config holds application configuration.
type Config struct {
	Table     TableConfig     `mapstructure:"table"`
	Demo      DemoConfig      `mapstructure:"demo"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Theme     ThemeConfig     `mapstructure:"theme"`
}

// TableConfig holds data table behavior.
type TableConfig struct {
	EmptyMessage    string `mapstructure:"empty_message"`
	Locale          string `mapstructure:"locale"`
	SelectionPolicy string `mapstructure:"selection_policy"`
}

// DemoConfig holds showcase settings.
type DemoConfig struct {
	LoadingDelay time.Duration `mapstructure:"loading_delay"`
	DataFile     string        `mapstructure:"data_file"`
}

// LogConfig holds the log sink. An empty file disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

// TelemetryConfig holds the OTLP exporter target. An empty endpoint disables export.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// ThemeConfig overrides UI colors (ANSI 256 codes or hex).
type ThemeConfig struct {
	Accent    string `mapstructure:"accent"`
	Highlight string `mapstructure:"highlight"`
	Muted     string `mapstructure:"muted"`
}

// Load reads configuration. path wins over UIFORGE_CONFIG; with neither, the
// file is looked up as config.toml in the user config dir and may be absent.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("table.empty_message", "")
	v.SetDefault("table.locale", "en")
	v.SetDefault("table.selection_policy", "preserve")
	v.SetDefault("demo.loading_delay", "2s")
	v.SetDefault("demo.data_file", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.debug", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "uiforge")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.highlight", "")
	v.SetDefault("theme.muted", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "uiforge"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Standard OTel variables apply when no UIFORGE_ override is set.
	if err := v.BindEnv("telemetry.endpoint", EnvPrefix+"_TELEMETRY_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv("telemetry.service_name", EnvPrefix+"_TELEMETRY_SERVICE_NAME", "OTEL_SERVICE_NAME"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that cannot be expressed as defaults.
func (c Config) Validate() error {
	if c.Demo.LoadingDelay < 0 {
		return fmt.Errorf("demo.loading_delay: must not be negative, got %s", c.Demo.LoadingDelay)
	}
	if _, err := c.Locale(); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}

// Locale parses table.locale. An empty value yields language.Und.
func (c Config) Locale() (language.Tag, error) {
	if strings.TrimSpace(c.Table.Locale) == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Table.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("table.locale %q: %w", c.Table.Locale, err)
	}
	return tag, nil
}

// Policy parses table.selection_policy.
func (c Config) Policy() (datatable.SelectionPolicy, error) {
	p, ok := datatable.ParseSelectionPolicy(c.Table.SelectionPolicy)
	if !ok {
		return p, fmt.Errorf("table.selection_policy %q: want preserve or reset", c.Table.SelectionPolicy)
	}
	return p, nil
}
