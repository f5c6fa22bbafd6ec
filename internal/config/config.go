// Package config loads tzconv settings from a YAML file and TZCONV_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/chrisedwards/tzconv/internal/convert"
)

const (
	envPrefix  = "TZCONV"
	configName = "tzconv"
)

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml", "csv"}

// Config holds application configuration loaded from YAML.
type Config struct {
	Timezone    string   `yaml:"timezone" mapstructure:"timezone"`
	Targets     []string `yaml:"targets" mapstructure:"targets"`
	Format      string   `yaml:"format" mapstructure:"format"`
	OnError     string   `yaml:"on_error" mapstructure:"on_error"`
	StrictNaive bool     `yaml:"strict_naive" mapstructure:"strict_naive"`
	ZoneinfoDir string   `yaml:"zoneinfo_dir,omitempty" mapstructure:"zoneinfo_dir"`
	Include     []string `yaml:"include,omitempty" mapstructure:"include"`
	Exclude     []string `yaml:"exclude,omitempty" mapstructure:"exclude"`
	LogLevel    string   `yaml:"log_level" mapstructure:"log_level"`

	configFile string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Timezone: "UTC",
		Targets:  []string{"America/New_York", "Europe/London", "Asia/Tokyo", "Australia/Sydney"},
		Format:   "text",
		OnError:  "abort",
		LogLevel: "warn",
	}
}

// DefaultConfigPath returns ~/.config/tzconv/tzconv.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	path, _ := filepath.Abs(filepath.Join(home, ".config", configName, configName+".yaml"))
	return path
}

// Load reads configuration from path. An empty path searches the default
// location and falls back to defaults if no file exists there; an explicit
// path must exist. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault("timezone", def.Timezone)
	v.SetDefault("targets", def.Targets)
	v.SetDefault("format", def.Format)
	v.SetDefault("on_error", def.OnError)
	v.SetDefault("strict_naive", def.StrictNaive)
	v.SetDefault("zoneinfo_dir", "")
	v.SetDefault("include", []string{})
	v.SetDefault("exclude", []string{})
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(filepath.Dir(DefaultConfigPath()))
		v.SetConfigName(configName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.configFile = v.ConfigFileUsed()
	return cfg, nil
}

// ConfigFile returns the path of the file the config was read from, or ""
// when only defaults and environment were used.
func (c *Config) ConfigFile() string {
	return c.configFile
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks zones, format and error policy.
func (c *Config) Validate() error {
	db := convert.NewDatabase()
	if _, err := db.Lookup(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	for _, target := range c.Targets {
		if _, err := db.Lookup(target); err != nil {
			return fmt.Errorf("invalid target: %w", err)
		}
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q: want one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if _, err := convert.ParseErrorPolicy(c.OnError); err != nil {
		return err
	}
	return nil
}

// ErrorPolicy returns the batch error policy named by OnError.
func (c *Config) ErrorPolicy() convert.ErrorPolicy {
	p, _ := convert.ParseErrorPolicy(c.OnError)
	return p
}

// NaivePolicy returns the naive handling selected by StrictNaive.
func (c *Config) NaivePolicy() convert.NaivePolicy {
	if c.StrictNaive {
		return convert.NaiveReject
	}
	return convert.NaiveAssumeLocal
}
