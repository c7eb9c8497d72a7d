package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gofhir/models"
	"github.com/gofhir/models/pkg/logger"
)

const envPrefix = "FHIRGEN"

// Config holds the settings of every command. Values come from flags,
// FHIRGEN_* environment variables and an optional fhirgen.yaml, in that
// order of precedence.
type Config struct {
	ConfigFile string `mapstructure:"config"`
	Version    string `mapstructure:"version"`
	LogLevel   string `mapstructure:"log-level"`

	// Package cache and package sources for generate.
	Packages    string `mapstructure:"packages"`
	Core        string `mapstructure:"core"`
	PackageFile string `mapstructure:"package-file"`

	Out       string   `mapstructure:"out"`
	Package   string   `mapstructure:"package"`
	Resources []string `mapstructure:"resources"`
	DataTypes []string `mapstructure:"datatypes"`
	OpenTypes []string `mapstructure:"open-types"`

	Output    string `mapstructure:"output"`
	Strict    bool   `mapstructure:"strict"`
	MaxIssues int    `mapstructure:"max-issues"`
	Workers   int    `mapstructure:"workers"`
}

// loadConfig resolves the configuration of cmd after its flags are parsed.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return nil, err
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("fhirgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// release returns the FHIR release selected by cfg.Version.
func (c *Config) release() (*models.Release, error) {
	v, err := models.ParseVersion(c.Version)
	if err != nil {
		return nil, err
	}
	return models.ForVersion(v)
}

func (c *Config) logger(cmd *cobra.Command) *logger.Logger {
	return logger.New(cmd.ErrOrStderr(), logger.ParseLevel(c.LogLevel))
}
