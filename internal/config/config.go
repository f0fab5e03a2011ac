package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DocsRsConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CratesIOConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RenderConfig struct {
	// RewriteLinks controls whether the MCP layer rewrites rustdoc intra-doc
	// links in returned markdown to rsdoc:// resource URIs.
	RewriteLinks bool `mapstructure:"rewrite_links"`
}

type Config struct {
	UserAgent string         `mapstructure:"user_agent"`
	DocsRs    DocsRsConfig   `mapstructure:"docs_rs"`
	CratesIO  CratesIOConfig `mapstructure:"crates_io"`
	Render    RenderConfig   `mapstructure:"render"`
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "rsdoc"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "rsdoc"))
	}

	viper.SetDefault("user_agent", "rsdoc/0.1.0")
	viper.SetDefault("docs_rs.base_url", "https://docs.rs")
	viper.SetDefault("docs_rs.timeout", "120s")
	viper.SetDefault("crates_io.base_url", "https://crates.io")
	viper.SetDefault("crates_io.timeout", "5s")
	viper.SetDefault("render.rewrite_links", true)

	viper.SetEnvPrefix("RSDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
