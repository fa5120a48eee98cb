// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/beatzboy/site/internal/domain/model"
)

// ErrInvalidConfig indicates a configuration value was rejected.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to every configuration key when read from the environment.
const EnvPrefix = "BEATZBOY"

// Configuration keys. Environment variables are EnvPrefix + "_" + the key
// upper-cased with dashes replaced by underscores.
const (
	KeyListenAddr        = "listen-addr"
	KeyContentPath       = "content-path"
	KeyLogLevel          = "log-level"
	KeyLogFormat         = "log-format"
	KeySplashEnabled     = "splash-enabled"
	KeyHomeSplashDelay   = "home-splash-delay"
	KeyGiftedSplashDelay = "gifted-splash-delay"
	KeyShutdownTimeout   = "shutdown-timeout"
)

// Config holds the application configuration.
type Config struct {
	ListenAddr        string
	ContentPath       string
	LogLevel          slog.Level
	LogFormat         string
	SplashEnabled     bool
	HomeSplashDelay   time.Duration
	GiftedSplashDelay time.Duration
	ShutdownTimeout   time.Duration
}

// New returns a viper instance reading BEATZBOY_* environment variables with
// defaults applied. Callers may bind command-line flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyListenAddr, "127.0.0.1:8080")
	v.SetDefault(KeyContentPath, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeySplashEnabled, true)
	v.SetDefault(KeyHomeSplashDelay, model.DefaultHomeSplashDelay.String())
	v.SetDefault(KeyGiftedSplashDelay, model.DefaultGiftedSplashDelay.String())
	v.SetDefault(KeyShutdownTimeout, "10s")

	return v
}

// Load reads configuration from v and returns a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ListenAddr:    v.GetString(KeyListenAddr),
		ContentPath:   v.GetString(KeyContentPath),
		LogFormat:     strings.ToLower(v.GetString(KeyLogFormat)),
		SplashEnabled: v.GetBool(KeySplashEnabled),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyLogLevel, err)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalidConfig, KeyLogFormat, cfg.LogFormat)
	}

	var err error
	if cfg.HomeSplashDelay, err = duration(v, KeyHomeSplashDelay); err != nil {
		return nil, err
	}
	if cfg.GiftedSplashDelay, err = duration(v, KeyGiftedSplashDelay); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = duration(v, KeyShutdownTimeout); err != nil {
		return nil, err
	}

	if cfg.ListenAddr == "" {
		return nil, fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, KeyListenAddr)
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s has invalid duration %q: %w", ErrInvalidConfig, key, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidConfig, key, d)
	}
	return d, nil
}

// EnvName returns the environment variable read for key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
