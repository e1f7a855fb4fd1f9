// Package config loads cmd/sqllex's settings from flags, environment
// variables, and an optional config file, and keeps them live via a
// filesystem watch — the same layered-source approach the rest of the
// pack's CLI tooling uses, scaled down to what sqllex actually needs.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds sqllex's run-time settings.
type Config struct {
	// Format is the default output format for `sqllex tokenize`: "text"
	// or "json".
	Format string `mapstructure:"format"`
	// LogLevel controls the verbosity of the slog handler installed at
	// startup: "debug", "info", "warn", or "error".
	LogLevel string `mapstructure:"log_level"`
	// MaxKeywordLen is the identifier length above which `sqllex
	// tokenize` logs a warning; 0 or less disables the warning. Its
	// default matches the dictionary's own fixed 32-byte lookup bound,
	// but it does not change keyword lookup itself.
	MaxKeywordLen int `mapstructure:"max_keyword_len"`
}

// Default returns the configuration sqllex runs with when no config
// file, environment variable, or flag overrides a field.
func Default() Config {
	return Config{
		Format:        "text",
		LogLevel:      "info",
		MaxKeywordLen: 32,
	}
}

// Load builds a *viper.Viper bound to fs (flags already parsed), reads
// an optional "sqllex" config file from the search paths, and decodes
// the result into a Config seeded with Default's values.
func Load(fs *pflag.FlagSet, searchPaths []string) (Config, *viper.Viper, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("format", def.Format)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("max_keyword_len", def.MaxKeywordLen)

	v.SetEnvPrefix("SQLLEX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, nil, fmt.Errorf("bind flags: %w", err)
		}
		// Flag names are hyphenated while config keys use underscores.
		for key, name := range map[string]string{"log_level": "log-level", "max_keyword_len": "max-keyword-len"} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetConfigName("sqllex")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, v, nil
}

// Watch installs an fsnotify-backed reload hook that calls onChange
// with the freshly decoded Config whenever the loaded config file
// changes on disk. It is a no-op if no config file was found.
func Watch(v *viper.Viper, onChange func(Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := decode(v)
		if err != nil {
			slog.Warn("config reload failed", "event", e.Name, "err", err)
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// SlogLevel translates LogLevel into a slog.Level, defaulting to Info
// for an unrecognized value.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
