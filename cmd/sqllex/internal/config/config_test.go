package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithNoConfigFile(t *testing.T) {
	cfg, _, err := Load(nil, []string{t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "format: json\nlog_level: debug\nmax_keyword_len: 16\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqllex.yaml"), []byte(content), 0o644))

	cfg, v, err := Load(nil, []string{dir})
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 16, cfg.MaxKeywordLen)
	require.NotEmpty(t, v.ConfigFileUsed())
}

func TestLoadFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqllex.yaml"), []byte(content), 0o644))

	fs := pflag.NewFlagSet("sqllex", pflag.ContinueOnError)
	fs.String("format", Default().Format, "")
	require.NoError(t, fs.Set("format", "text"))

	cfg, _, err := Load(fs, []string{dir})
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Format)
}

func TestSlogLevelMapping(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug, "warn": slog.LevelWarn, "warning": slog.LevelWarn,
		"error": slog.LevelError, "info": slog.LevelInfo, "bogus": slog.LevelInfo,
	}
	for level, want := range cases {
		cfg := Config{LogLevel: level}
		require.Equalf(t, want, cfg.SlogLevel(), "log level %q", level)
	}
}
