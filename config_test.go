package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.yaml")
		content := `log_level: debug
company:
  name: Acme Cabinets
  watermark: watermark.png
layout:
  row_height: 20
  avoid_orphan_totals: true
format:
  currency_symbol: "€"
  language: de
terms:
  payment_days: 14
  calendar: BY
smtp:
  host: smtp.example.com
  port: 587
  user: user@example.com
  pass: secret
email:
  from: user@example.com
  to: billing@example.com
archive:
  bucket: invoices
  region: eu-central-1
  prefix: "2026"
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := loadConfig("config.yaml", configFile)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "Acme Cabinets", cfg.Company.Name)
		assert.Equal(t, 20.0, cfg.Layout.RowHeight)
		assert.Equal(t, 612.0, cfg.Layout.PageHeight, "unset layout keeps defaults")
		assert.True(t, cfg.Layout.AvoidOrphanTotals)
		assert.Equal(t, 14, cfg.Terms.PaymentDays)
		assert.Equal(t, 587, cfg.SMTP.Port)
		assert.Equal(t, "secret", cfg.SMTP.Password)
		assert.True(t, cfg.emailEnabled())
		assert.True(t, cfg.archiveEnabled())
		assert.Equal(t, "2026", cfg.Archive.Prefix)
		assert.Equal(t, "Invoice {number}", cfg.Email.Subject)

		f := cfg.format()
		assert.Equal(t, "€", f.CurrencySymbol)
		assert.Equal(t, "de", f.Language.String())
	})

	t.Run("missing default file", func(t *testing.T) {
		cfg, err := loadConfig("config.yaml", filepath.Join(t.TempDir(), "config.yaml"))
		assert.Error(t, err, "only the literal default name may be missing")
		assert.Nil(t, cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig("config.yaml", "/nonexistent/config.yaml")
		assert.Error(t, err)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("{{invalid yaml"), 0o644))

		_, err := loadConfig("config.yaml", configFile)
		assert.Error(t, err)
	})

	t.Run("layout too small", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("layout:\n  page_height: 80\n"), 0o644))

		_, err := loadConfig("config.yaml", configFile)
		assert.ErrorIs(t, err, ErrPageTooSmall)
	})

	t.Run("header shorter than title block", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("layout:\n  first_page_header_height: 120\n"), 0o644))

		_, err := loadConfig("config.yaml", configFile)
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("bad language", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("format:\n  language: \"!!\"\n"), 0o644))

		_, err := loadConfig("config.yaml", configFile)
		assert.Error(t, err)
	})
}

func TestLoadConfigDefaultNameMissing(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := loadConfig("config.yaml", "config.yaml")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.False(t, cfg.emailEnabled())
	assert.False(t, cfg.archiveEnabled())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, "warn")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, zerolog.InfoLevel, newLogger(&buf, "nonsense").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, newLogger(&buf, "").GetLevel())
}
