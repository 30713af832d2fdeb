package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"pass"`
}

type EmailConfig struct {
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Subject string `yaml:"subject"`
}

type CompanyConfig struct {
	Name      string `yaml:"name"`
	Watermark string `yaml:"watermark"`
}

type FormatConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	Language       string `yaml:"language"`
}

type TermsConfig struct {
	PaymentDays int    `yaml:"payment_days"`
	Calendar    string `yaml:"calendar"` // "US" or a German state code
}

type ArchiveConfig struct {
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
	Prefix string `yaml:"prefix"`
}

type Config struct {
	LogLevel string        `yaml:"log_level"`
	Company  CompanyConfig `yaml:"company"`
	Layout   Layout        `yaml:"layout"`
	Format   FormatConfig  `yaml:"format"`
	Terms    TermsConfig   `yaml:"terms"`
	SMTP     SMTPConfig    `yaml:"smtp"`
	Email    EmailConfig   `yaml:"email"`
	Archive  ArchiveConfig `yaml:"archive"`
}

// defaultConfig returns a landscape Letter layout in points.
func defaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Company:  CompanyConfig{Name: "Custom Kitchen Cabinets"},
		Layout: Layout{
			PageWidth:             792,
			PageHeight:            612,
			RowHeight:             24,
			FirstPageHeaderHeight: 160,
			TopMargin:             10,
			BottomMargin:          20,
		},
		Format: FormatConfig{CurrencySymbol: "$", Language: "en"},
		Terms:  TermsConfig{PaymentDays: 30, Calendar: "US"},
		Email:  EmailConfig{Subject: "Invoice {number}"},
	}
}

// loadConfig reads the YAML file at path over the defaults. A missing file
// named like the default is not an error.
func loadConfig(defaultName, path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == defaultName {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Layout.validate(); err != nil {
		return nil, fmt.Errorf("invalid layout in config: %w", err)
	}
	if cfg.Layout.FirstPageHeaderHeight < titleBlockHeight {
		return nil, fmt.Errorf("%w: first page header height %.2f leaves no room for the title block (need %d)",
			ErrInvalidLayout, cfg.Layout.FirstPageHeaderHeight, titleBlockHeight)
	}
	if cfg.Layout.PageWidth <= 0 {
		return nil, fmt.Errorf("%w: page width %.2f", ErrInvalidLayout, cfg.Layout.PageWidth)
	}
	if _, err := language.Parse(cfg.Format.Language); err != nil {
		return nil, fmt.Errorf("invalid format language %q: %w", cfg.Format.Language, err)
	}

	return cfg, nil
}

// format builds the display conventions from the config.
func (c *Config) format() Format {
	lang, err := language.Parse(c.Format.Language)
	if err != nil {
		lang = language.English
	}
	return NewFormat(c.Format.CurrencySymbol, lang)
}

func (c *Config) emailEnabled() bool {
	return c.SMTP.Host != "" && c.Email.To != ""
}

func (c *Config) archiveEnabled() bool {
	return c.Archive.Bucket != ""
}
