package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

var validSorts = map[string]struct{}{
	"relevance":   {},
	"date-newest": {},
	"date-oldest": {},
	"author":      {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOfficial(); err != nil {
		return err
	}
	if err := c.validateDraft(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOfficial() error {
	if c.Official.TimeoutSeconds > maxOfficialTimeoutSeconds {
		return fmt.Errorf("official.timeout_seconds must be at most %d", maxOfficialTimeoutSeconds)
	}
	if c.Official.URL == "" || !isRemoteURL(c.Official.URL) {
		return nil
	}
	parsed, err := url.Parse(c.Official.URL)
	if err != nil {
		return fmt.Errorf("official.url: %w", err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("official.url %q has no host", c.Official.URL)
	}
	return nil
}

func (c *Config) validateDraft() error {
	if strings.ContainsRune(c.Draft.ExportFile, filepath.Separator) {
		return fmt.Errorf("draft.export_file must be a file name, got %q", c.Draft.ExportFile)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateDisplay() error {
	if _, ok := validSorts[c.Display.DefaultSort]; !ok {
		return fmt.Errorf("display.default_sort %q is not one of relevance, date-newest, date-oldest, author", c.Display.DefaultSort)
	}
	return nil
}
