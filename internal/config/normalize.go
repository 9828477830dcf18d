package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOfficial()
	c.normalizeDraft()
	c.normalizeLogging()
	c.normalizeDisplay()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOfficial() {
	c.Official.URL = strings.TrimSpace(c.Official.URL)
	if c.Official.URL == "" {
		if value, ok := os.LookupEnv(officialURLEnv); ok {
			c.Official.URL = strings.TrimSpace(value)
		}
	}
	if c.Official.URL != "" && !isRemoteURL(c.Official.URL) {
		if expanded, err := expandPath(c.Official.URL); err == nil {
			c.Official.URL = expanded
		}
	}
	if c.Official.TimeoutSeconds <= 0 {
		c.Official.TimeoutSeconds = defaultOfficialTimeout
	}
}

func (c *Config) normalizeDraft() {
	c.Draft.DBFile = strings.TrimSpace(c.Draft.DBFile)
	if c.Draft.DBFile == "" {
		c.Draft.DBFile = defaultDraftDBFile
	}
	c.Draft.ExportFile = strings.TrimSpace(c.Draft.ExportFile)
	if c.Draft.ExportFile == "" {
		c.Draft.ExportFile = defaultExportFile
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeDisplay() {
	c.Display.DefaultSort = strings.ToLower(strings.TrimSpace(c.Display.DefaultSort))
	if c.Display.DefaultSort == "" {
		c.Display.DefaultSort = defaultSort
	}
}

// IsRemoteURL reports whether the official location should be fetched over HTTP.
func IsRemoteURL(value string) bool {
	return isRemoteURL(value)
}

func isRemoteURL(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
