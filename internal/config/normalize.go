package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeScan(); err != nil {
		return err
	}
	c.normalizeReport()
	return c.normalizeLogging()
}

func (c *Config) normalizeScan() error {
	c.Scan.SourceDir = strings.TrimSpace(c.Scan.SourceDir)
	if c.Scan.SourceDir == "" {
		if value, ok := os.LookupEnv(sourceEnvVar); ok {
			c.Scan.SourceDir = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Scan.SourceDir, err = expandPath(c.Scan.SourceDir); err != nil {
		return fmt.Errorf("scan.source_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeReport() {
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultReportFormat
	}
	c.Report.Color = strings.ToLower(strings.TrimSpace(c.Report.Color))
	if c.Report.Color == "" {
		c.Report.Color = defaultReportColor
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
