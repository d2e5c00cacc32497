package config

import (
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/sells-group/stemmap/internal/dataset"
)

// Validate checks the settings a command mode depends on and reports every
// problem at once. Modes: "serve", "view", "load".
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
		errs = append(errs, c.validateLoad()...)
	case "view", "load":
		errs = append(errs, c.validateLoad()...)
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) validateLoad() []string {
	var errs []string

	if strings.TrimSpace(c.Dataset.Source) == "" {
		errs = append(errs, "dataset.source is required")
	}
	switch strings.ToLower(c.Dataset.Format) {
	case "", dataset.FormatCSV, dataset.FormatTSV, dataset.FormatXLSX, dataset.FormatJSON:
	default:
		errs = append(errs, "dataset.format must be one of csv, tsv, xlsx, json")
	}
	if c.Dataset.Delimiter != "" && utf8.RuneCountInString(c.Dataset.Delimiter) != 1 {
		errs = append(errs, "dataset.delimiter must be a single character")
	}
	if c.Dataset.Encoding != "" {
		if _, err := htmlindex.Get(c.Dataset.Encoding); err != nil {
			errs = append(errs, "dataset.encoding is not a known charset")
		}
	}
	if len(c.Dataset.Palette) == 0 {
		errs = append(errs, "dataset.palette must not be empty")
	}

	d := c.Declutter
	if d.CoarseFactor < 0 || d.FineFactor < 0 {
		errs = append(errs, "declutter factors must be >= 0")
	}
	if c.Cache.MaxEntries < 0 {
		errs = append(errs, "cache.max_entries must be >= 0")
	}
	if c.Fetch.TimeoutSecs < 0 {
		errs = append(errs, "fetch.timeout_secs must be >= 0")
	}
	if c.Fetch.MaxRetries < 0 || c.Fetch.MaxRetries > 10 {
		errs = append(errs, "fetch.max_retries must be between 0 and 10")
	}
	if c.Fetch.RatePerSec < 0 {
		errs = append(errs, "fetch.rate_per_sec must be >= 0")
	}

	return errs
}
