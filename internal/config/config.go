// Package config loads the collector configuration file.
//
// The configuration mirrors what a collection deployment needs to know: the
// college's schedule endpoint, the terms available for collection, which
// departments to request, and rate-limit/storage settings. Everything has a
// working default so `collect` runs without a file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Term is one academic term the source can serve.
type Term struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Config is the full collector configuration.
type Config struct {
	CollegeID        string `yaml:"college_id"`
	BaseURL          string `yaml:"base_url"`
	ScheduleEndpoint string `yaml:"schedule_endpoint"`
	UserAgent        string `yaml:"user_agent"`

	CurrentTerm Term     `yaml:"current_term"`
	Terms       []Term   `yaml:"terms"`
	Departments []string `yaml:"departments"`

	RateLimit struct {
		RetryAttempts     int     `yaml:"retry_attempts"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
	} `yaml:"rate_limit"`

	HTTP struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"http"`

	Storage struct {
		DataDir     string `yaml:"data_dir"`
		Compression string `yaml:"compression"` // "none" or "gzip"
		KeepCount   int    `yaml:"keep_count"`
	} `yaml:"storage"`
}

// Default returns the Rio Hondo College configuration.
func Default() *Config {
	cfg := &Config{
		CollegeID:        "rio-hondo",
		BaseURL:          "https://ssb.riohondo.edu/prod",
		ScheduleEndpoint: "pw_pub_sched.p_listthislist",
		UserAgent:        "ccc-schedule-collector/1.0 (github.com/jmcpheron/ccc-schedule-collector)",
		CurrentTerm:      Term{Code: "202570", Name: "Fall 2025"},
		Departments:      []string{"ALL"},
	}
	cfg.RateLimit.RetryAttempts = 3
	cfg.RateLimit.RequestsPerSecond = 2
	cfg.HTTP.TimeoutSeconds = 30
	cfg.Storage.DataDir = "data"
	cfg.Storage.Compression = "none"
	cfg.Storage.KeepCount = 30
	return cfg
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values for combinations that cannot work.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.ScheduleEndpoint == "" {
		return fmt.Errorf("schedule_endpoint is required")
	}
	if c.CurrentTerm.Code == "" {
		return fmt.Errorf("current_term.code is required")
	}
	if c.RateLimit.RetryAttempts < 1 {
		return fmt.Errorf("rate_limit.retry_attempts must be at least 1")
	}
	switch c.Storage.Compression {
	case "", "none", "gzip":
	default:
		return fmt.Errorf("unsupported compression %q (use none or gzip)", c.Storage.Compression)
	}
	return nil
}

// ScheduleURL is the full URL of the schedule listing endpoint.
func (c *Config) ScheduleURL() string {
	return c.BaseURL + "/" + c.ScheduleEndpoint
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.HTTP.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// TermName resolves a term code to its display name, falling back to the
// code itself for terms not listed in the config.
func (c *Config) TermName(code string) string {
	if code == c.CurrentTerm.Code && c.CurrentTerm.Name != "" {
		return c.CurrentTerm.Name
	}
	for _, t := range c.Terms {
		if t.Code == code {
			return t.Name
		}
	}
	return "Term " + code
}
