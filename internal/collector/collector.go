package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmcpheron/ccc-schedule-collector/internal/config"
	"github.com/jmcpheron/ccc-schedule-collector/internal/logger"
	"github.com/jmcpheron/ccc-schedule-collector/internal/parser"
	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

// Collector fetches and parses schedule listings for one college.
type Collector struct {
	cfg    *config.Config
	client *http.Client
	layout parser.Layout
}

// New creates a Collector from the given configuration, using the default
// Banner column layout.
func New(cfg *config.Config) *Collector {
	return &Collector{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout(),
		},
		layout: parser.DefaultLayout(),
	}
}

// Collect fetches the listing for one term, parses it, and returns the
// snapshot together with the parser's diagnostics. An empty termCode
// collects the configured current term.
func (c *Collector) Collect(ctx context.Context, termCode string) (*schedule.Snapshot, *parser.Result, error) {
	if termCode == "" {
		termCode = c.cfg.CurrentTerm.Code
	}

	start := time.Now()
	body, err := c.fetch(ctx, termCode)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching term %s: %w", termCode, err)
	}
	logger.RecordTiming("collect.fetch", time.Since(start))

	rows, err := ExtractRows(strings.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("extracting rows: %w", err)
	}

	result := parser.Parse(rows, c.layout)
	logger.Info("parsed schedule listing", logger.Fields{
		"term":        termCode,
		"rows":        len(rows),
		"sections":    len(result.Sections),
		"diagnostics": len(result.Diagnostics),
	})
	for _, d := range result.Diagnostics {
		logger.Warn("row skipped or degraded", logger.Fields{
			"row":    d.Row,
			"kind":   string(d.Kind),
			"reason": d.Message,
		})
	}

	snap := schedule.NewSnapshot(
		c.cfg.CollegeID,
		c.cfg.TermName(termCode),
		termCode,
		c.cfg.ScheduleURL(),
		time.Now().UTC(),
		result.Sections,
	)
	return snap, result, nil
}

// fetch posts the schedule search form and returns the listing HTML,
// retrying transient failures with exponential backoff.
func (c *Collector) fetch(ctx context.Context, termCode string) (string, error) {
	form := url.Values{}
	form.Set("term", termCode)
	form.Add("sel_subj", "dummy")
	for _, dept := range c.cfg.Departments {
		if dept != "" && dept != "ALL" {
			form.Add("sel_subj", dept)
		}
	}

	attempts := c.cfg.RateLimit.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(attempts-1)),
		ctx,
	)

	var body string
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ScheduleURL(), strings.NewReader(form.Encode()))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("User-Agent", c.cfg.UserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return backoff.Permanent(err)
			}
			return err
		}

		var sb strings.Builder
		if _, err := io.Copy(&sb, resp.Body); err != nil {
			return err
		}
		body = sb.String()
		return nil
	}

	if err := backoff.RetryNotify(op, policy, func(err error, wait time.Duration) {
		logger.Warn("fetch failed, retrying", logger.Fields{
			"term":  termCode,
			"wait":  wait.String(),
			"error": err.Error(),
		})
	}); err != nil {
		return "", err
	}
	return body, nil
}
