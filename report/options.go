package report

import "time"

// ============================================================================
// REPORT OPTIONS — Functional options for New()
// ============================================================================

// Option configures a Reporter via the functional options pattern.
type Option func(*config)

type config struct {
	Now func() time.Time // clock used for the "This took" line
}

// WithClock replaces the wall clock used to time each section.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.Now = now
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
