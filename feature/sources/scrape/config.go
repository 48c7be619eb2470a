package scrape

import (
	"time"

	"pass-finder/core/transport"
)

// Config holds configuration for the headless browser scrape.
type Config struct {
	// Enabled turns the browser scrape on. When off, scrape-only systems keep their
	// Check Library sentinel.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// ExecPath points at the Chrome binary. Empty lets chromedp find one.
	ExecPath string `mapstructure:"exec_path" default:""`
	Headless bool   `mapstructure:"headless" default:"true"`
	// PageTimeoutSeconds bounds navigation.
	PageTimeoutSeconds int `mapstructure:"page_timeout_seconds" default:"30"`
	// ElementTimeoutSeconds bounds the wait for an availability element.
	ElementTimeoutSeconds int `mapstructure:"element_timeout_seconds" default:"15"`
	// SettleSeconds is the extra delay for asynchronous rendering.
	SettleSeconds int    `mapstructure:"settle_seconds" default:"3"`
	UserAgent     string `mapstructure:"user_agent" default:"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
}

func seconds(n, def int) time.Duration {
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

// PageTimeout returns the navigation timeout.
func (c Config) PageTimeout() time.Duration { return seconds(c.PageTimeoutSeconds, 30) }

// ElementTimeout returns the element wait timeout.
func (c Config) ElementTimeout() time.Duration { return seconds(c.ElementTimeoutSeconds, 15) }

// Settle returns the settle delay. Zero is allowed.
func (c Config) Settle() time.Duration {
	if c.SettleSeconds < 0 {
		return 0
	}
	return time.Duration(c.SettleSeconds) * time.Second
}

// userAgent returns the configured user agent or the default browser identity.
func (c Config) userAgent() string {
	if c.UserAgent == "" {
		return transport.DefaultUserAgent
	}
	return c.UserAgent
}
