package sources

import (
	"time"

	"pass-finder/core/transport"
)

// Config holds configuration for the structured catalog sources and the orchestrator.
type Config struct {
	// SystemsFile replaces the built-in library system table with a YAML file.
	SystemsFile string `mapstructure:"systems_file" default:""`
	// BiblioCommonsURL is the BiblioCommons gateway base URL.
	BiblioCommonsURL string `mapstructure:"bibliocommons_url" default:"https://gateway.bibliocommons.com"`
	// VegaURL is the Vega API base URL.
	VegaURL string `mapstructure:"vega_url" default:"https://na5.iiivega.com"`
	// FetchTimeoutSeconds bounds one adapter call, scrape included.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" default:"60"`
	// MaxConcurrency limits parallel adapter calls (0 = unlimited).
	MaxConcurrency int `mapstructure:"max_concurrency" default:"0"`
	// HTTP configures the outbound client of the structured sources.
	HTTP transport.Config `mapstructure:"http"`
}

// FetchTimeout returns the per-call timeout.
func (c Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
