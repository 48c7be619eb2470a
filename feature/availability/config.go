package availability

import "time"

// Config holds configuration for the availability cache.
type Config struct {
	// TTLSeconds is how long an aggregation result is served before the next refresh.
	// Zero disables caching.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"300"`
}

// TTL returns the cache time-to-live.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TTLSeconds) * time.Second
}
