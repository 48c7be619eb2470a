// Package availability aggregates pass availability across library systems.
//
// An Engine fans out one Source call per configured (system, pass type) pair,
// isolates every call (timeouts, panics, empty answers all mean "no data"), and merges
// the facts into one Record per canonical location of the registry:
//
//   - every pass type defaults to Unavailable
//   - scrape-only systems carry a Check Library sentinel until a scrape reports counts
//   - facts are matched to locations by the resolver; unmatched ones are dropped
//
// Output order is the registry order, independent of which source answered first.
// A Cache in front of the engine serves results for a short TTL.
//
// # Usage
//
//	engine, err := availability.NewEngine(cfg, reg, sources, log, m)
//	cache := availability.NewCache(engine, 5*time.Minute, m)
//	records, err := cache.GetUnifiedAvailability(ctx)
package availability
