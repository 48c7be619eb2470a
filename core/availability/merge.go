package availability

import (
	"pass-finder/core/metrics"
	"pass-finder/core/registry"

	"go.uber.org/zap"
)

// Resolver maps raw branch names reported for a short system code to canonical ids.
type Resolver interface {
	Resolve(system, raw string) (string, bool)
	System(code string) (string, bool)
}

// Merger combines source results into one record per canonical location.
type Merger struct {
	Resolver  Resolver
	PassTypes []PassType
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
}

// Merge builds the unified records in registry order:
//
//  1. every location starts with an Unavailable default for each pass type
//  2. scrape-only systems get a Check Library sentinel on their location
//  3. each resolved fact overwrites its (location, pass type) slot; unresolved facts are dropped
//
// Results are applied in the order given, so the last write wins.
func (m Merger) Merge(locations []registry.Location, systems []SystemConfig, results []SourceResult) []Record {
	log := m.Logger
	if log == nil {
		log = zap.NewNop()
	}
	passTypes := m.PassTypes
	if len(passTypes) == 0 {
		passTypes = DefaultPassTypes
	}

	records := make([]Record, len(locations))
	index := make(map[string]int, len(locations))
	for i, loc := range locations {
		rec := Record{Location: loc, Availability: make(map[PassType]Fact, len(passTypes))}
		for _, pt := range passTypes {
			rec.Availability[pt] = Unavailable(loc.Name)
		}
		records[i] = rec
		index[loc.ID] = i
	}

	for _, sys := range systems {
		if sys.Kind != KindScrape {
			continue
		}
		id, ok := m.sentinelLocation(sys, locations)
		if !ok {
			log.Warn("No canonical location for scrape-only system",
				zap.String("system", sys.ID), zap.String("branch", sys.BranchName))
			continue
		}
		rec := records[index[id]]
		branch := sys.BranchName
		if branch == "" {
			branch = rec.Name
		}
		for _, pass := range sys.Passes {
			pt, ok := ParsePassType(pass.Type)
			if !ok {
				continue
			}
			if _, tracked := rec.Availability[pt]; tracked {
				rec.Availability[pt] = CheckLibrary(branch)
			}
		}
	}

	type slot struct {
		id   string
		pass PassType
	}
	written := make(map[slot]string)

	for _, res := range results {
		for _, fact := range res.Facts {
			id, ok := m.Resolver.Resolve(res.System, fact.BranchName)
			if !ok {
				log.Warn("Unresolved branch name dropped",
					zap.String("system", res.System),
					zap.String("pass", string(res.Pass)),
					zap.String("source", res.Source),
					zap.String("branch", fact.BranchName))
				m.Metrics.Unresolved(res.System, res.Source)
				continue
			}
			i, ok := index[id]
			if !ok {
				continue
			}
			rec := records[i]
			if _, tracked := rec.Availability[res.Pass]; !tracked {
				continue
			}

			key := slot{id: id, pass: res.Pass}
			if prev, dup := written[key]; dup {
				log.Debug("Availability overwritten",
					zap.String("location", id),
					zap.String("pass", string(res.Pass)),
					zap.String("previous", prev),
					zap.String("branch", fact.BranchName))
			}
			written[key] = fact.BranchName
			rec.Availability[res.Pass] = normalize(fact)
		}
	}

	return records
}

// sentinelLocation picks the location of a scrape-only system: the configured branch
// name if it resolves, otherwise the system's sole location.
func (m Merger) sentinelLocation(sys SystemConfig, locations []registry.Location) (string, bool) {
	if sys.BranchName != "" {
		if id, ok := m.Resolver.Resolve(sys.ID, sys.BranchName); ok {
			return id, true
		}
	}
	system, ok := m.Resolver.System(sys.ID)
	if !ok {
		return "", false
	}
	var found string
	for _, loc := range locations {
		if loc.System != system {
			continue
		}
		if found != "" {
			return "", false
		}
		found = loc.ID
	}
	return found, found != ""
}

// normalize enforces 0 <= available <= total without touching the status.
func normalize(f Fact) Fact {
	if f.Available < 0 {
		f.Available = 0
	}
	if f.Total < f.Available {
		f.Total = f.Available
	}
	return f
}
