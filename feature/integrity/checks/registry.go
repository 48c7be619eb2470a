package checks

import (
	"fmt"

	"pass-finder/core/availability"
	"pass-finder/core/registry"
)

// RegistryReport describes how well the loaded registry covers the configured systems.
type RegistryReport struct {
	Matched   bool           `json:"matched"`
	Locations int            `json:"locations"`
	Systems   map[string]int `json:"systems"`
	Problems  []string       `json:"problems"`
}

// CheckRegistry verifies that every configured library system maps to canonical
// locations and that every location belongs to a configured system. Scrape-only systems
// need exactly one location to carry their sentinel.
func CheckRegistry(reg *registry.Registry, systems []availability.SystemConfig, aliases map[string]string) *RegistryReport {
	report := &RegistryReport{
		Matched:   true,
		Locations: reg.Len(),
		Systems:   make(map[string]int),
		Problems:  []string{},
	}
	problem := func(format string, args ...any) {
		report.Problems = append(report.Problems, fmt.Sprintf(format, args...))
		report.Matched = false
	}

	configured := make(map[string]struct{}, len(systems))
	for _, sys := range systems {
		canonical, ok := aliases[sys.ID]
		if !ok {
			problem("system %s has no alias", sys.ID)
			continue
		}
		configured[canonical] = struct{}{}

		n := len(reg.BySystem(canonical))
		report.Systems[sys.ID] = n
		switch {
		case n == 0:
			problem("system %s (%s) has no locations", sys.ID, canonical)
		case sys.Kind == availability.KindScrape && n != 1:
			problem("scrape-only system %s has %d locations, expected 1", sys.ID, n)
		}
	}

	for _, system := range reg.Systems() {
		if _, ok := configured[system]; !ok {
			problem("locations of system %s are not tracked by any configured system", system)
		}
	}

	return report
}
