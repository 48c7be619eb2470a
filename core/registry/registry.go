package registry

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a registry would hold no locations.
var ErrEmpty = errors.New("registry has no locations")

// Registry is an immutable, ordered lookup table of canonical locations.
// It is safe for concurrent use because nothing mutates it after New returns.
type Registry struct {
	locations []Location
	byID      map[string]int
	bySystem  map[string][]int
}

// New validates the locations and builds a registry preserving their order.
// IDs must be non-empty and unique; every location needs a name and a system.
func New(locations []Location) (*Registry, error) {
	if len(locations) == 0 {
		return nil, ErrEmpty
	}

	r := &Registry{
		locations: make([]Location, len(locations)),
		byID:      make(map[string]int, len(locations)),
		bySystem:  make(map[string][]int),
	}
	copy(r.locations, locations)

	for i, loc := range r.locations {
		switch {
		case loc.ID == "":
			return nil, fmt.Errorf("location at index %d has no id", i)
		case loc.Name == "":
			return nil, fmt.Errorf("location %s has no name", loc.ID)
		case loc.System == "":
			return nil, fmt.Errorf("location %s has no system", loc.ID)
		}
		if prev, dup := r.byID[loc.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %s at index %d and %d", loc.ID, prev, i)
		}
		r.byID[loc.ID] = i
		r.bySystem[loc.System] = append(r.bySystem[loc.System], i)
	}

	return r, nil
}

// Len returns the number of locations.
func (r *Registry) Len() int {
	return len(r.locations)
}

// Locations returns a copy of all locations in registry order.
func (r *Registry) Locations() []Location {
	out := make([]Location, len(r.locations))
	copy(out, r.locations)
	return out
}

// Get returns the location with the given id.
func (r *Registry) Get(id string) (Location, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Location{}, false
	}
	return r.locations[i], true
}

// BySystem returns the locations of one canonical system in registry order.
func (r *Registry) BySystem(system string) []Location {
	idx := r.bySystem[system]
	out := make([]Location, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.locations[i])
	}
	return out
}

// Systems returns the canonical system names in order of first appearance.
func (r *Registry) Systems() []string {
	seen := make(map[string]struct{}, len(r.bySystem))
	var out []string
	for _, loc := range r.locations {
		if _, ok := seen[loc.System]; ok {
			continue
		}
		seen[loc.System] = struct{}{}
		out = append(out, loc.System)
	}
	return out
}
