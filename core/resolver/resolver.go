package resolver

import (
	"strings"

	"pass-finder/core/registry"

	"golang.org/x/text/cases"
)

// DefaultAliases maps the short system codes used by source adapters to the canonical
// system names of the location registry. Adding a library system means adding a row here.
var DefaultAliases = map[string]string{
	"sjpl":      "SJPL",
	"sccl":      "SCCLD",
	"sclibrary": "SantaClaraCity",
	"mv":        "MountainView",
}

const librarySuffix = " Library"

type candidate struct {
	id   string
	name string
}

// Resolver maps raw branch names reported by a source to canonical location ids.
// It never mutates after New and is safe for concurrent use.
type Resolver struct {
	aliases    map[string]string
	candidates map[string][]candidate
}

// New builds a resolver over the registry. A nil alias table selects DefaultAliases.
func New(reg *registry.Registry, aliases map[string]string) *Resolver {
	if aliases == nil {
		aliases = DefaultAliases
	}

	r := &Resolver{
		aliases:    make(map[string]string, len(aliases)),
		candidates: make(map[string][]candidate),
	}
	for code, system := range aliases {
		r.aliases[code] = system
	}
	for _, loc := range reg.Locations() {
		r.candidates[loc.System] = append(r.candidates[loc.System], candidate{id: loc.ID, name: loc.Name})
	}
	return r
}

// System returns the canonical system name for a short code.
func (r *Resolver) System(code string) (string, bool) {
	system, ok := r.aliases[code]
	return system, ok
}

// Resolve returns the canonical location id for a raw branch name of the system with the
// given short code. Rules are tried in order and the first match wins:
//
//  1. exact name match
//  2. case-insensitive substring match in either direction
//  3. equality after stripping a trailing " Library" from both names
//
// Anything else is not found; no best-guess assignment is made.
func (r *Resolver) Resolve(code, raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	system, ok := r.aliases[code]
	if !ok {
		return "", false
	}
	candidates := r.candidates[system]

	for _, c := range candidates {
		if c.name == raw {
			return c.id, true
		}
	}

	// cases.Caser keeps state and must not be shared between goroutines.
	fold := cases.Fold()
	foldedRaw := fold.String(raw)
	for _, c := range candidates {
		foldedName := fold.String(c.name)
		if foldedName == "" {
			continue
		}
		if strings.Contains(foldedRaw, foldedName) || strings.Contains(foldedName, foldedRaw) {
			return c.id, true
		}
	}

	// Shadowed by the substring rule: names equal after trimming the suffix already
	// contain each other.
	trimmedRaw := strings.TrimSuffix(raw, librarySuffix)
	for _, c := range candidates {
		if strings.TrimSuffix(c.name, librarySuffix) == trimmedRaw {
			return c.id, true
		}
	}

	return "", false
}
