package availability

import (
	"errors"
	"fmt"
	"time"

	"pass-finder/core/resolver"
)

// Kind selects the adapter family serving a library system.
type Kind string

const (
	KindBiblioCommons Kind = "bibliocommons"
	KindVega          Kind = "vega"
	// KindScrape marks a system without a usable structured API. Its location carries a
	// Check Library sentinel unless the browser scrape reports real counts.
	KindScrape Kind = "scrape"
)

// Valid reports whether k names a known adapter family.
func (k Kind) Valid() bool {
	switch k {
	case KindBiblioCommons, KindVega, KindScrape:
		return true
	default:
		return false
	}
}

// PassConfig names the catalog record of one pass type within a system.
type PassConfig struct {
	// Type is the pass short name ("caState") or record key ("caStatePass").
	Type string `yaml:"type" json:"type"`
	// BibID is the catalog id of the pass record.
	BibID string `yaml:"bibId" json:"bibId"`
	// FormatGroupID is the Vega format-group UUID. It is kept apart from BibID because
	// no mapping between the two id spaces is known.
	FormatGroupID string `yaml:"formatGroupId,omitempty" json:"formatGroupId,omitempty"`
}

// SystemConfig describes one library system and the passes tracked in it.
type SystemConfig struct {
	// ID is the short system code used by sources and the alias table ("sjpl").
	ID         string       `yaml:"id" json:"id"`
	SystemName string       `yaml:"systemName" json:"systemName"`
	APIID      string       `yaml:"apiId" json:"apiId"`
	Kind       Kind         `yaml:"kind" json:"kind"`
	CatalogURL string       `yaml:"catalogUrl" json:"catalogUrl"`
	ScrapeURL  string       `yaml:"scrapeUrl,omitempty" json:"scrapeUrl,omitempty"`
	BranchName string       `yaml:"branchName,omitempty" json:"branchName,omitempty"`
	Passes     []PassConfig `yaml:"passes" json:"passes"`
}

// DefaultSystems returns the library systems tracked out of the box.
func DefaultSystems() []SystemConfig {
	return []SystemConfig{
		{
			ID:         "sjpl",
			SystemName: "San José Public Library",
			APIID:      "sjpl",
			Kind:       KindBiblioCommons,
			CatalogURL: "https://sjpl.bibliocommons.com",
			Passes: []PassConfig{
				{Type: "caState", BibID: "S156C6422417"},
			},
		},
		{
			ID:         "sccl",
			SystemName: "Santa Clara County Library District",
			APIID:      "sccl",
			Kind:       KindBiblioCommons,
			CatalogURL: "https://sccl.bibliocommons.com",
			Passes: []PassConfig{
				{Type: "caState", BibID: "S118C1014941"},
				{Type: "sccCounty", BibID: "S118C1019385"},
			},
		},
		{
			ID:         "sclibrary",
			SystemName: "Santa Clara City Library",
			APIID:      "sclibrary",
			Kind:       KindBiblioCommons,
			CatalogURL: "https://sclibrary.bibliocommons.com",
			Passes: []PassConfig{
				{Type: "caState", BibID: "S146C2454429"},
				{Type: "sccCounty", BibID: "S146C2538775"},
			},
		},
		{
			ID:         "mv",
			SystemName: "Mountain View Public Library",
			APIID:      "mv",
			Kind:       KindScrape,
			CatalogURL: "https://librarycatalog.mountainview.gov",
			ScrapeURL:  "https://librarycatalog.mountainview.gov/search/card?id=1b0787a7-4c03-49ee-8787-a74c0349ee3a&entityType=FormatGroup",
			BranchName: "Mountain View Public Library",
			Passes: []PassConfig{
				{Type: "caState", BibID: "3087456", FormatGroupID: "1b0787a7-4c03-49ee-8787-a74c0349ee3a"},
			},
		},
	}
}

// Config is the immutable configuration of the orchestrator.
type Config struct {
	Systems []SystemConfig
	// PassTypes every record carries. Empty selects DefaultPassTypes.
	PassTypes []PassType
	// Aliases maps short system codes to canonical system names. Nil selects
	// resolver.DefaultAliases.
	Aliases map[string]string
	// SourceTimeout bounds a single adapter call. Zero leaves it to the adapter.
	SourceTimeout time.Duration
	// MaxConcurrency limits parallel adapter calls. Zero means unlimited.
	MaxConcurrency int
}

// withDefaults returns a copy of c with defaults applied and slices copied.
func (c Config) withDefaults() Config {
	out := c
	if len(out.PassTypes) == 0 {
		out.PassTypes = DefaultPassTypes
	}
	out.PassTypes = append([]PassType(nil), out.PassTypes...)
	if out.Aliases == nil {
		out.Aliases = resolver.DefaultAliases
	}
	aliases := make(map[string]string, len(out.Aliases))
	for k, v := range out.Aliases {
		aliases[k] = v
	}
	out.Aliases = aliases

	out.Systems = make([]SystemConfig, len(c.Systems))
	for i, sys := range c.Systems {
		sys.Passes = append([]PassConfig(nil), sys.Passes...)
		out.Systems[i] = sys
	}
	return out
}

// Validate checks the system table against the pass types and alias table.
func (c Config) Validate() error {
	c = c.withDefaults()
	if len(c.Systems) == 0 {
		return errors.New("no library systems configured")
	}

	known := make(map[PassType]struct{}, len(c.PassTypes))
	for _, p := range c.PassTypes {
		known[p] = struct{}{}
	}

	seen := make(map[string]struct{}, len(c.Systems))
	for _, sys := range c.Systems {
		if sys.ID == "" {
			return errors.New("library system without id")
		}
		if _, dup := seen[sys.ID]; dup {
			return fmt.Errorf("duplicate library system %s", sys.ID)
		}
		seen[sys.ID] = struct{}{}

		if !sys.Kind.Valid() {
			return fmt.Errorf("library system %s has unknown kind %q", sys.ID, sys.Kind)
		}
		if _, ok := c.Aliases[sys.ID]; !ok {
			return fmt.Errorf("library system %s has no registry alias", sys.ID)
		}
		for _, pass := range sys.Passes {
			pt, ok := ParsePassType(pass.Type)
			if !ok {
				return fmt.Errorf("library system %s has unknown pass type %q", sys.ID, pass.Type)
			}
			if _, ok := known[pt]; !ok {
				return fmt.Errorf("library system %s tracks pass %s which records do not carry", sys.ID, pt)
			}
		}
	}
	return nil
}

// job is one adapter call of an aggregation cycle.
type job struct {
	kind Kind
	req  Request
}

// jobs expands the system table into adapter calls in configuration order.
func (c Config) jobs() []job {
	var out []job
	for _, sys := range c.Systems {
		for _, pass := range sys.Passes {
			pt, _ := ParsePassType(pass.Type)
			out = append(out, job{
				kind: sys.Kind,
				req: Request{
					System:        sys.ID,
					APIID:         sys.APIID,
					Pass:          pt,
					BibID:         pass.BibID,
					FormatGroupID: pass.FormatGroupID,
					CatalogURL:    sys.CatalogURL,
					ScrapeURL:     sys.ScrapeURL,
					BranchName:    sys.BranchName,
				},
			})
		}
	}
	return out
}

// RequestFor builds the adapter request of one configured (system, pass) pair.
func (c Config) RequestFor(system, pass string) (Kind, Request, error) {
	pt, ok := ParsePassType(pass)
	if !ok {
		return "", Request{}, fmt.Errorf("unknown pass type %q", pass)
	}
	for _, j := range c.jobs() {
		if j.req.System == system && j.req.Pass == pt {
			return j.kind, j.req, nil
		}
	}
	return "", Request{}, fmt.Errorf("library system %s does not track pass %s", system, pt)
}
