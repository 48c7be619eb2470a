package availability

import (
	"context"

	"pass-finder/core/registry"
)

// Status is the display status of a pass at one location.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusUnavailable Status = "Unavailable"
	// StatusCheckLibrary means no source could report counts; the user has to ask the branch.
	StatusCheckLibrary Status = "Check Library"
)

// PassType identifies a tracked pass item in the output record.
type PassType string

const (
	PassCAState   PassType = "caStatePass"
	PassSCCCounty PassType = "sccCountyPass"
)

// DefaultPassTypes are the pass types every record carries.
var DefaultPassTypes = []PassType{PassCAState, PassSCCCounty}

// ParsePassType accepts both the configuration short name ("caState") and the
// record key ("caStatePass").
func ParsePassType(s string) (PassType, bool) {
	switch s {
	case "caState", string(PassCAState):
		return PassCAState, true
	case "sccCounty", string(PassSCCCounty):
		return PassSCCCounty, true
	default:
		return "", false
	}
}

// Fact is the aggregated availability of one raw branch name within one
// (system, pass type) fetch. It doubles as the per-pass availability of a record.
type Fact struct {
	BranchName string `json:"branchName"`
	Available  int    `json:"available"`
	Total      int    `json:"total"`
	Status     Status `json:"status"`
}

// NewFact builds a count-derived fact. Negative counts are clamped to zero and total is
// raised to available, so 0 <= available <= total always holds.
func NewFact(branchName string, available, total int) Fact {
	if available < 0 {
		available = 0
	}
	if total < available {
		total = available
	}
	status := StatusUnavailable
	if available > 0 {
		status = StatusAvailable
	}
	return Fact{BranchName: branchName, Available: available, Total: total, Status: status}
}

// CheckLibrary is the sentinel fact for a branch whose availability is unknown.
func CheckLibrary(branchName string) Fact {
	return Fact{BranchName: branchName, Status: StatusCheckLibrary}
}

// Unavailable is the default fact of a location no source reported.
func Unavailable(branchName string) Fact {
	return Fact{BranchName: branchName, Status: StatusUnavailable}
}

// Record is a canonical location together with its availability per pass type.
type Record struct {
	registry.Location
	Availability map[PassType]Fact `json:"availability"`
}

// Clone returns a copy that shares no mutable state with r.
func (r Record) Clone() Record {
	out := Record{Location: r.Location, Availability: make(map[PassType]Fact, len(r.Availability))}
	for k, v := range r.Availability {
		out.Availability[k] = v
	}
	return out
}

// CloneRecords deep-copies a record list.
func CloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

// Request carries the coordinates of one adapter call.
type Request struct {
	// System is the short system code ("sjpl").
	System string
	// APIID is the upstream library id used in BiblioCommons URLs.
	APIID string
	Pass  PassType
	BibID string
	// FormatGroupID is the Vega format-group UUID.
	FormatGroupID string
	CatalogURL    string
	// ScrapeURL is the public catalog page read by the browser scrape.
	ScrapeURL string
	// BranchName is the branch a single-location source reports for.
	BranchName string
}

// Source produces availability facts for one (system, pass type) pair.
// Fetch never fails: any upstream problem is logged and yields no facts.
type Source interface {
	Name() string
	Fetch(ctx context.Context, req Request) []Fact
}

// SourceResult is the outcome of one adapter call.
type SourceResult struct {
	System string
	Pass   PassType
	Source string
	Facts  []Fact
}

// Provider returns the unified availability of all locations.
type Provider interface {
	GetUnifiedAvailability(ctx context.Context) ([]Record, error)
}
