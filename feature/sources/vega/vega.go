package vega

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"pass-finder/core/availability"
	"pass-finder/core/logger"
	"pass-finder/core/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is the Vega discovery API host serving the Mountain View catalog.
const DefaultBaseURL = "https://na5.iiivega.com"

const maxBodyBytes = 8 << 20

// Source reads per-branch availability of a Vega format group.
type Source struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// New creates a Vega source. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, client *http.Client, l *zap.Logger) *Source {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &Source{baseURL: strings.TrimRight(baseURL, "/"), client: client, logger: l}
}

// Name returns the source name.
func (s *Source) Name() string {
	return "vega"
}

// Fetch returns one fact per branch listed in the format group. Failures, including a
// response of unknown shape, are logged and yield no facts.
func (s *Source) Fetch(ctx context.Context, req availability.Request) []availability.Fact {
	l := logger.WithSource(s.logger, s.Name(), req.System, string(req.Pass))

	id, err := uuid.Parse(req.FormatGroupID)
	if err != nil {
		// The catalog bib id is not a format-group id and there is no known mapping.
		l.Warn("Vega format group id is not a UUID",
			zap.String("format_group_id", req.FormatGroupID),
			zap.String("bib_id", req.BibID))
		return nil
	}

	facts, err := s.fetch(ctx, id.String(), req.CatalogURL)
	if err != nil {
		l.Warn("Vega fetch failed", zap.String("format_group_id", id.String()), zap.Error(err))
		return nil
	}

	l.Debug("Vega availability fetched", zap.Int("branches", len(facts)))
	return facts
}

func (s *Source) fetch(ctx context.Context, formatGroupID, catalogURL string) ([]availability.Fact, error) {
	endpoint := fmt.Sprintf("%s/api/search-result/search/format-groups/%s", s.baseURL, formatGroupID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if catalogURL != "" {
		origin := strings.TrimRight(catalogURL, "/")
		httpReq.Header.Set("Origin", origin)
		httpReq.Header.Set("Referer", origin+"/")
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", availability.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", availability.ErrTransport, endpoint, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", availability.ErrTransport, err)
	}

	return Parse(body)
}

// Parse extracts branch facts from a format-group document. The schema is not
// published, so the body is read as an untyped document and every field is optional:
//
//	{"formatGroup": {"materialTabs": [{"items": [{"location": "...", "status": "..."}]}]}}
//
// The formatGroup wrapper is optional, items may be called holdings, the branch may be
// location, location.name or locationName, and availability may be a boolean
// "available" or a status string. A document without materialTabs is a shape mismatch.
func Parse(body []byte) ([]availability.Fact, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", availability.ErrShapeMismatch, err)
	}

	root := doc
	if fg := utils.Object(doc, "formatGroup"); fg != nil {
		root = fg
	}
	tabs := utils.Array(root, "materialTabs")
	if tabs == nil {
		return nil, fmt.Errorf("%w: no materialTabs in format group", availability.ErrShapeMismatch)
	}

	type counts struct{ available, total int }
	byBranch := make(map[string]*counts)
	for _, tab := range tabs {
		entries := utils.Array(tab, "items")
		if entries == nil {
			entries = utils.Array(tab, "holdings")
		}
		for _, entry := range entries {
			branch := utils.FirstString(entry,
				[]string{"location"},
				[]string{"location", "name"},
				[]string{"locationName"},
			)
			if branch == "" {
				continue
			}
			c, ok := byBranch[branch]
			if !ok {
				c = &counts{}
				byBranch[branch] = c
			}
			// Holdings may summarise several copies at one branch.
			copies := utils.ToInt(utils.Lookup(entry, "copies"), 1)
			if copies < 1 {
				copies = 1
			}
			c.total += copies
			if n := utils.Lookup(entry, "availableCopies"); n != nil {
				c.available += min(max(utils.ToInt(n, 0), 0), copies)
			} else if entryAvailable(entry) {
				c.available++
			}
		}
	}

	facts := make([]availability.Fact, 0, len(byBranch))
	for branch, c := range byBranch {
		facts = append(facts, availability.NewFact(branch, c.available, c.total))
	}
	sort.Slice(facts, func(i, j int) bool {
		return facts[i].BranchName < facts[j].BranchName
	})
	return facts, nil
}

func entryAvailable(entry any) bool {
	if v := utils.Lookup(entry, "available"); v != nil {
		return utils.ToBool(v, false)
	}
	status := utils.FirstString(entry, []string{"status"}, []string{"availability", "status"})
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "available", "on shelf", "checked in":
		return true
	default:
		return false
	}
}
