package bibliocommons

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"pass-finder/core/availability"
	"pass-finder/core/logger"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public BiblioCommons gateway.
const DefaultBaseURL = "https://gateway.bibliocommons.com"

// maxBodyBytes caps the availability payload read from the gateway.
const maxBodyBytes = 8 << 20

// Source reads per-branch availability from the BiblioCommons gateway.
type Source struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// New creates a BiblioCommons source. An empty baseURL selects DefaultBaseURL.
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
	return "bibliocommons"
}

// Fetch returns one fact per branch holding copies of the bib. Failures are logged and
// yield no facts.
func (s *Source) Fetch(ctx context.Context, req availability.Request) []availability.Fact {
	l := logger.WithSource(s.logger, s.Name(), req.System, string(req.Pass))

	facts, err := s.fetch(ctx, req.APIID, req.BibID)
	if err != nil {
		l.Warn("BiblioCommons fetch failed", zap.String("bib_id", req.BibID), zap.Error(err))
		return nil
	}

	l.Debug("BiblioCommons availability fetched", zap.Int("branches", len(facts)))
	return facts
}

func (s *Source) fetch(ctx context.Context, apiID, bibID string) ([]availability.Fact, error) {
	if apiID == "" || bibID == "" {
		return nil, fmt.Errorf("%w: missing library id or bib id", availability.ErrShapeMismatch)
	}

	endpoint := fmt.Sprintf("%s/v2/libraries/%s/bibs/%s/availability?locale=en-US",
		s.baseURL, url.PathEscape(apiID), url.PathEscape(bibID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

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

type availabilityResponse struct {
	Entities *struct {
		BibItems map[string]bibItem `json:"bibItems"`
	} `json:"entities"`
}

type bibItem struct {
	BranchName string `json:"branchName"`
	Location   *struct {
		Name string `json:"name"`
	} `json:"location"`
	Availability *struct {
		Status string `json:"status"`
	} `json:"availability"`
}

func (i bibItem) branch() string {
	if i.BranchName != "" {
		return i.BranchName
	}
	if i.Location != nil {
		return i.Location.Name
	}
	return ""
}

func (i bibItem) available() bool {
	return i.Availability != nil && i.Availability.Status == "AVAILABLE"
}

// Parse groups the items of an availability response by verbatim branch name. A body
// without entities.bibItems has no items; a body that is not the expected JSON object
// is a shape mismatch. Facts are sorted by branch name.
func Parse(body []byte) ([]availability.Fact, error) {
	var resp availabilityResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", availability.ErrShapeMismatch, err)
	}
	if resp.Entities == nil || len(resp.Entities.BibItems) == 0 {
		return nil, nil
	}

	type counts struct{ available, total int }
	byBranch := make(map[string]*counts)
	for _, item := range resp.Entities.BibItems {
		branch := item.branch()
		if branch == "" {
			continue
		}
		c, ok := byBranch[branch]
		if !ok {
			c = &counts{}
			byBranch[branch] = c
		}
		c.total++
		if item.available() {
			c.available++
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
