package scrape

import (
	"context"
	"fmt"

	"pass-finder/core/availability"
	"pass-finder/core/logger"

	"go.uber.org/zap"
)

// Scraper reads availability from a catalog page through a browser session.
type Scraper struct {
	launcher Launcher
	logger   *zap.Logger
}

// NewScraper creates a scraper over the given launcher.
func NewScraper(launcher Launcher, l *zap.Logger) *Scraper {
	if l == nil {
		l = zap.NewNop()
	}
	return &Scraper{launcher: launcher, logger: l}
}

// Scrape loads the page in a fresh session and applies the text rules. It returns a nil
// result with an error when the page cannot be loaded or read; the session is closed
// before returning in every case.
func (s *Scraper) Scrape(ctx context.Context, url string) (*Result, error) {
	session, err := s.launcher.Launch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", availability.ErrScrapeExtraction, err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			s.logger.Warn("Failed to close browser session", zap.Error(cerr))
		}
	}()

	text, err := session.PageText(ctx, url)
	if err != nil {
		return nil, err
	}

	r := Extract(text)
	return &r, nil
}

// Source exposes the scraper through the uniform source contract.
type Source struct {
	scraper *Scraper
	logger  *zap.Logger
}

// NewSource creates a scrape source.
func NewSource(scraper *Scraper, l *zap.Logger) *Source {
	if l == nil {
		l = zap.NewNop()
	}
	return &Source{scraper: scraper, logger: l}
}

// Name returns the source name.
func (s *Source) Name() string {
	return "scrape"
}

// Fetch scrapes the configured page. A failed scrape reports a Check Library fact for
// the configured branch rather than no data.
func (s *Source) Fetch(ctx context.Context, req availability.Request) []availability.Fact {
	l := logger.WithSource(s.logger, s.Name(), req.System, string(req.Pass))

	if req.ScrapeURL == "" {
		l.Warn("No scrape url configured")
		return []availability.Fact{availability.CheckLibrary(req.BranchName)}
	}

	result, err := s.scraper.Scrape(ctx, req.ScrapeURL)
	if err != nil {
		l.Warn("Scrape failed", zap.String("url", req.ScrapeURL), zap.Error(err))
		return []availability.Fact{availability.CheckLibrary(req.BranchName)}
	}

	fact := result.Fact(req.BranchName)
	l.Info("Scrape completed",
		zap.Bool("has_available", result.HasAvailable),
		zap.Int("available", fact.Available),
		zap.Int("total", fact.Total))

	return []availability.Fact{fact}
}
