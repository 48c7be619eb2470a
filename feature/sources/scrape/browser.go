package scrape

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pass-finder/core/availability"

	"github.com/chromedp/chromedp"
)

// availabilitySelectors are the elements a catalog page renders once holdings load.
const availabilitySelectors = `.availability-status, .format-info, .holdings-info, [class*="availability"]`

// Launcher starts browser sessions.
type Launcher interface {
	Launch(ctx context.Context) (Session, error)
}

// Session is one browser owned by a single scrape. Close must be called on every path.
type Session interface {
	PageText(ctx context.Context, url string) (string, error)
	Close() error
}

// ChromeLauncher starts a fresh headless Chrome per session through chromedp.
type ChromeLauncher struct {
	cfg Config
}

// NewChromeLauncher creates a launcher.
func NewChromeLauncher(cfg Config) *ChromeLauncher {
	return &ChromeLauncher{cfg: cfg}
}

// Launch starts a browser process and opens a tab.
func (l *ChromeLauncher) Launch(ctx context.Context) (Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("headless", l.cfg.Headless),
		chromedp.UserAgent(l.cfg.userAgent()),
	)
	if l.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(l.cfg.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	release := func() {
		browserCancel()
		allocCancel()
	}

	// An empty Run starts the browser so launch failures surface here.
	if err := chromedp.Run(browserCtx); err != nil {
		release()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &chromeSession{ctx: browserCtx, release: release, cfg: l.cfg}, nil
}

type chromeSession struct {
	ctx     context.Context
	release func()
	cfg     Config
}

// PageText navigates to url, waits for availability content and returns the visible
// text of the page body.
func (s *chromeSession) PageText(ctx context.Context, url string) (string, error) {
	navCtx, cancel := s.bounded(ctx, s.cfg.PageTimeout())
	err := chromedp.Run(navCtx, chromedp.Navigate(url))
	cancel()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: navigating to %s: %v", availability.ErrScrapeTimeout, url, err)
		}
		return "", fmt.Errorf("%w: navigating to %s: %v", availability.ErrScrapeExtraction, url, err)
	}

	// Missing availability elements are not an error; the settle delay still applies.
	waitCtx, cancel := s.bounded(ctx, s.cfg.ElementTimeout())
	_ = chromedp.Run(waitCtx, chromedp.WaitVisible(availabilitySelectors, chromedp.ByQuery))
	cancel()

	if settle := s.cfg.Settle(); settle > 0 {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", availability.ErrScrapeTimeout, ctx.Err())
		case <-time.After(settle):
		}
	}

	var text string
	evalCtx, cancel := s.bounded(ctx, s.cfg.PageTimeout())
	defer cancel()
	if err := chromedp.Run(evalCtx, chromedp.Evaluate(`document.body ? document.body.innerText : ""`, &text)); err != nil {
		return "", fmt.Errorf("%w: reading page text: %v", availability.ErrScrapeExtraction, err)
	}
	return text, nil
}

// bounded derives a context from the browser tab that also ends with ctx.
func (s *chromeSession) bounded(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	c, cancel := context.WithTimeout(s.ctx, timeout)
	stop := context.AfterFunc(ctx, cancel)
	return c, func() {
		stop()
		cancel()
	}
}

// Close shuts the tab and the browser process.
func (s *chromeSession) Close() error {
	s.release()
	return nil
}
