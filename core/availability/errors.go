package availability

import "errors"

// Failure classes of the adapters. Adapters wrap these with context, log them and
// return no data; none of them aborts an aggregation cycle.
var (
	// ErrTransport covers network, DNS, timeout and non-2xx responses.
	ErrTransport = errors.New("upstream transport failure")
	// ErrShapeMismatch means the upstream body did not have the expected shape.
	ErrShapeMismatch = errors.New("unexpected upstream response shape")
	// ErrScrapeTimeout means the catalog page did not load in time.
	ErrScrapeTimeout = errors.New("scrape timed out")
	// ErrScrapeExtraction means the page loaded but its text could not be read.
	ErrScrapeExtraction = errors.New("scrape extraction failed")
)
