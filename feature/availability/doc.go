// Package availability serves the unified library pass availability over HTTP.
//
// # HTTP Endpoints
//
//   - GET /libraries : All location records, in registry order.
//   - GET /libraries/:id : One location record.
//   - POST /libraries/refresh : Drops the cache and aggregates again.
//
// Cached responses carry Cache-Control: public, s-maxage=<ttl> so a CDN in front of
// the service can absorb traffic for the same window.
package availability
