// Package transport provides the outbound HTTP client for catalog APIs, with bounded
// dial, TLS, header and overall timeouts and a browser user agent.
package transport
