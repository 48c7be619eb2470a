// Package middleware groups the Fiber middleware shared by every route.
//
// rayid tags each request with a UUID that is echoed in the X-Ray-ID response header and
// stored in the request locals. requestlog writes one structured line per request using
// that id, so a slow /libraries call can be matched with the adapter warnings it caused.
package middleware
