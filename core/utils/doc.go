// Package utils provides defensive accessors for untyped JSON documents.
//
// Upstream catalog APIs are not under our control and their schemas drift. Adapters
// decode such bodies into any and read them through these helpers: every access is
// optional and yields a caller-chosen default instead of panicking.
package utils
